package exercise

import "github.com/rehazenter/go-rehab/pkg/capture"

// Tolerance is the per-axis rectangular neighborhood around a
// calibration point that counts as "at that point". The box test is
// deliberately per-axis rather than Euclidean so tolerance can stretch
// independently for non-square resolutions.
type Tolerance struct {
	X int
	Y int
}

// ToleranceFor derives the tolerance box from the frame size: an eighth
// of each dimension, widened to a sixth on the long axis when the
// aspect ratio passes 2:1.
func ToleranceFor(res capture.Resolution) Tolerance {
	t := Tolerance{X: res.Width / 8, Y: res.Height / 8}
	if res.Width > 2*res.Height {
		t.X = res.Width / 6
	} else if 2*res.Width < res.Height {
		t.Y = res.Height / 6
	}
	return t
}
