package exercise

import (
	"errors"
	"fmt"
	"image"
)

// RepetitionEvent is the outcome of one Observe call.
type RepetitionEvent int

const (
	NoChange RepetitionEvent = iota
	RepetitionIncremented
)

// ErrInvalidCalibration is returned when a counter is built from an
// unusable calibration set.
var ErrInvalidCalibration = errors.New("exercise: invalid calibration set")

// Counter advances through the calibration points cyclically as the
// marker visits each within tolerance, counting one repetition per full
// cycle. It is driven by the caller's control loop and never terminates
// itself; the caller stops observing once the repetition limit is hit.
type Counter struct {
	points CalibrationSet
	tol    Tolerance

	index int
	count int
}

// NewCounter creates a counter over a completed calibration set.
func NewCounter(set CalibrationSet, tol Tolerance) (*Counter, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no calibration points", ErrInvalidCalibration)
	}
	if tol.X <= 0 || tol.Y <= 0 {
		return nil, fmt.Errorf("%w: non-positive tolerance %+v", ErrInvalidCalibration, tol)
	}
	return &Counter{points: set, tol: tol}, nil
}

// Observe feeds the current marker center into the counter. A nil
// center (marker lost this frame) never changes state. The match test
// is a strict per-axis box comparison; a marker sitting inside two
// adjacent tolerance boxes still advances only one step per call. The
// count increments exactly when the target index wraps back to zero.
func (c *Counter) Observe(center *image.Point) RepetitionEvent {
	if center == nil {
		return NoChange
	}
	target := c.points[c.index]
	if target == nil {
		// Degenerate point recorded with the marker lost; nothing can
		// ever match it, so the cycle stalls here.
		return NoChange
	}
	if absInt(center.X-target.X) < c.tol.X && absInt(center.Y-target.Y) < c.tol.Y {
		c.index++
		if c.index == len(c.points) {
			c.index = 0
			c.count++
			return RepetitionIncremented
		}
	}
	return NoChange
}

// Count returns the number of completed repetitions.
func (c *Counter) Count() int {
	return c.count
}

// TargetIndex returns the index of the calibration point the marker
// must visit next.
func (c *Counter) TargetIndex() int {
	return c.index
}

// Done reports whether the given repetition limit has been reached.
func (c *Counter) Done(limit int) bool {
	return c.count >= limit
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
