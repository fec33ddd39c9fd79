// Package capture acquires frames from a camera or video file and runs
// marker localization continuously on a background goroutine.
package capture

import "fmt"

// Supported camera modes. Width and height are validated independently,
// matching what the tabletop cameras negotiate.
var (
	supportedWidths  = map[int]bool{320: true, 424: true, 640: true, 848: true, 960: true, 1280: true, 1920: true}
	supportedHeights = map[int]bool{180: true, 240: true, 360: true, 480: true, 540: true, 720: true, 1080: true}
)

// Resolution is a validated camera frame size.
type Resolution struct {
	Width  int
	Height int
}

// NewResolution builds a Resolution, rejecting sizes outside the
// supported camera modes.
func NewResolution(width, height int) (Resolution, error) {
	if !supportedWidths[width] || !supportedHeights[height] {
		return Resolution{}, fmt.Errorf("capture: unsupported camera resolution %dx%d", width, height)
	}
	return Resolution{Width: width, Height: height}, nil
}

// String implements fmt.Stringer.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
