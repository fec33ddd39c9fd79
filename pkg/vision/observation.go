// Package vision locates a colored marker in camera frames using
// HSV thresholding and contour analysis.
package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// Observation is the result of locating the marker in one frame.
// Center is nil when no blob of sufficient size was found. Radius is the
// minimum enclosing circle of the largest blob and is reported even when
// Center is nil (noise specks keep their measured radius).
type Observation struct {
	Center *image.Point
	Radius float64

	// Original is the input frame, annotated with the detection circle
	// when the marker was found. Mask is the binary foreground mask.
	// Both are owned by the Observation holder.
	Original gocv.Mat
	Mask     gocv.Mat
}

// Close releases the frame Mats. Safe to call on a zero Observation.
func (o *Observation) Close() {
	if o.Original.Ptr() != nil {
		o.Original.Close()
	}
	if o.Mask.Ptr() != nil {
		o.Mask.Close()
	}
}

// Found reports whether the marker was located in this frame.
func (o *Observation) Found() bool {
	return o.Center != nil
}

// Position is a lightweight copy of the detection result without the
// frames, safe to pass around after the Observation is closed.
type Position struct {
	Center *image.Point
	Radius float64
}

// Position extracts the detection result from the observation.
func (o *Observation) Position() Position {
	if o.Center == nil {
		return Position{Radius: o.Radius}
	}
	c := *o.Center
	return Position{Center: &c, Radius: o.Radius}
}
