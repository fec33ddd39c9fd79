package vision

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"
)

// MinRadius is the minimum enclosing-circle radius (in pixels) a blob
// must have for its center to be accepted. Smaller blobs are treated as
// sensor noise: the radius is still reported but the center is nil.
const MinRadius = 2

var markerOutline = color.RGBA{G: 255}

// Locator finds the marker blob in a frame. It holds no state between
// calls; a single Locator may be shared by one goroutine at a time.
type Locator struct {
	kernel gocv.Mat
}

// NewLocator creates a marker locator.
func NewLocator() *Locator {
	return &Locator{
		kernel: gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3)),
	}
}

// Close releases the locator's resources.
func (l *Locator) Close() {
	l.kernel.Close()
}

// Locate segments the frame by the given color band and returns the
// marker's best-estimate center and radius. The frame must be BGR (the
// capture device's native order). "Marker not found" is not an error;
// it is reported as a nil Center.
func (l *Locator) Locate(frame gocv.Mat, band ColorBand) Observation {
	annotated := frame.Clone()

	// Blur to suppress sensor noise before thresholding.
	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(frame, &blurred, image.Pt(3, 3), 0, 0, gocv.BorderDefault)
	gocv.CvtColor(blurred, &blurred, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	gocv.InRangeWithScalar(blurred, band.Lower, band.Upper, &mask)

	// One dilation pass merges fragmented blobs of the same marker.
	gocv.Dilate(mask, &mask, l.kernel)

	obs := Observation{Original: annotated, Mask: mask}

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()
	if contours.Size() == 0 {
		return obs
	}

	// Largest contour by enclosed area wins; ties keep the first seen.
	best := 0
	bestArea := gocv.ContourArea(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		if a := gocv.ContourArea(contours.At(i)); a > bestArea {
			best = i
			bestArea = a
		}
	}

	_, _, radius := gocv.MinEnclosingCircle(contours.At(best))
	obs.Radius = float64(radius)

	// Centroid from the contour's spatial moments. A zero m00 means a
	// degenerate contour with no usable center.
	filled := gocv.NewMatWithSize(mask.Rows(), mask.Cols(), gocv.MatTypeCV8UC1)
	defer filled.Close()
	gocv.DrawContours(&filled, contours, best, color.RGBA{R: 255, G: 255, B: 255}, -1)
	m := gocv.Moments(filled, true)
	if m["m00"] <= 0 {
		return obs
	}
	center := image.Pt(int(m["m10"]/m["m00"]), int(m["m01"]/m["m00"]))
	obs.Center = &center

	if obs.Radius < MinRadius {
		obs.Center = nil
		return obs
	}

	gocv.Circle(&obs.Original, center, int(math.Round(obs.Radius)), markerOutline, 1)
	return obs
}
