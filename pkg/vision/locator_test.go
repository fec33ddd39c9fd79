package vision

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gocv.io/x/gocv"
)

// yellowBGR converts to HSV (30,255,255), inside the yellow band.
var yellowBGR = color.RGBA{R: 255, G: 255, B: 0}

func newFrame(w, h int) gocv.Mat {
	return gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
}

func TestLocate_SingleBlob(t *testing.T) {
	l := NewLocator()
	defer l.Close()

	frame := newFrame(320, 180)
	defer frame.Close()
	gocv.Circle(&frame, image.Pt(100, 80), 20, yellowBGR, -1)

	obs := l.Locate(frame, Yellow)
	defer obs.Close()

	if !obs.Found() {
		t.Fatal("expected marker to be found")
	}
	if dx, dy := obs.Center.X-100, obs.Center.Y-80; dx*dx+dy*dy > 4 {
		t.Errorf("center off: got %v, want near (100,80)", *obs.Center)
	}
	// Dilation grows the blob by about a pixel.
	if obs.Radius < 19 || obs.Radius > 23 {
		t.Errorf("radius: got %.2f, want ~20", obs.Radius)
	}
}

func TestLocate_LargestBlobWins(t *testing.T) {
	l := NewLocator()
	defer l.Close()

	frame := newFrame(320, 180)
	defer frame.Close()
	gocv.Circle(&frame, image.Pt(60, 60), 6, yellowBGR, -1)
	gocv.Circle(&frame, image.Pt(220, 100), 25, yellowBGR, -1)

	obs := l.Locate(frame, Yellow)
	defer obs.Close()

	if !obs.Found() {
		t.Fatal("expected marker to be found")
	}
	if math.Abs(float64(obs.Center.X-220)) > 2 || math.Abs(float64(obs.Center.Y-100)) > 2 {
		t.Errorf("expected the larger blob's center, got %v", *obs.Center)
	}
}

func TestLocate_EmptyMask(t *testing.T) {
	l := NewLocator()
	defer l.Close()

	frame := newFrame(320, 180)
	defer frame.Close()

	obs := l.Locate(frame, Yellow)
	defer obs.Close()

	if obs.Found() {
		t.Errorf("expected no marker on a black frame, got %v", *obs.Center)
	}
	if obs.Radius != 0 {
		t.Errorf("radius: got %.2f, want 0", obs.Radius)
	}
}

func TestLocate_NoiseSpeckRejected(t *testing.T) {
	l := NewLocator()
	defer l.Close()

	// A single dim pixel: after blurring only the center survives the
	// threshold, and the dilated speck stays under the minimum radius.
	frame := newFrame(320, 180)
	defer frame.Close()
	frame.SetUCharAt(90, 160*3+1, 100)
	frame.SetUCharAt(90, 160*3+2, 100)

	obs := l.Locate(frame, Yellow)
	defer obs.Close()

	if obs.Found() {
		t.Errorf("expected speck center to be rejected, got %v", *obs.Center)
	}
	if obs.Radius >= MinRadius {
		t.Errorf("radius: got %.2f, want < %d", obs.Radius, MinRadius)
	}
}

func TestLocate_Stateless(t *testing.T) {
	l := NewLocator()
	defer l.Close()

	blob := newFrame(320, 180)
	defer blob.Close()
	gocv.Circle(&blob, image.Pt(100, 80), 15, yellowBGR, -1)
	empty := newFrame(320, 180)
	defer empty.Close()

	first := l.Locate(blob, Yellow)
	first.Close()

	// A later empty frame must not inherit the earlier detection.
	second := l.Locate(empty, Yellow)
	defer second.Close()
	if second.Found() {
		t.Error("locator retained state between calls")
	}
}
