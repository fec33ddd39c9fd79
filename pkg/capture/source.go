package capture

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/rehazenter/go-rehab/internal/log"
)

// Sentinel errors for capture conditions.
var (
	// ErrCaptureUnavailable is returned when the device or file cannot be opened.
	ErrCaptureUnavailable = errors.New("capture: device unavailable")

	// ErrEndOfStream is returned when a video file has no more frames.
	ErrEndOfStream = errors.New("capture: end of stream")

	// ErrCaptureFailed is returned when a live device stops producing frames.
	ErrCaptureFailed = errors.New("capture: failed to read frame from device")
)

// defaultDevice is the capture device index used when no video path is given.
const defaultDevice = 0

// Source wraps a single capture handle: the default camera when path is
// empty, otherwise a recorded video file. The Source owns the handle
// exclusively; Read and Close must be called from one goroutine.
type Source struct {
	cap  *gocv.VideoCapture
	file bool

	// Negotiated frame size. May differ from the requested resolution;
	// the camera reports back what it actually produces.
	Width  int
	Height int
}

// Open opens the capture device and requests the given resolution.
// The request is best-effort: the negotiated size is reported on the
// returned Source.
func Open(res Resolution, videoPath string) (*Source, error) {
	var (
		cap *gocv.VideoCapture
		err error
	)
	if videoPath == "" {
		cap, err = gocv.OpenVideoCapture(defaultDevice)
	} else {
		cap, err = gocv.OpenVideoCapture(videoPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureUnavailable, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return nil, ErrCaptureUnavailable
	}

	cap.Set(gocv.VideoCaptureFrameWidth, float64(res.Width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(res.Height))

	s := &Source{
		cap:    cap,
		file:   videoPath != "",
		Width:  int(cap.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(cap.Get(gocv.VideoCaptureFrameHeight)),
	}
	if s.Width != res.Width || s.Height != res.Height {
		log.Warn("camera negotiated a different resolution",
			"requested", res.String(), "actual", fmt.Sprintf("%dx%d", s.Width, s.Height))
	}
	return s, nil
}

// Read fetches the next BGR frame into dst. A failed read on a file
// source is normal completion (ErrEndOfStream); on a live device it is
// fatal (ErrCaptureFailed) and the caller must stop.
func (s *Source) Read(dst *gocv.Mat) error {
	if ok := s.cap.Read(dst); !ok || dst.Empty() {
		if s.file {
			return ErrEndOfStream
		}
		return ErrCaptureFailed
	}
	return nil
}

// Close releases the capture handle.
func (s *Source) Close() error {
	return s.cap.Close()
}
