package exercise

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// CalibrationState is the per-point state machine the Calibrator steps
// through: WaitingToStart -> Dwelling -> Recorded for each point, then
// Complete once all points are in.
type CalibrationState int

const (
	WaitingToStart CalibrationState = iota
	Dwelling
	Recorded
	Complete
)

// String implements fmt.Stringer.
func (s CalibrationState) String() string {
	switch s {
	case WaitingToStart:
		return "waiting"
	case Dwelling:
		return "dwelling"
	case Recorded:
		return "recorded"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Calibration errors.
var (
	// ErrUnsupportedKind is returned for exercise kinds with no
	// calibration scheme yet.
	ErrUnsupportedKind = errors.New("exercise: kind does not support point calibration")

	// ErrIncompleteCalibration is returned when the point set is read
	// before calibration completed.
	ErrIncompleteCalibration = errors.New("exercise: calibration not complete")
)

// Calibrator records the reference points for an exercise. It is driven
// by the caller's control loop: Poll is called once per iteration with
// the current marker center. Each point is recorded when its dwell
// timer elapses; the recorded value is whatever the center is at that
// exact instant, with no averaging over the dwell window. A lost marker
// at that instant records a nil point rather than being retried.
type Calibrator struct {
	need  int
	dwell time.Duration

	state    CalibrationState
	deadline time.Time
	points   CalibrationSet

	now func() time.Time
}

// NewCalibrator creates a calibrator for the kind's required points.
func NewCalibrator(kind Kind, dwell time.Duration) (*Calibrator, error) {
	need := kind.PointCount()
	if need == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return &Calibrator{
		need:  need,
		dwell: dwell,
		now:   time.Now,
	}, nil
}

// Poll advances the state machine one step. It arms the dwell timer on
// entering Dwelling and records the given center once the timer has
// elapsed. With a zero dwell the timer is already expired, so the point
// is recorded on the poll after entering Dwelling.
func (c *Calibrator) Poll(center *image.Point) CalibrationState {
	switch c.state {
	case Complete:
		return Complete

	case WaitingToStart, Recorded:
		c.state = Dwelling
		c.deadline = c.now().Add(c.dwell)
		return c.state

	case Dwelling:
		if c.now().Before(c.deadline) {
			return Dwelling
		}
		var p *image.Point
		if center != nil {
			cp := *center
			p = &cp
		}
		c.points = append(c.points, p)
		if len(c.points) == c.need {
			c.state = Complete
		} else {
			c.state = Recorded
		}
		return c.state
	}
	return c.state
}

// State returns the current calibration state.
func (c *Calibrator) State() CalibrationState {
	return c.state
}

// RecordedCount returns how many points have been recorded so far.
func (c *Calibrator) RecordedCount() int {
	return len(c.points)
}

// Required returns the total number of points to record.
func (c *Calibrator) Required() int {
	return c.need
}

// Points returns the completed calibration set. A partial set is never
// handed out: abandoning a calibration discards whatever was recorded.
func (c *Calibrator) Points() (CalibrationSet, error) {
	if c.state != Complete {
		return nil, ErrIncompleteCalibration
	}
	return c.points, nil
}
