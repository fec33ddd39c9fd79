package exercise

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/rehazenter/go-rehab/internal/log"
	"github.com/rehazenter/go-rehab/pkg/vision"
)

// pollInterval is the cadence of the control loops. They only re-read
// the capture loop's latest snapshot, so polling faster than the camera
// frame rate just observes the same position again.
const pollInterval = 10 * time.Millisecond

// Session errors.
var (
	// ErrCaptureStopped is returned when the capture loop died while a
	// control loop depended on it.
	ErrCaptureStopped = errors.New("exercise: capture loop stopped")

	// ErrTimeLimitReached is returned when the exercise ran out of time
	// before the repetition limit was reached.
	ErrTimeLimitReached = errors.New("exercise: time limit reached")
)

// Feed is the live marker position surface the session polls. It must
// never block: both methods read the capture loop's latest snapshot.
type Feed interface {
	LatestPosition() (vision.Position, bool)
	IsRunning() bool
}

// EventType tags session progress events.
type EventType string

const (
	EventCalibrationStarted  EventType = "calibration_started"
	EventPointRecorded       EventType = "point_recorded"
	EventCalibrationComplete EventType = "calibration_complete"
	EventRepetition          EventType = "repetition"
	EventExerciseComplete    EventType = "exercise_complete"
)

// Event is a session progress notification for the orchestration layer.
// The session defines no wire format; relaying events outward is the
// receiver's concern.
type Event struct {
	Type  EventType `json:"type"`
	Point int       `json:"point,omitempty"` // recorded point index (point_recorded)
	Count int       `json:"count,omitempty"` // repetitions done (repetition, exercise_complete)
}

// Session drives one exercise: a calibration phase that records the
// reference points, then a counting phase that runs until the
// repetition limit. It owns neither the capture loop nor the display;
// it only polls the feed and reports progress.
type Session struct {
	ID   uuid.UUID
	cfg  Config
	feed Feed
	tol  Tolerance

	// Events, when set, receives progress notifications synchronously
	// from the control loops. Handlers must not block.
	Events func(Event)
}

// NewSession validates the config and builds a session over the feed.
func NewSession(cfg Config, feed Feed) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:   uuid.New(),
		cfg:  cfg,
		feed: feed,
		tol:  ToleranceFor(cfg.Resolution),
	}, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Tolerance returns the tolerance box derived from the resolution.
func (s *Session) Tolerance() Tolerance {
	return s.tol
}

// Calibrate runs the calibration control loop until every reference
// point is recorded. On cancellation or capture failure the partial
// point set is discarded; a counter is never built from one.
func (s *Session) Calibrate(ctx context.Context) (CalibrationSet, error) {
	cal, err := NewCalibrator(s.cfg.Kind, s.cfg.CalibrationDwell)
	if err != nil {
		return nil, err
	}

	log.Info("calibration started",
		"session", s.ID, "kind", s.cfg.Kind.String(), "points", cal.Required(),
		"dwell", s.cfg.CalibrationDwell)
	s.emit(Event{Type: EventCalibrationStarted})

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	recorded := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		if !s.feed.IsRunning() {
			return nil, ErrCaptureStopped
		}

		state := cal.Poll(s.currentCenter())
		if n := cal.RecordedCount(); n > recorded {
			recorded = n
			log.Info("calibration point recorded", "session", s.ID, "point", n, "of", cal.Required())
			s.emit(Event{Type: EventPointRecorded, Point: n})
		}
		if state == Complete {
			break
		}
	}

	set, err := cal.Points()
	if err != nil {
		return nil, err
	}
	log.Info("calibration complete", "session", s.ID)
	s.emit(Event{Type: EventCalibrationComplete})
	return set, nil
}

// Run executes the counting loop over a completed calibration set until
// the repetition limit, the optional time limit, capture failure, or
// cancellation. It returns the number of repetitions done.
func (s *Session) Run(ctx context.Context, set CalibrationSet) (int, error) {
	counter, err := NewCounter(set, s.tol)
	if err != nil {
		return 0, err
	}

	log.Info("exercise started",
		"session", s.ID, "limit", s.cfg.RepetitionLimit,
		"tolerance_x", s.tol.X, "tolerance_y", s.tol.Y)

	var deadline <-chan time.Time
	if s.cfg.TimeLimit > 0 {
		timer := time.NewTimer(s.cfg.TimeLimit)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return counter.Count(), ctx.Err()
		case <-deadline:
			return counter.Count(), ErrTimeLimitReached
		case <-ticker.C:
		}

		if !s.feed.IsRunning() {
			return counter.Count(), ErrCaptureStopped
		}

		if counter.Observe(s.currentCenter()) == RepetitionIncremented {
			log.Info("repetition", "session", s.ID, "count", counter.Count())
			s.emit(Event{Type: EventRepetition, Count: counter.Count()})
		}
		if counter.Done(s.cfg.RepetitionLimit) {
			break
		}
	}

	log.Info("exercise complete", "session", s.ID, "count", counter.Count())
	s.emit(Event{Type: EventExerciseComplete, Count: counter.Count()})
	return counter.Count(), nil
}

func (s *Session) currentCenter() *image.Point {
	pos, ok := s.feed.LatestPosition()
	if !ok {
		return nil
	}
	return pos.Center
}

func (s *Session) emit(ev Event) {
	if s.Events != nil {
		s.Events(ev)
	}
}
