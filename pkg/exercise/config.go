package exercise

import (
	"fmt"
	"time"

	"github.com/rehazenter/go-rehab/pkg/capture"
	"github.com/rehazenter/go-rehab/pkg/vision"
)

// Limits on configurable session parameters.
const (
	MaxRepetitionLimit  = 99
	MaxCalibrationDwell = 30 * time.Second
	MaxTimeLimit        = 7200 * time.Second
)

// Config holds everything needed to run one exercise session.
// Invalid values are rejected before any hardware is touched.
type Config struct {
	Kind Kind `json:"kind"`
	Limb Limb `json:"limb"`

	// Resolution must be one of the supported camera modes.
	Resolution capture.Resolution `json:"resolution"`

	// Color names the marker color band (yellow, blue, black).
	Color string `json:"color"`

	// VideoPath plays a recorded file instead of the live camera when set.
	VideoPath string `json:"video_path,omitempty"`

	// RepetitionLimit ends the exercise once reached (1-99).
	RepetitionLimit int `json:"repetition_limit"`

	// CalibrationDwell is how long the patient holds each reference
	// position before it is recorded (0-30s).
	CalibrationDwell time.Duration `json:"calibration_dwell"`

	// TimeLimit aborts the counting loop after this much time.
	// Zero means no time limit.
	TimeLimit time.Duration `json:"time_limit"`
}

// DefaultConfig returns the standard tabletop setup.
func DefaultConfig() Config {
	res, _ := capture.NewResolution(640, 480)
	return Config{
		Kind:             Flexion,
		Limb:             LeftArm,
		Resolution:       res,
		Color:            "yellow",
		RepetitionLimit:  10,
		CalibrationDwell: 10 * time.Second,
	}
}

// Validate fails fast on out-of-range values. Nothing is clamped.
func (c Config) Validate() error {
	if _, ok := kindNames[c.Kind]; !ok {
		return fmt.Errorf("exercise: invalid kind %d", int(c.Kind))
	}
	if _, ok := limbNames[c.Limb]; !ok {
		return fmt.Errorf("exercise: invalid limb %d", int(c.Limb))
	}
	if _, err := capture.NewResolution(c.Resolution.Width, c.Resolution.Height); err != nil {
		return err
	}
	if _, err := vision.ParseColor(c.Color); err != nil {
		return err
	}
	if c.RepetitionLimit < 1 || c.RepetitionLimit > MaxRepetitionLimit {
		return fmt.Errorf("exercise: repetition limit must be between 1 and %d, got %d",
			MaxRepetitionLimit, c.RepetitionLimit)
	}
	if c.CalibrationDwell < 0 || c.CalibrationDwell > MaxCalibrationDwell {
		return fmt.Errorf("exercise: calibration dwell must be between 0s and %s, got %s",
			MaxCalibrationDwell, c.CalibrationDwell)
	}
	if c.TimeLimit < 0 || c.TimeLimit > MaxTimeLimit {
		return fmt.Errorf("exercise: time limit must be between 0s and %s, got %s",
			MaxTimeLimit, c.TimeLimit)
	}
	return nil
}
