package exercise

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero repetition limit", func(c *Config) { c.RepetitionLimit = 0 }},
		{"repetition limit 100", func(c *Config) { c.RepetitionLimit = 100 }},
		{"negative dwell", func(c *Config) { c.CalibrationDwell = -time.Second }},
		{"dwell over 30s", func(c *Config) { c.CalibrationDwell = 31 * time.Second }},
		{"time limit over 2h", func(c *Config) { c.TimeLimit = 7201 * time.Second }},
		{"unknown color", func(c *Config) { c.Color = "magenta" }},
		{"bad resolution", func(c *Config) { c.Resolution.Width = 123 }},
		{"bad kind", func(c *Config) { c.Kind = Kind(42) }},
		{"bad limb", func(c *Config) { c.Limb = Limb(42) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigValidate_Boundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RepetitionLimit = 99
	cfg.CalibrationDwell = 30 * time.Second
	cfg.TimeLimit = 7200 * time.Second
	if err := cfg.Validate(); err != nil {
		t.Errorf("boundary values rejected: %v", err)
	}

	cfg.RepetitionLimit = 1
	cfg.CalibrationDwell = 0
	cfg.TimeLimit = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("lower boundary values rejected: %v", err)
	}
}

func TestKindPointCount(t *testing.T) {
	if Flexion.PointCount() != 2 || Abduction.PointCount() != 2 {
		t.Error("simple motions need two calibration points")
	}
	if RotationInternal.PointCount() != 0 || RotationExternal.PointCount() != 0 {
		t.Error("rotation kinds have no point calibration yet")
	}
}

func TestParseKindAndLimb(t *testing.T) {
	k, err := ParseKind("abduction")
	if err != nil || k != Abduction {
		t.Errorf("ParseKind(abduction) = %v, %v", k, err)
	}
	if _, err := ParseKind("jumping"); err == nil {
		t.Error("expected error for unknown kind")
	}
	l, err := ParseLimb("right_leg")
	if err != nil || l != RightLeg {
		t.Errorf("ParseLimb(right_leg) = %v, %v", l, err)
	}
	if _, err := ParseLimb("tail"); err == nil {
		t.Error("expected error for unknown limb")
	}
}
