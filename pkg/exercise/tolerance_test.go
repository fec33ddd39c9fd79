package exercise

import (
	"testing"

	"github.com/rehazenter/go-rehab/pkg/capture"
)

func TestToleranceFor(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantX int
		wantY int
	}{
		{"vga is an eighth each way", 640, 480, 80, 60},
		{"smallest mode", 320, 180, 40, 22},
		{"wide aspect stretches x", 1920, 540, 320, 67},
		{"tall aspect stretches y", 320, 720, 40, 120},
		{"exactly 2:1 keeps the eighth", 960, 480, 120, 60},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := capture.NewResolution(tc.w, tc.h)
			if err != nil {
				t.Fatalf("NewResolution(%d,%d): %v", tc.w, tc.h, err)
			}
			tol := ToleranceFor(res)
			if tol.X != tc.wantX || tol.Y != tc.wantY {
				t.Errorf("ToleranceFor(%s) = (%d,%d), want (%d,%d)",
					res, tol.X, tol.Y, tc.wantX, tc.wantY)
			}
			if tol.X <= 0 || tol.Y <= 0 {
				t.Errorf("tolerance must be positive, got (%d,%d)", tol.X, tol.Y)
			}
		})
	}
}
