package capture

import "testing"

func TestNewResolution(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"vga", 640, 480, false},
		{"smallest", 320, 180, false},
		{"fullhd", 1920, 1080, false},
		{"mixed modes", 848, 540, false},
		{"zero", 0, 0, true},
		{"negative", -640, 480, true},
		{"unsupported width", 641, 480, true},
		{"unsupported height", 640, 481, true},
		{"4k", 3840, 2160, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := NewResolution(tc.w, tc.h)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewResolution(%d,%d): expected error", tc.w, tc.h)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewResolution(%d,%d): %v", tc.w, tc.h, err)
			}
			if res.Width != tc.w || res.Height != tc.h {
				t.Errorf("got %s, want %dx%d", res, tc.w, tc.h)
			}
		})
	}
}
