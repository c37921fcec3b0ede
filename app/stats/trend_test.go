package stats

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name          string
		current       float64
		previous      float64
		wantDelta     float64
		wantDirection string
	}{
		{"improvement points up", 82, 75, 7, "up"},
		{"decline points down", 70, 75, -5, "down"},
		{"unchanged is down, not up", 75, 75, 0, "down"},
		{"from zero baseline", 40, 0, 40, "up"},
		{"to zero", 0, 40, -40, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.current, tt.previous)
			if got.Delta != tt.wantDelta {
				t.Errorf("Compare() delta = %v, want %v", got.Delta, tt.wantDelta)
			}
			if got.Direction != tt.wantDirection {
				t.Errorf("Compare() direction = %q, want %q", got.Direction, tt.wantDirection)
			}
		})
	}
}
