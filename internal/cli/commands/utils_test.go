package commands

import (
	"testing"
	"time"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello..."},
		{"multibyte string untouched", "héllö", 5, "héllö"},
		{"multibyte string cut on rune boundary", "héllö wörld", 8, "héllö..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestParseDateFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{"empty means unset", "", nil, false},
		{"bare date", "2026-09-15", timePtr(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)), false},
		{"RFC3339", "2026-09-15T08:00:00Z", timePtr(time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)), false},
		{"garbage", "soon", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateFlag(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDateFlag(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDateFlag(%q) unexpected error: %v", tt.input, err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseDateFlag(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Errorf("parseDateFlag(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
