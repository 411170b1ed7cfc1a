package ports

import "testing"

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"quiet", LevelQuiet},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	levels := []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelQuiet}
	for _, level := range levels {
		if ParseLogLevel(level.String()) != level {
			t.Errorf("level %d does not round-trip through String", level)
		}
	}
	if LogLevel(99).String() != "unknown" {
		t.Error("expected unknown for out-of-range level")
	}
}
