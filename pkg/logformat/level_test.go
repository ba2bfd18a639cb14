package logformat

import (
	"testing"

	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/source"
)

func defaultDetector() *LevelDetector {
	cfg := config.DefaultConfig()
	return NewLevelDetector(&cfg.LogLevels)
}

func TestDetect(t *testing.T) {
	d := defaultDetector()

	cases := []struct {
		name string
		line string
		want source.LogLevel
	}{
		{"info", "2024-01-15 INFO starting up", source.LevelInfo},
		{"warning", "a WARNING something odd", source.LevelWarning},
		{"error", "b ERROR it broke", source.LevelError},
		{"critical", "c CRITICAL on fire", source.LevelCritical},
		{"none", "just a plain line", source.LevelNone},
		{"empty", "", source.LevelNone},
		{"lowercase_not_detected", "info and error in prose", source.LevelNone},
		{"token_mid_word", "REINFORCE the walls", source.LevelInfo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Detect([]byte(tc.line)); got != tc.want {
				t.Fatalf("Detect(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestDetectLeftmostWins(t *testing.T) {
	d := defaultDetector()

	// The leftmost token wins, not the most severe one
	cases := []struct {
		line string
		want source.LogLevel
	}{
		{"INFO then CRITICAL later", source.LevelInfo},
		{"CRITICAL before INFO", source.LevelCritical},
		{"x WARNING y ERROR z", source.LevelWarning},
		{"ERROR WARNING", source.LevelError},
	}
	for _, tc := range cases {
		if got := d.Detect([]byte(tc.line)); got != tc.want {
			t.Fatalf("Detect(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestDetectCustomPatterns(t *testing.T) {
	cfg := config.LogLevelConfig{
		InfoPatterns:     []string{"[inf]"},
		WarningPatterns:  []string{"[wrn]"},
		ErrorPatterns:    []string{"[err]"},
		CriticalPatterns: []string{"[crit]"},
	}
	d := NewLevelDetector(&cfg)

	if got := d.Detect([]byte("12:00 [err] boom")); got != source.LevelError {
		t.Fatalf("Detect custom = %v, want LevelError", got)
	}
	if got := d.Detect([]byte("12:00 ERROR boom")); got != source.LevelNone {
		t.Fatalf("Detect unconfigured token = %v, want LevelNone", got)
	}
}
