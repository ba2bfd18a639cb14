package logformat

import (
	"bytes"

	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/source"
)

// LevelDetector detects log levels from line content.
// Detection is purely lexical: the token occurring leftmost in the
// line wins, regardless of severity. A line with no recognized token
// has no level.
type LevelDetector struct {
	patterns map[source.LogLevel][]string
}

// NewLevelDetector creates a detector from config
func NewLevelDetector(cfg *config.LogLevelConfig) *LevelDetector {
	return &LevelDetector{
		patterns: map[source.LogLevel][]string{
			source.LevelInfo:     cfg.InfoPatterns,
			source.LevelWarning:  cfg.WarningPatterns,
			source.LevelError:    cfg.ErrorPatterns,
			source.LevelCritical: cfg.CriticalPatterns,
		},
	}
}

// Detect returns the level of the leftmost matching token,
// LevelNone if no token occurs in the line
func (d *LevelDetector) Detect(content []byte) source.LogLevel {
	best := source.LevelNone
	bestPos := -1

	for _, level := range []source.LogLevel{
		source.LevelInfo,
		source.LevelWarning,
		source.LevelError,
		source.LevelCritical,
	} {
		for _, pattern := range d.patterns[level] {
			if pattern == "" {
				continue
			}
			pos := bytes.Index(content, []byte(pattern))
			if pos == -1 {
				continue
			}
			if bestPos == -1 || pos < bestPos {
				best = level
				bestPos = pos
			}
		}
	}

	return best
}

// DetectFunc returns the detector as a source.LevelDetectFunc
func (d *LevelDetector) DetectFunc() source.LevelDetectFunc {
	return d.Detect
}
