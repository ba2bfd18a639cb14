package source

// LogLevel represents a recognized log severity tag
type LogLevel int

const (
	LevelNone LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// String returns the tag as it appears in log lines
func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return ""
	}
}

// LevelDetectFunc detects the log level of a line's content
type LevelDetectFunc func(content []byte) LogLevel

// Line represents a single line with its detected level
type Line struct {
	Content       []byte
	Level         LogLevel
	OriginalIndex int // line number in the original file
}

// LineProvider is the core abstraction for accessing lines.
// The viewport only interacts with this interface.
type LineProvider interface {
	// LineCount returns total number of lines
	LineCount() int

	// GetLine returns line at index (0-based)
	GetLine(index int) (*Line, error)

	// GetLines returns a range of lines efficiently
	GetLines(start, count int) ([]*Line, error)
}
