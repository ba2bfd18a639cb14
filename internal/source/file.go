package source

import (
	"github.com/user/logview/internal/index"
	logio "github.com/user/logview/internal/io"
)

// FileSource provides lines from a single file. Levels are detected
// once during the initial scan and are immutable until Reload.
type FileSource struct {
	file      *logio.MappedFile
	lineIndex *index.LineIndex
	levels    []LogLevel
	detector  LevelDetectFunc
	path      string
}

// NewFileSource opens a file, builds its line index and detects
// each line's level. The file is not read again after this except
// to materialize line text by byte span.
func NewFileSource(path string, detector LevelDetectFunc) (*FileSource, error) {
	file, err := logio.OpenMapped(path)
	if err != nil {
		return nil, err
	}

	s := &FileSource{
		file:     file,
		detector: detector,
		path:     path,
	}

	if err := s.rebuild(); err != nil {
		file.Close()
		return nil, err
	}
	return s, nil
}

func (s *FileSource) rebuild() error {
	lineIndex, err := index.BuildLineIndex(s.file)
	if err != nil {
		return err
	}

	levels := make([]LogLevel, lineIndex.LineCount())
	if s.detector != nil {
		for i := range levels {
			content, err := lineIndex.GetLine(i)
			if err != nil {
				return err
			}
			levels[i] = s.detector(content)
		}
	}

	s.lineIndex = lineIndex
	s.levels = levels
	return nil
}

// Reload re-opens the file and rebuilds the index. This is the only
// path that ever re-reads the file.
func (s *FileSource) Reload() error {
	if err := s.file.Reopen(); err != nil {
		return err
	}
	return s.rebuild()
}

// LineCount returns total number of lines
func (s *FileSource) LineCount() int {
	return s.lineIndex.LineCount()
}

// Level returns the detected level of a line
func (s *FileSource) Level(idx int) LogLevel {
	if idx < 0 || idx >= len(s.levels) {
		return LevelNone
	}
	return s.levels[idx]
}

// GetLine returns line at index
func (s *FileSource) GetLine(idx int) (*Line, error) {
	content, err := s.lineIndex.GetLine(idx)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	return &Line{
		Content:       content,
		Level:         s.Level(idx),
		OriginalIndex: idx,
	}, nil
}

// GetLines returns a range of lines
func (s *FileSource) GetLines(start, count int) ([]*Line, error) {
	rawLines, err := s.lineIndex.GetLines(start, count)
	if err != nil {
		return nil, err
	}

	lines := make([]*Line, len(rawLines))
	for i, content := range rawLines {
		lines[i] = &Line{
			Content:       content,
			Level:         s.Level(start + i),
			OriginalIndex: start + i,
		}
	}
	return lines, nil
}

// Span returns the byte span of a line in the underlying file
func (s *FileSource) Span(idx int) (start, end int64) {
	return s.lineIndex.Span(idx)
}

// Close closes the file source
func (s *FileSource) Close() error {
	return s.file.Close()
}

// Path returns the file path
func (s *FileSource) Path() string {
	return s.path
}
