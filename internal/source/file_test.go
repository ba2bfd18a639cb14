package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenDetector(content []byte) LogLevel {
	for _, l := range []LogLevel{LevelInfo, LevelWarning, LevelError, LevelCritical} {
		if bytes.Contains(content, []byte(l.String())) {
			return l
		}
	}
	return LevelNone
}

func writeTempLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSourceDetectsLevelsAtLoad(t *testing.T) {
	path := writeTempLog(t, "a INFO x\nb WARNING y\nc plain\n")
	src, err := NewFileSource(path, tokenDetector)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 3, src.LineCount())
	assert.Equal(t, LevelInfo, src.Level(0))
	assert.Equal(t, LevelWarning, src.Level(1))
	assert.Equal(t, LevelNone, src.Level(2))
	assert.Equal(t, LevelNone, src.Level(99))

	line, err := src.GetLine(1)
	require.NoError(t, err)
	assert.Equal(t, "b WARNING y", string(line.Content))
	assert.Equal(t, LevelWarning, line.Level)
	assert.Equal(t, 1, line.OriginalIndex)
}

func TestFileSourceNilDetector(t *testing.T) {
	path := writeTempLog(t, "a ERROR x\n")
	src, err := NewFileSource(path, nil)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, LevelNone, src.Level(0))
}

func TestFileSourceSpans(t *testing.T) {
	path := writeTempLog(t, "ab\ncde\n")
	src, err := NewFileSource(path, nil)
	require.NoError(t, err)
	defer src.Close()

	start, end := src.Span(0)
	assert.Equal(t, int64(0), start)
	assert.Equal(t, int64(3), end)
	// The final span runs to end of file, terminator included
	start, end = src.Span(1)
	assert.Equal(t, int64(3), start)
	assert.Equal(t, int64(7), end)
}

func TestFileSourceReload(t *testing.T) {
	path := writeTempLog(t, "a INFO x\n")
	src, err := NewFileSource(path, tokenDetector)
	require.NoError(t, err)
	defer src.Close()
	assert.Equal(t, 1, src.LineCount())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("b CRITICAL y\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, src.Reload())
	assert.Equal(t, 2, src.LineCount())
	assert.Equal(t, LevelCritical, src.Level(1))
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.log"), nil)
	require.Error(t, err)
}
