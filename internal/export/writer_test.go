package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/logview/internal/source"
)

type stubProvider struct {
	lines []string
}

func (s *stubProvider) LineCount() int { return len(s.lines) }

func (s *stubProvider) GetLine(idx int) (*source.Line, error) {
	if idx < 0 || idx >= len(s.lines) {
		return nil, nil
	}
	return &source.Line{Content: []byte(s.lines[idx]), OriginalIndex: idx}, nil
}

func (s *stubProvider) GetLines(start, count int) ([]*source.Line, error) {
	var lines []*source.Line
	for i := start; i < start+count && i < len(s.lines); i++ {
		line, _ := s.GetLine(i)
		lines = append(lines, line)
	}
	return lines, nil
}

func TestWriteVisible(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")
	n, err := WriteVisible(&stubProvider{lines: []string{"one", "two", "three"}}, out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", string(data))
}

func TestWriteVisibleEmpty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.log")
	n, err := WriteVisible(&stubProvider{}, out)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteVisibleBadPath(t *testing.T) {
	_, err := WriteVisible(&stubProvider{lines: []string{"x"}}, filepath.Join(t.TempDir(), "missing", "out.log"))
	require.Error(t, err)
}
