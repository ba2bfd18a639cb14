package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/logview/internal/source"
)

// stubVisible is a mutable visible set with a generation counter,
// standing in for the filtered provider
type stubVisible struct {
	lines []string
	gen   uint64
}

func (s *stubVisible) LineCount() int { return len(s.lines) }

func (s *stubVisible) GetLine(pos int) (*source.Line, error) {
	if pos < 0 || pos >= len(s.lines) {
		return nil, nil
	}
	return &source.Line{Content: []byte(s.lines[pos]), OriginalIndex: pos}, nil
}

func (s *stubVisible) Generation() uint64 { return s.gen }

func (s *stubVisible) replace(lines []string) {
	s.lines = lines
	s.gen++
}

func TestEmptyQueryInactive(t *testing.T) {
	e := New(&stubVisible{lines: []string{"a", "b"}}, true)

	assert.False(t, e.Active())
	assert.Equal(t, 0, e.MatchCount())

	_, ok := e.Next()
	assert.False(t, ok)
	_, ok = e.Prev()
	assert.False(t, ok)

	e.SetQuery("")
	assert.False(t, e.Active())
	assert.Empty(t, e.Matches())
}

func TestMatchesAreVisiblePositions(t *testing.T) {
	stub := &stubVisible{lines: []string{"a INFO x", "b WARNING y", "c ERROR z", "d plain"}}
	e := New(stub, true)

	e.SetQuery("y")
	assert.Equal(t, []int{1}, e.Matches())

	pos, ok := e.Current()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	// The only match: next wraps straight back to it
	pos, ok = e.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestNextWraparoundLaw(t *testing.T) {
	stub := &stubVisible{lines: []string{"hit", "miss", "hit", "hit", "miss"}}
	e := New(stub, true)
	e.SetQuery("hit")

	matches := e.Matches()
	assert.Equal(t, []int{0, 2, 3}, matches)

	start, _ := e.Current()
	var seen []int
	for i := 0; i < len(matches); i++ {
		pos, ok := e.Next()
		assert.True(t, ok)
		seen = append(seen, pos)
	}

	// After exactly len(matches) calls we are back at the start
	got, _ := e.Current()
	assert.Equal(t, start, got)
	assert.ElementsMatch(t, matches, seen)
}

func TestPrevWraparoundLaw(t *testing.T) {
	stub := &stubVisible{lines: []string{"hit", "hit", "miss", "hit"}}
	e := New(stub, true)
	e.SetQuery("hit")

	start, _ := e.Current()
	for i := 0; i < e.MatchCount(); i++ {
		_, ok := e.Prev()
		assert.True(t, ok)
	}
	got, _ := e.Current()
	assert.Equal(t, start, got)

	// A single prev from the first match wraps to the last
	pos, ok := e.Prev()
	assert.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestCaseSensitivity(t *testing.T) {
	lines := []string{"Error here", "error there", "ERROR everywhere"}

	sensitive := New(&stubVisible{lines: lines}, true)
	sensitive.SetQuery("error")
	assert.Equal(t, []int{1}, sensitive.Matches())

	insensitive := New(&stubVisible{lines: lines}, false)
	insensitive.SetQuery("error")
	assert.Equal(t, []int{0, 1, 2}, insensitive.Matches())
}

func TestRecomputeOnVisibleSetChange(t *testing.T) {
	stub := &stubVisible{lines: []string{"x one", "y", "x two", "x three"}}
	e := New(stub, true)
	e.SetQuery("x")
	assert.Equal(t, []int{0, 2, 3}, e.Matches())
	e.Next()

	// Filter toggle: visible set shrinks and positions shift
	stub.replace([]string{"x two", "x three"})

	// Stale positions are never served; the engine recomputes first
	assert.Equal(t, []int{0, 1}, e.Matches())
	pos, ok := e.Current()
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = e.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestMatchesGoneAfterChange(t *testing.T) {
	stub := &stubVisible{lines: []string{"needle a", "needle b"}}
	e := New(stub, true)
	e.SetQuery("needle")
	assert.Equal(t, 2, e.MatchCount())

	stub.replace([]string{"plain only"})

	assert.Equal(t, 0, e.MatchCount())
	_, ok := e.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, e.CurrentOrdinal())
}

func TestClear(t *testing.T) {
	stub := &stubVisible{lines: []string{"a", "ab"}}
	e := New(stub, true)
	e.SetQuery("a")
	assert.Equal(t, 2, e.MatchCount())

	e.Clear()
	assert.False(t, e.Active())
	assert.Equal(t, 0, e.MatchCount())
}
