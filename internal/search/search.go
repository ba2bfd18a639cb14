package search

import (
	"strings"

	"github.com/user/logview/internal/source"
)

// Provider is the visible line set the engine searches over. The
// generation changes whenever the visible set does (filter toggles),
// which forces a recomputation before any match navigation.
type Provider interface {
	LineCount() int
	GetLine(pos int) (*source.Line, error)
	Generation() uint64
}

// Engine finds substring matches over the visible lines and tracks a
// cursor through them. Match positions are visible positions, not
// original line indices.
type Engine struct {
	provider      Provider
	caseSensitive bool

	query   string
	matches []int // visible positions containing the query
	cursor  int   // index into matches

	// generation of the provider the matches were computed against
	generation uint64
}

// New creates a search engine over the given visible set
func New(p Provider, caseSensitive bool) *Engine {
	return &Engine{
		provider:      p,
		caseSensitive: caseSensitive,
	}
}

// SetQuery sets the active query and recomputes matches. An empty
// query deactivates search.
func (e *Engine) SetQuery(query string) {
	e.query = query
	e.recompute()
}

// Clear deactivates search
func (e *Engine) Clear() {
	e.query = ""
	e.matches = nil
	e.cursor = 0
}

// Active returns true if a query is set
func (e *Engine) Active() bool {
	return e.query != ""
}

// Query returns the active query string
func (e *Engine) Query() string {
	return e.query
}

// MatchCount returns the number of matches in the visible set
func (e *Engine) MatchCount() int {
	e.ensureFresh()
	return len(e.matches)
}

// Matches returns the ordered visible positions of all matches
func (e *Engine) Matches() []int {
	e.ensureFresh()
	return e.matches
}

// Current returns the visible position of the current match,
// ok=false when there are no matches
func (e *Engine) Current() (pos int, ok bool) {
	e.ensureFresh()
	if len(e.matches) == 0 {
		return 0, false
	}
	return e.matches[e.cursor], true
}

// CurrentOrdinal returns the 1-based position of the cursor within
// the match list, 0 when there are no matches
func (e *Engine) CurrentOrdinal() int {
	e.ensureFresh()
	if len(e.matches) == 0 {
		return 0
	}
	return e.cursor + 1
}

// Next advances the cursor to the next match, wrapping to the first
// after the last. No-op when the match list is empty.
func (e *Engine) Next() (pos int, ok bool) {
	e.ensureFresh()
	if len(e.matches) == 0 {
		return 0, false
	}
	e.cursor = (e.cursor + 1) % len(e.matches)
	return e.matches[e.cursor], true
}

// Prev moves the cursor to the previous match, wrapping to the last
// before the first. No-op when the match list is empty.
func (e *Engine) Prev() (pos int, ok bool) {
	e.ensureFresh()
	if len(e.matches) == 0 {
		return 0, false
	}
	e.cursor--
	if e.cursor < 0 {
		e.cursor = len(e.matches) - 1
	}
	return e.matches[e.cursor], true
}

// ensureFresh recomputes the match list if the visible set has
// changed since it was built. Callers can never observe a match list
// computed against a stale filter.
func (e *Engine) ensureFresh() {
	if e.generation != e.provider.Generation() {
		e.recompute()
	}
}

func (e *Engine) recompute() {
	e.generation = e.provider.Generation()
	e.matches = nil
	e.cursor = 0
	if e.query == "" {
		return
	}

	query := e.query
	if !e.caseSensitive {
		query = strings.ToLower(query)
	}

	total := e.provider.LineCount()
	for pos := 0; pos < total; pos++ {
		line, err := e.provider.GetLine(pos)
		if err != nil || line == nil {
			continue
		}
		text := string(line.Content)
		if !e.caseSensitive {
			text = strings.ToLower(text)
		}
		if strings.Contains(text, query) {
			e.matches = append(e.matches, pos)
		}
	}
}
