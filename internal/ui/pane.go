package ui

import (
	"fmt"

	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/export"
	"github.com/user/logview/internal/render"
	"github.com/user/logview/internal/search"
	"github.com/user/logview/internal/source"
	"github.com/user/logview/internal/view"
	"github.com/user/logview/pkg/logformat"
)

// Pane owns the whole navigation engine for one file: the line index
// (via FileSource), the level filter, the search state and the
// viewport. Each user action maps to one method; every method leaves
// the derived state (visible set, match list, scroll clamp) consistent
// before returning.
type Pane struct {
	viewport *view.Viewport
	source   *source.FileSource
	filtered *source.FilteredProvider
	search   *search.Engine
	tsParser *logformat.TimestampParser
	cfg      *config.Config

	filename string
}

// NewPane opens a file and builds the engine around it
func NewPane(filePath string, cfg *config.Config) (*Pane, error) {
	detector := logformat.NewLevelDetector(&cfg.LogLevels)

	src, err := source.NewFileSource(filePath, detector.DetectFunc())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}

	filtered := source.NewFilteredProvider(src)

	viewport := view.NewViewport(80, 24)
	viewport.SetProvider(filtered)
	viewport.SetShowLineNumbers(cfg.Display.ShowLineNumbers)
	viewport.SetRenderer(pickRenderer(filePath, cfg))

	return &Pane{
		viewport: viewport,
		source:   src,
		filtered: filtered,
		search:   search.New(filtered, cfg.Search.CaseSensitive),
		tsParser: logformat.NewTimestampParser(),
		cfg:      cfg,
		filename: filePath,
	}, nil
}

func pickRenderer(filePath string, cfg *config.Config) render.Renderer {
	if cfg.Display.SyntaxHighlight {
		if sr := render.NewSyntaxRenderer(filePath); sr.IsHighlightable() {
			return sr
		}
	}
	return render.NewLogLevelRenderer(cfg)
}

// Scrolling

func (p *Pane) ScrollDown(n int) { p.viewport.ScrollDown(n) }
func (p *Pane) ScrollUp(n int)   { p.viewport.ScrollUp(n) }
func (p *Pane) PageDown()        { p.viewport.PageDown() }
func (p *Pane) PageUp()          { p.viewport.PageUp() }
func (p *Pane) GotoTop()         { p.viewport.GotoTop() }
func (p *Pane) GotoBottom()      { p.viewport.GotoBottom() }

// GotoLine scrolls to a 0-based visible position
func (p *Pane) GotoLine(pos int) { p.viewport.GotoLine(pos) }

// Resize re-clamps the scroll position under the new dimensions
func (p *Pane) Resize(width, height int) {
	p.viewport.SetSize(width, height)
}

// Filtering

// SetLevelFilter narrows the view to a single level. The visible set
// is recomputed immediately; the match list follows on next access.
func (p *Pane) SetLevelFilter(level source.LogLevel) {
	p.filtered.SetOnlyLevel(level)
	p.viewport.GotoTop()
	p.refreshHighlight()
}

// ClearFilter restores the unfiltered view
func (p *Pane) ClearFilter() {
	p.filtered.ClearFilter()
	p.viewport.GotoTop()
	p.refreshHighlight()
}

// FilterLevel returns the active filter, LevelNone when showing all
func (p *Pane) FilterLevel() source.LogLevel {
	return p.filtered.Level()
}

// Searching

// Search sets the query and centers the first match, if any
func (p *Pane) Search(query string) {
	p.search.SetQuery(query)
	if pos, ok := p.search.Current(); ok {
		p.viewport.Center(pos)
	}
	p.refreshHighlight()
}

// ClearSearch deactivates search
func (p *Pane) ClearSearch() {
	p.search.Clear()
	p.viewport.ClearHighlight()
}

// NextMatch centers the next match, wrapping past the last.
// No-op when there are no matches.
func (p *Pane) NextMatch() {
	if pos, ok := p.search.Next(); ok {
		p.viewport.Center(pos)
	}
	p.refreshHighlight()
}

// PrevMatch centers the previous match, wrapping past the first
func (p *Pane) PrevMatch() {
	if pos, ok := p.search.Prev(); ok {
		p.viewport.Center(pos)
	}
	p.refreshHighlight()
}

// refreshHighlight points the viewport highlight at the current
// match's original line, or clears it
func (p *Pane) refreshHighlight() {
	pos, ok := p.search.Current()
	if !ok {
		p.viewport.ClearHighlight()
		return
	}
	p.viewport.SetHighlightedLine(p.filtered.OriginalLineNumber(pos))
}

// Reload re-reads the file and rebuilds the index; the only
// sanctioned re-read after load
func (p *Pane) Reload() error {
	if err := p.source.Reload(); err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	p.filtered.MarkStale()
	p.viewport.SetProvider(p.filtered)
	p.refreshHighlight()
	return nil
}

// JumpToTime scrolls to the first visible line whose timestamp is at
// or after the given time of day ("HH:MM" or "HH:MM:SS"). Returns
// false if no such line exists.
func (p *Pane) JumpToTime(target string) (bool, error) {
	want, err := logformat.ParseTimeOfDay(target)
	if err != nil {
		return false, err
	}

	total := p.filtered.LineCount()
	for pos := 0; pos < total; pos++ {
		line, err := p.filtered.GetLine(pos)
		if err != nil || line == nil {
			continue
		}
		ts, ok := p.tsParser.Parse(line.Content)
		if !ok {
			continue
		}
		if logformat.SecondsOfDay(ts) >= want {
			p.viewport.GotoLine(pos)
			return true, nil
		}
	}
	return false, nil
}

// Export writes the currently visible subsequence to a file
func (p *Pane) Export(path string) (int, error) {
	return export.WriteVisible(p.filtered, path)
}

// Status accessors

// Filename returns the path of the viewed file
func (p *Pane) Filename() string {
	return p.filename
}

// VisibleCount returns the number of lines in the current view
func (p *Pane) VisibleCount() int {
	return p.filtered.LineCount()
}

// TotalCount returns the number of lines in the file
func (p *Pane) TotalCount() int {
	return p.source.LineCount()
}

// SearchActive returns true if a query is set
func (p *Pane) SearchActive() bool {
	return p.search.Active()
}

// MatchStatus returns the current match ordinal and total match count
func (p *Pane) MatchStatus() (current, total int) {
	return p.search.CurrentOrdinal(), p.search.MatchCount()
}

// Viewport exposes the viewport for rendering
func (p *Pane) Viewport() *view.Viewport {
	return p.viewport
}

// Close releases the underlying file
func (p *Pane) Close() error {
	return p.source.Close()
}
