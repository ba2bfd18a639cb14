package source

// FilteredProvider wraps a LineProvider and narrows it to lines of a
// single log level. With no level set it passes the source through
// untouched. The visible-index cache is recomputed exactly when the
// filter changes, never by re-reading the file.
type FilteredProvider struct {
	source LineProvider

	// LevelNone means no filter (show all)
	level LogLevel

	// Cached visible indices (original line numbers that pass the filter)
	visible []int
	dirty   bool

	// Bumped on every filter mutation so downstream consumers
	// (search) can detect a stale view of the visible set.
	generation uint64
}

// NewFilteredProvider creates an unfiltered provider over source
func NewFilteredProvider(src LineProvider) *FilteredProvider {
	return &FilteredProvider{
		source: src,
		level:  LevelNone,
		dirty:  true,
	}
}

// SetOnlyLevel narrows the view to lines of the given level
func (f *FilteredProvider) SetOnlyLevel(level LogLevel) {
	if f.level == level {
		return
	}
	f.level = level
	f.invalidate()
}

// ClearFilter restores the unfiltered view
func (f *FilteredProvider) ClearFilter() {
	if f.level == LevelNone {
		return
	}
	f.level = LevelNone
	f.invalidate()
}

// Level returns the active filter level, LevelNone if inactive
func (f *FilteredProvider) Level() LogLevel {
	return f.level
}

// Active returns true if a level filter is applied
func (f *FilteredProvider) Active() bool {
	return f.level != LevelNone
}

// Generation identifies the current visible set; it changes whenever
// the filter does.
func (f *FilteredProvider) Generation() uint64 {
	return f.generation
}

// MarkStale forces a rebuild of the visible set, used after the
// underlying source is reloaded.
func (f *FilteredProvider) MarkStale() {
	f.invalidate()
}

func (f *FilteredProvider) invalidate() {
	f.dirty = true
	f.generation++
}

// rebuild recomputes the visible indices if dirty. Indices are
// collected in original order, so the result is strictly increasing.
func (f *FilteredProvider) rebuild() {
	if !f.dirty {
		return
	}
	f.visible = nil

	// Unfiltered view reads through to the source directly
	if f.level == LevelNone {
		f.dirty = false
		return
	}

	total := f.source.LineCount()
	for i := 0; i < total; i++ {
		line, err := f.source.GetLine(i)
		if err != nil || line == nil {
			continue
		}
		if line.Level == f.level {
			f.visible = append(f.visible, i)
		}
	}
	f.dirty = false
}

// LineCount returns the number of visible lines
func (f *FilteredProvider) LineCount() int {
	f.rebuild()
	if f.level == LevelNone {
		return f.source.LineCount()
	}
	return len(f.visible)
}

// GetLine returns the line at a visible position
func (f *FilteredProvider) GetLine(pos int) (*Line, error) {
	f.rebuild()
	if f.level == LevelNone {
		return f.source.GetLine(pos)
	}

	if pos < 0 || pos >= len(f.visible) {
		return nil, nil
	}
	return f.source.GetLine(f.visible[pos])
}

// GetLines returns a range of visible lines
func (f *FilteredProvider) GetLines(start, count int) ([]*Line, error) {
	f.rebuild()
	if f.level == LevelNone {
		return f.source.GetLines(start, count)
	}

	var lines []*Line
	for i := start; i < start+count && i < len(f.visible); i++ {
		if i < 0 {
			continue
		}
		line, err := f.GetLine(i)
		if err != nil {
			return lines, err
		}
		if line != nil {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// OriginalLineNumber maps a visible position back to the original
// line index, -1 if out of range
func (f *FilteredProvider) OriginalLineNumber(pos int) int {
	f.rebuild()
	if f.level == LevelNone {
		if pos < 0 || pos >= f.source.LineCount() {
			return -1
		}
		return pos
	}

	if pos < 0 || pos >= len(f.visible) {
		return -1
	}
	return f.visible[pos]
}

// VisibleIndices returns the ordered original indices of all visible
// lines. The returned slice is owned by the provider.
func (f *FilteredProvider) VisibleIndices() []int {
	f.rebuild()
	if f.level == LevelNone {
		all := make([]int, f.source.LineCount())
		for i := range all {
			all[i] = i
		}
		return all
	}
	return f.visible
}
