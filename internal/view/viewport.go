package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/logview/internal/render"
	"github.com/user/logview/internal/source"
)

// Viewport manages the visible portion of content.
// It knows nothing about log formats, filters, or file sources.
// It only knows how to display lines from a LineProvider.
type Viewport struct {
	provider source.LineProvider
	renderer render.Renderer

	// Dimensions
	width  int
	height int

	// Scroll position (top visible position in the provider)
	scrollOffset int

	// Styling
	lineNumberStyle lipgloss.Style
	highlightStyle  lipgloss.Style

	// Options
	showLineNumbers bool

	// Highlighted line (original index, -1 for none)
	highlightedLine int
}

// NewViewport creates a new viewport
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:           width,
		height:          height,
		showLineNumbers: true,
		lineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		highlightStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		renderer:        render.NewPlainRenderer(),
		highlightedLine: -1,
	}
}

// SetHighlightedLine sets which original line index to highlight (-1 for none)
func (v *Viewport) SetHighlightedLine(originalIndex int) {
	v.highlightedLine = originalIndex
}

// ClearHighlight removes any line highlight
func (v *Viewport) ClearHighlight() {
	v.highlightedLine = -1
}

// SetRenderer sets the line renderer
func (v *Viewport) SetRenderer(r render.Renderer) {
	v.renderer = r
}

// SetProvider sets the line provider, keeping the scroll position
// where the new bounds allow
func (v *Viewport) SetProvider(provider source.LineProvider) {
	v.provider = provider
	v.clampScroll()
}

// SetSize updates viewport dimensions. The scroll position is
// re-clamped under the new height, not reset.
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clampScroll()
}

// Height returns the viewport height in lines
func (v *Viewport) Height() int {
	return v.height
}

// ScrollDown scrolls down by n lines
func (v *Viewport) ScrollDown(n int) {
	v.scrollOffset += n
	v.clampScroll()
}

// ScrollUp scrolls up by n lines
func (v *Viewport) ScrollUp(n int) {
	v.scrollOffset -= n
	v.clampScroll()
}

// PageDown scrolls down by one page
func (v *Viewport) PageDown() {
	v.ScrollDown(v.height - 1)
}

// PageUp scrolls up by one page
func (v *Viewport) PageUp() {
	v.ScrollUp(v.height - 1)
}

// GotoTop scrolls to the beginning
func (v *Viewport) GotoTop() {
	v.scrollOffset = 0
}

// GotoBottom scrolls to the end
func (v *Viewport) GotoBottom() {
	if v.provider == nil {
		return
	}
	v.scrollOffset = v.provider.LineCount() - v.height
	v.clampScroll()
}

// GotoLine scrolls so the given position is the top visible line
func (v *Viewport) GotoLine(pos int) {
	v.scrollOffset = pos
	v.clampScroll()
}

// Center scrolls so the given position sits in the middle of the
// window, clamped to the valid range. Used for match navigation: the
// target is always inside the rendered window afterwards.
func (v *Viewport) Center(pos int) {
	v.scrollOffset = pos - v.height/2
	v.clampScroll()
}

// Contains reports whether a position is inside the rendered window
func (v *Viewport) Contains(pos int) bool {
	return pos >= v.scrollOffset && pos < v.scrollOffset+v.height
}

// CurrentLine returns the current top position
func (v *Viewport) CurrentLine() int {
	return v.scrollOffset
}

// clampScroll ensures the scroll offset stays within
// [0, max(0, lineCount-height)]
func (v *Viewport) clampScroll() {
	if v.provider == nil {
		v.scrollOffset = 0
		return
	}

	maxScroll := v.provider.LineCount() - v.height
	if maxScroll < 0 {
		maxScroll = 0
	}

	if v.scrollOffset > maxScroll {
		v.scrollOffset = maxScroll
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// Window returns the lines currently in view, at most height of them
func (v *Viewport) Window() ([]*source.Line, error) {
	if v.provider == nil {
		return nil, nil
	}
	return v.provider.GetLines(v.scrollOffset, v.height)
}

// Render returns the viewport content as a string
func (v *Viewport) Render() string {
	if v.provider == nil {
		return ""
	}

	lines, err := v.provider.GetLines(v.scrollOffset, v.height)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var builder strings.Builder
	lineNumWidth := 1
	if n := v.provider.LineCount(); n > 0 {
		lineNumWidth = len(fmt.Sprintf("%d", n))
	}

	for i, line := range lines {
		if i > 0 {
			builder.WriteString("\n")
		}

		isHighlighted := v.highlightedLine >= 0 && line.OriginalIndex == v.highlightedLine

		if v.showLineNumbers {
			numStr := fmt.Sprintf("%*d ", lineNumWidth, line.OriginalIndex+1)
			if isHighlighted {
				builder.WriteString(v.highlightStyle.Render(numStr))
			} else {
				builder.WriteString(v.lineNumberStyle.Render(numStr))
			}
		}

		builder.WriteString(v.renderer.Render(line))
	}

	// Pad with empty lines if needed
	for i := len(lines); i < v.height; i++ {
		if i > 0 || len(lines) > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("~")
	}

	return builder.String()
}

// PercentScrolled returns how far through the content we are
func (v *Viewport) PercentScrolled() float64 {
	if v.provider == nil || v.provider.LineCount() == 0 {
		return 0
	}

	total := v.provider.LineCount()
	if total <= v.height {
		return 100
	}

	return float64(v.scrollOffset) / float64(total-v.height) * 100
}

// SetShowLineNumbers toggles line numbers
func (v *Viewport) SetShowLineNumbers(show bool) {
	v.showLineNumbers = show
}
