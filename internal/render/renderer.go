package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/source"
)

// Renderer applies styling to lines
type Renderer interface {
	Render(line *source.Line) string
}

// LogLevelRenderer colors lines based on their detected level
type LogLevelRenderer struct {
	styles map[source.LogLevel]lipgloss.Style
}

// NewLogLevelRenderer creates a renderer with theme colors
func NewLogLevelRenderer(cfg *config.Config) *LogLevelRenderer {
	styles := map[source.LogLevel]lipgloss.Style{
		source.LevelNone:     lipgloss.NewStyle(),
		source.LevelInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Info)),
		source.LevelWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Warning)),
		source.LevelError:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Error)),
		source.LevelCritical: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Critical)).Bold(true),
	}

	return &LogLevelRenderer{styles: styles}
}

// Render applies log level styling to a line
func (r *LogLevelRenderer) Render(line *source.Line) string {
	style := r.styles[line.Level]
	return style.Render(string(line.Content))
}

// PlainRenderer renders without styling
type PlainRenderer struct{}

// NewPlainRenderer creates a plain renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Render returns the line content as-is
func (r *PlainRenderer) Render(line *source.Line) string {
	return string(line.Content)
}
