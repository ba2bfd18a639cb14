package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/source"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeGoto
	ModeGotoTime
	ModeExport
	ModeFilterSelect
)

// Model is the main application model
type Model struct {
	pane  *Pane
	cfg   *config.Config
	input textinput.Model

	mode   Mode
	width  int
	height int

	// Transient status message, cleared on next keypress
	statusMsg string

	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style
}

// NewModel creates a new application model
func NewModel(filePath string, cfg *config.Config) (*Model, error) {
	pane, err := NewPane(filePath, cfg)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 256

	return &Model{
		pane:  pane,
		cfg:   cfg,
		input: ti,
		mode:  ModeNormal,
		statusStyle: lipgloss.NewStyle().
			Background(lipgloss.Color(cfg.Theme.StatusBar)).
			Foreground(lipgloss.Color(cfg.Theme.StatusBarText)),
		helpStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve 2 lines for status bar and help
		m.pane.Resize(msg.Width, msg.Height-2)
		return m, nil
	}

	return m, nil
}

// bound reports whether the pressed key is in the configured binding list
func bound(msg tea.KeyMsg, keys []string) bool {
	s := msg.String()
	for _, k := range keys {
		if s == k {
			return true
		}
	}
	return false
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch m.mode {
	case ModeSearch, ModeGoto, ModeGotoTime, ModeExport:
		return m.handleInputKey(msg)
	case ModeFilterSelect:
		return m.handleFilterKey(msg)
	}

	kb := &m.cfg.Keybindings

	switch {
	case bound(msg, kb.Quit):
		return m, tea.Quit

	case bound(msg, kb.ScrollDown):
		m.pane.ScrollDown(1)
	case bound(msg, kb.ScrollUp):
		m.pane.ScrollUp(1)

	case bound(msg, kb.PageDown):
		m.pane.PageDown()
	case bound(msg, kb.PageUp):
		m.pane.PageUp()

	case bound(msg, kb.Top):
		m.pane.GotoTop()
	case bound(msg, kb.Bottom):
		m.pane.GotoBottom()

	case bound(msg, kb.Search):
		return m.enterInputMode(ModeSearch, "Search...")

	case bound(msg, kb.Goto):
		return m.enterInputMode(ModeGoto, "Line number...")

	case bound(msg, kb.GotoTime):
		return m.enterInputMode(ModeGotoTime, "Time (HH:MM)...")

	case bound(msg, kb.Export):
		return m.enterInputMode(ModeExport, "Export to file...")

	case bound(msg, kb.NextMatch):
		m.pane.NextMatch()
	case bound(msg, kb.PrevMatch):
		m.pane.PrevMatch()

	case bound(msg, kb.FilterSelect):
		if m.pane.FilterLevel() != source.LevelNone {
			m.pane.ClearFilter()
		} else {
			m.mode = ModeFilterSelect
		}

	case bound(msg, kb.Reload):
		if err := m.pane.Reload(); err != nil {
			m.statusMsg = err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("reloaded, %d lines", m.pane.TotalCount())
		}

	case msg.String() == "esc":
		m.pane.ClearSearch()
	}

	return m, nil
}

func (m *Model) enterInputMode(mode Mode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
	return m, textinput.Blink
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		mode := m.mode
		m.mode = ModeNormal
		m.input.Blur()
		m.applyInput(mode, value)
		return m, nil

	case "esc", "ctrl+c":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyInput(mode Mode, value string) {
	switch mode {
	case ModeSearch:
		if value == "" {
			m.pane.ClearSearch()
			return
		}
		m.pane.Search(value)
		if _, total := m.pane.MatchStatus(); total == 0 {
			m.statusMsg = fmt.Sprintf("no matches for %q", value)
		}

	case ModeGoto:
		var lineNum int
		if _, err := fmt.Sscanf(value, "%d", &lineNum); err == nil && lineNum > 0 {
			m.pane.GotoLine(lineNum - 1)
		}

	case ModeGotoTime:
		found, err := m.pane.JumpToTime(value)
		if err != nil {
			m.statusMsg = err.Error()
		} else if !found {
			m.statusMsg = fmt.Sprintf("no line at or after %s", value)
		}

	case ModeExport:
		if value == "" {
			return
		}
		n, err := m.pane.Export(value)
		if err != nil {
			m.statusMsg = err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("wrote %d lines to %s", n, value)
		}
	}
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal

	switch msg.String() {
	case "i":
		m.pane.SetLevelFilter(source.LevelInfo)
	case "w":
		m.pane.SetLevelFilter(source.LevelWarning)
	case "e":
		m.pane.SetLevelFilter(source.LevelError)
	case "c":
		m.pane.SetLevelFilter(source.LevelCritical)
	case "f", "esc":
		m.pane.ClearFilter()
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	var builder strings.Builder

	builder.WriteString(m.pane.Viewport().Render())
	builder.WriteString("\n")

	builder.WriteString(m.statusStyle.Width(m.width).Render(m.statusLine()))
	builder.WriteString("\n")
	builder.WriteString(m.helpStyle.Render(m.helpLine()))

	return builder.String()
}

func (m *Model) statusLine() string {
	switch m.mode {
	case ModeSearch:
		return "/" + m.input.View()
	case ModeGoto:
		return ":" + m.input.View()
	case ModeGotoTime:
		return "@" + m.input.View()
	case ModeExport:
		return ">" + m.input.View()
	}

	if m.statusMsg != "" {
		return " " + m.statusMsg
	}

	visible := m.pane.VisibleCount()
	lineInfo := fmt.Sprintf("L%d/%d", m.pane.Viewport().CurrentLine()+1, visible)
	if visible == 0 {
		lineInfo = "empty"
	}

	filterInfo := ""
	if level := m.pane.FilterLevel(); level != source.LevelNone {
		filterInfo = fmt.Sprintf(" [%s]", level)
	}

	searchInfo := ""
	if m.pane.SearchActive() {
		cur, total := m.pane.MatchStatus()
		if total == 0 {
			searchInfo = " [no matches]"
		} else {
			searchInfo = fmt.Sprintf(" [match %d/%d]", cur, total)
		}
	}

	percent := fmt.Sprintf("%.0f%%", m.pane.Viewport().PercentScrolled())

	return fmt.Sprintf(" %s%s  %s  %s%s",
		m.pane.Filename(), filterInfo, lineInfo, percent, searchInfo)
}

func (m *Model) helpLine() string {
	switch m.mode {
	case ModeFilterSelect:
		return "i:INFO  w:WARNING  e:ERROR  c:CRITICAL  f/esc:clear"
	case ModeSearch, ModeGoto, ModeGotoTime, ModeExport:
		return "enter:apply  esc:cancel"
	}
	return "j/k:scroll  ctrl+d/u:page  g/G:top/bottom  f:filter  /:search  n/N:match  t:time  r:reload  W:export  q:quit"
}

// Close cleans up resources
func (m *Model) Close() error {
	if m.pane != nil {
		return m.pane.Close()
	}
	return nil
}
