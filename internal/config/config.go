package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	Theme       ThemeConfig      `toml:"theme"`
	LogLevels   LogLevelConfig   `toml:"log_levels"`
	Search      SearchConfig     `toml:"search"`
	Keybindings KeybindingConfig `toml:"keybindings"`
	Display     DisplayConfig    `toml:"display"`
}

// ThemeConfig defines color schemes
type ThemeConfig struct {
	Name          string         `toml:"name"`
	LineNumbers   string         `toml:"line_numbers"`
	StatusBar     string         `toml:"status_bar"`
	StatusBarText string         `toml:"status_bar_text"`
	SearchMatch   string         `toml:"search_match"`
	Levels        LogLevelColors `toml:"levels"`
}

// LogLevelColors defines colors for each log level
type LogLevelColors struct {
	Info     string `toml:"info"`
	Warning  string `toml:"warning"`
	Error    string `toml:"error"`
	Critical string `toml:"critical"`
}

// LogLevelConfig defines log level detection tokens.
// Detection is case-sensitive and lexical; the leftmost token in a
// line determines its level.
type LogLevelConfig struct {
	InfoPatterns     []string `toml:"info_patterns"`
	WarningPatterns  []string `toml:"warning_patterns"`
	ErrorPatterns    []string `toml:"error_patterns"`
	CriticalPatterns []string `toml:"critical_patterns"`
}

// SearchConfig holds substring search options
type SearchConfig struct {
	CaseSensitive bool `toml:"case_sensitive"`
}

// KeybindingConfig allows customizing keybindings
type KeybindingConfig struct {
	Quit         []string `toml:"quit"`
	ScrollUp     []string `toml:"scroll_up"`
	ScrollDown   []string `toml:"scroll_down"`
	PageUp       []string `toml:"page_up"`
	PageDown     []string `toml:"page_down"`
	Top          []string `toml:"top"`
	Bottom       []string `toml:"bottom"`
	Search       []string `toml:"search"`
	NextMatch    []string `toml:"next_match"`
	PrevMatch    []string `toml:"prev_match"`
	FilterSelect []string `toml:"filter_select"`
	Goto         []string `toml:"goto"`
	GotoTime     []string `toml:"goto_time"`
	Export       []string `toml:"export"`
	Reload       []string `toml:"reload"`
}

// DisplayConfig holds display options
type DisplayConfig struct {
	ShowLineNumbers bool `toml:"show_line_numbers"`
	SyntaxHighlight bool `toml:"syntax_highlight"`
	TabWidth        int  `toml:"tab_width"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name:          "subtle",
			LineNumbers:   "240", // Dark gray
			StatusBar:     "236", // Darker gray background
			StatusBarText: "252", // Light gray text
			SearchMatch:   "226", // Yellow
			Levels: LogLevelColors{
				Info:     "45",  // Cyan
				Warning:  "214", // Orange
				Error:    "167", // Soft red
				Critical: "196", // Bright red
			},
		},
		LogLevels: LogLevelConfig{
			InfoPatterns:     []string{"INFO"},
			WarningPatterns:  []string{"WARNING"},
			ErrorPatterns:    []string{"ERROR"},
			CriticalPatterns: []string{"CRITICAL"},
		},
		Search: SearchConfig{
			CaseSensitive: true,
		},
		Keybindings: KeybindingConfig{
			Quit:         []string{"q", "ctrl+c"},
			ScrollUp:     []string{"k", "up"},
			ScrollDown:   []string{"j", "down"},
			PageUp:       []string{"b", "pgup", "ctrl+u"},
			PageDown:     []string{"pgdown", "ctrl+d", " "},
			Top:          []string{"g", "home"},
			Bottom:       []string{"G", "end"},
			Search:       []string{"/", "s"},
			NextMatch:    []string{"n"},
			PrevMatch:    []string{"N"},
			FilterSelect: []string{"f"},
			Goto:         []string{":"},
			GotoTime:     []string{"t"},
			Export:       []string{"W"},
			Reload:       []string{"r"},
		},
		Display: DisplayConfig{
			ShowLineNumbers: true,
			SyntaxHighlight: false,
			TabWidth:        4,
		},
	}
}

// Load loads config from file, falling back to defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := getConfigPath()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves config to file
func Save(cfg *Config) error {
	configPath := getConfigPath()
	if configPath == "" {
		return nil
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "logview", "config.toml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "logview", "config.toml")
}

// GetConfigPath exports the config path for user reference
func GetConfigPath() string {
	return getConfigPath()
}
