package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"hexview/internal/hexfile"
	"hexview/internal/view"
)

type Theme struct {
	Background       string `toml:"background"`
	OffsetColor      string `toml:"offset_color"`
	TextColor        string `toml:"text_color"`
	HeaderColor      string `toml:"header_color"`
	MarkerColor      string `toml:"marker_color"`
	LegendBackground string `toml:"legend_background"`
	LegendHighlight  string `toml:"legend_highlight"`
	BorderColor      string `toml:"border_color"`
	DisabledColor    string `toml:"disabled_color"`
	ErrorColor       string `toml:"error_color"`
	ScrollThumb      string `toml:"scroll_thumb"`
	ScrollTrack      string `toml:"scroll_track"`
}

// Display holds the startup values for the viewer. Out-of-range values in
// the config file fall back to the documented defaults, same as bad
// command-line input.
type Display struct {
	Columns     int   `toml:"columns"`
	Rows        int   `toml:"rows"`
	MaxFileSize int64 `toml:"max_file_size"`
}

type Config struct {
	Display Display `toml:"display"`
	Theme   Theme   `toml:"theme"`

	// File this config was loaded from; Save writes back to it.
	path string
}

func DefaultConfig() *Config {
	return &Config{
		Display: Display{
			Columns:     view.ColumnDefault,
			Rows:        view.RowDefault,
			MaxFileSize: hexfile.MaxFileSize,
		},
		Theme: Theme{
			Background:       "#000000",
			OffsetColor:      "#00AAAA",
			TextColor:        "#CCCCCC",
			HeaderColor:      "#888888",
			MarkerColor:      "#FFFFFF",
			LegendBackground: "#0000AA",
			LegendHighlight:  "#FF5555",
			BorderColor:      "#0000AA",
			DisabledColor:    "#666666",
			ErrorColor:       "#FF5555",
			ScrollThumb:      "#AAAAAA",
			ScrollTrack:      "#333333",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hexview.toml"
	}
	return filepath.Join(home, ".config", "hexview", "hexview.toml")
}

// LogPath is where diagnostics go; the terminal belongs to the viewer.
func LogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hexview.log"
	}
	return filepath.Join(home, ".config", "hexview", "hexview.log")
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}
	cfg.path = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		cfg = DefaultConfig()
		cfg.path = path
		return cfg, err
	}

	cfg.sanitize()
	return cfg, nil
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = ConfigPath()
	}
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

func (c *Config) sanitize() {
	if c.Display.Columns < view.ColumnMin || c.Display.Columns > view.ColumnMax {
		c.Display.Columns = view.ColumnDefault
	}
	if c.Display.Rows < view.RowMin || c.Display.Rows > view.RowMax {
		c.Display.Rows = view.RowDefault
	}
	if c.Display.MaxFileSize <= 0 || c.Display.MaxFileSize > hexfile.MaxFileSize {
		c.Display.MaxFileSize = hexfile.MaxFileSize
	}
}

type Styles struct {
	Background lipgloss.Style
	Offset     lipgloss.Style
	Text       lipgloss.Style
	Header     lipgloss.Style
	Marker     lipgloss.Style
	Legend     lipgloss.Style
	LegendKey  lipgloss.Style
	Border     lipgloss.Style
	Disabled   lipgloss.Style
	Error      lipgloss.Style
	Thumb      lipgloss.Style
	Track      lipgloss.Style
	Title      lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Background)),
		Offset: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.OffsetColor)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextColor)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HeaderColor)),
		Marker: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.MarkerColor)).
			Bold(true),
		Legend: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		LegendKey: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color(theme.LegendHighlight)).
			Bold(true),
		Border: lipgloss.NewStyle().
			BorderForeground(lipgloss.Color(theme.BorderColor)),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DisabledColor)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorColor)).
			Bold(true),
		Thumb: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ScrollThumb)),
		Track: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ScrollTrack)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
	}
}
