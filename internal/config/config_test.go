package config

import (
	"os"
	"path/filepath"
	"testing"

	"hexview/internal/hexfile"
	"hexview/internal/view"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Columns != view.ColumnDefault {
		t.Errorf("expected default columns %d, got %d", view.ColumnDefault, cfg.Display.Columns)
	}
	if cfg.Display.Rows != view.RowDefault {
		t.Errorf("expected default rows %d, got %d", view.RowDefault, cfg.Display.Rows)
	}
	if cfg.Display.MaxFileSize != hexfile.MaxFileSize {
		t.Errorf("expected default max file size, got %d", cfg.Display.MaxFileSize)
	}
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexview.toml")
	content := "[display]\ncolumns = 8\nrows = 40\n\n[theme]\ntext_color = \"#FFFFFF\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Columns != 8 {
		t.Errorf("expected 8 columns, got %d", cfg.Display.Columns)
	}
	if cfg.Display.Rows != 40 {
		t.Errorf("expected 40 rows, got %d", cfg.Display.Rows)
	}
	if cfg.Theme.TextColor != "#FFFFFF" {
		t.Errorf("expected overridden text color, got %q", cfg.Theme.TextColor)
	}
	// Unset fields keep their defaults.
	if cfg.Theme.OffsetColor != DefaultConfig().Theme.OffsetColor {
		t.Errorf("expected default offset color, got %q", cfg.Theme.OffsetColor)
	}
}

func TestLoadOutOfRangeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexview.toml")
	content := "[display]\ncolumns = 0\nrows = 1000\nmax_file_size = -5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Columns != view.ColumnDefault {
		t.Errorf("expected fallback to default columns, got %d", cfg.Display.Columns)
	}
	if cfg.Display.Rows != view.RowDefault {
		t.Errorf("expected fallback to default rows, got %d", cfg.Display.Rows)
	}
	if cfg.Display.MaxFileSize != hexfile.MaxFileSize {
		t.Errorf("expected fallback to default max file size, got %d", cfg.Display.MaxFileSize)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "hexview.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Display.Columns = 8
	cfg.Display.Rows = 40
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Display.Columns != 8 {
		t.Errorf("expected saved columns 8, got %d", again.Display.Columns)
	}
	if again.Display.Rows != 40 {
		t.Errorf("expected saved rows 40, got %d", again.Display.Rows)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexview.toml")
	if err := os.WriteFile(path, []byte("not toml ==="), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("expected a decode error")
	}
	if cfg == nil || cfg.Display.Columns != view.ColumnDefault {
		t.Error("expected defaults alongside the decode error")
	}
}
