package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hexview/internal/config"
	"hexview/internal/view"
	"hexview/internal/viewer"
)

var version = "dev"

func main() {
	var (
		columns    int
		rows       int
		gotoOffset string
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "hexview [file]",
		Short: "A read-only hex file viewer",
		Long: `Hexview displays a file as rows of hexadecimal bytes with an ASCII
column, paging through files of arbitrary size without loading them
into memory.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := viewer.Options{ConfigPath: configPath}
			if len(args) > 0 {
				opts.Path = args[0]
			}

			if gotoOffset != "" {
				offset, err := strconv.ParseUint(gotoOffset, 16, 63)
				if err != nil {
					return fmt.Errorf("invalid goto offset %q: must be hexadecimal", gotoOffset)
				}
				opts.StartOffset = int64(offset)
			}

			log := newLogger()

			model, err := viewer.NewModel(opts, log)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("columns") {
				if err := model.SetColumns(columns); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("rows") {
				if err := model.SetRows(rows); err != nil {
					return err
				}
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().IntVarP(&columns, "columns", "c", view.ColumnDefault,
		"bytes per row (1-99)")
	rootCmd.Flags().IntVarP(&rows, "rows", "r", view.RowDefault,
		"rows per page (2-99)")
	rootCmd.Flags().StringVarP(&gotoOffset, "goto", "g", "",
		"initial file offset, hexadecimal")
	rootCmd.Flags().StringVar(&configPath, "config", "",
		"config file (default "+config.ConfigPath()+")")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger sends diagnostics to a file; the terminal belongs to the
// viewer. A logger that cannot open its file logs nowhere rather than
// corrupting the display.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			log.SetOutput(f)
			return log
		}
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.ErrorLevel)
	return log
}
