package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chwzr/ag-grid-treedata/config"
	"github.com/chwzr/ag-grid-treedata/export"
	"github.com/chwzr/ag-grid-treedata/logging"
	"github.com/chwzr/ag-grid-treedata/treedata"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	logLevel string
	logJSON  bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "treedata",
		Short: "Constrained hierarchical dataset generator",
		Long: `treedata builds synthetic tree-shaped datasets for hierarchical grids.

Every prefix of every label combination becomes one entry with plan and
forecast values per period; sibling values always sum exactly to the
configured constraint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(g.logLevel)
			if err != nil {
				return err
			}
			g.logger = logging.New(logging.Config{
				Level:   level,
				JSON:    g.logJSON,
				Output:  cmd.ErrOrStderr(),
				Service: "treedata",
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&g.logJSON, "log-json", false, "Emit logs as JSON")

	root.AddCommand(
		newGenerateCmd(g),
		newVerifyCmd(g),
		newInitCmd(g),
		newServeCmd(g),
	)

	return root
}

// loadConfig reads path, or falls back to the example config when path is empty.
func loadConfig(path string) (treedata.Config, error) {
	if path == "" {
		return treedata.ExampleConfig(), nil
	}
	return config.Load(path)
}

// resolveFormat honours an explicit --format, otherwise infers it from the
// file extension and defaults to JSON.
func resolveFormat(flag, path string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return export.FormatYAML, nil
	default:
		return export.FormatJSON, nil
	}
}

// createOutput opens path for writing, creating parent directories.
func createOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}
