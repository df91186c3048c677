package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chwzr/ag-grid-treedata/export"
	"github.com/chwzr/ag-grid-treedata/treedata"
)

type generateOptions struct {
	configPath string
	seed       int64
	rel        bool
	format     string
	out        string
	verify     bool
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset document",
		Long: `Generates one dataset and writes it as a JSON or YAML document.

Without --config the built-in example levels are used (regions, channels,
product lines). --seed makes the output reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, g, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Path to a YAML config file")
	f.Int64Var(&o.seed, "seed", 0, "Seed for reproducible output")
	f.BoolVar(&o.rel, "rel", false, "Attach the rel series (overrides config)")
	f.StringVar(&o.format, "format", "", "Output format: json or yaml (default from --out extension, else json)")
	f.StringVarP(&o.out, "out", "o", "", "Write to FILE instead of stdout")
	f.BoolVar(&o.verify, "verify", false, "Check all invariants before writing")

	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalOptions, o *generateOptions) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rel") {
		cfg.IncludeRel = o.rel
	}

	format, err := resolveFormat(o.format, o.out)
	if err != nil {
		return err
	}

	opts := []treedata.Option{treedata.WithLogger(g.logger)}
	var seed *int64
	if cmd.Flags().Changed("seed") {
		seed = &o.seed
		opts = append(opts, treedata.WithSeed(o.seed))
	}

	entries, err := treedata.GenerateTree(cfg, opts...)
	if err != nil {
		return err
	}
	if o.verify {
		if err := treedata.Verify(entries, cfg); err != nil {
			return err
		}
	}

	doc := export.NewDocument(cfg, entries, seed)

	if err := writeDocument(cmd.OutOrStdout(), o.out, doc, format); err != nil {
		return err
	}

	g.logger.Info("dataset generated",
		"id", doc.ID,
		"entries", len(entries),
		"depth", cfg.MaxDepth(),
		"format", format,
	)

	return nil
}

// writeDocument encodes doc to path, or to stdout when path is empty.
// Encode and close errors on the file are both returned.
func writeDocument(stdout io.Writer, path string, doc export.Document, format export.Format) error {
	if path == "" {
		if err := export.Encode(stdout, doc, format); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		return nil
	}

	f, err := createOutput(path)
	if err != nil {
		return err
	}
	if err := export.Encode(f, doc, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
