package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chwzr/ag-grid-treedata/export"
)

func newVerifyCmd(g *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Check a dataset document against its own config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := resolveFormat(format, path)
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			doc, err := export.Decode(file, f)
			if err != nil {
				return err
			}
			if err := doc.Verify(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			g.logger.Debug("document verified", "id", doc.ID, "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d entries (%s)\n", len(doc.Entries), doc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: json or yaml (default from extension)")

	return cmd
}
