package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chwzr/ag-grid-treedata/config"
	"github.com/chwzr/ag-grid-treedata/treedata"
)

func newInitCmd(g *globalOptions) *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the example config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(out); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", out)
				}
			}
			if err := config.Save(out, treedata.ExampleConfig()); err != nil {
				return err
			}

			g.logger.Info("config written", "path", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "treedata.yaml", "Config file to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
