package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aquarium-catalog/internal/export"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		out         string
		concurrency int
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static, browsable copy of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.newApp(os.Stderr)
			if err != nil {
				return err
			}
			defer a.sync()

			opts := export.Options{OutDir: out, Concurrency: concurrency, Log: a.log}
			if !quiet {
				opts.Progress = cmd.ErrOrStderr()
			}

			res, err := export.New(a.catalog, opts).Export(cmd.Context())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d pages written to %s\n", len(res.Files), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "site", "output directory")
	cmd.Flags().IntVar(&concurrency, "concurrency", export.DefaultConcurrency, "detail pages rendered in parallel")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no progress bar")
	return cmd
}
