package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/VISHALVISHAL29/Dashboard/internal/ledger"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export PATH...",
		Short: "Write the normalized records of spreadsheets as CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args, outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	return cmd
}

func runExport(cmd *cobra.Command, opts *rootOptions, paths []string, outPath string) error {
	p := opts.pipeline(cmd.Context())
	sources, err := p.readSources(paths)
	if err != nil {
		return err
	}
	id, err := p.upload(sources)
	if err != nil {
		return userError(cmd.OutOrStdout(), err)
	}
	defer p.store.Delete(id)

	ds, err := p.store.Dataset(id)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	if err := ledger.WriteRecords(w, ds.Records); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	p.log.Info().Int("records", ds.Len()).Str("out", outPath).Msg("exported records")
	return nil
}
