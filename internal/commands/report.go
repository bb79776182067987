package commands

import (
	"github.com/spf13/cobra"

	"github.com/VISHALVISHAL29/Dashboard/internal/query"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var req query.Request
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "report PATH...",
		Short: "Summarize spending on items over a date range",
		Long: "Loads every sheet of the given spreadsheets (or directories of spreadsheets),\n" +
			"filters by item and inclusive date range and prints a summary and chart data.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args, req, out)
		},
	}

	cmd.Flags().StringArrayVar(&req.Items, "item", nil, "item to include (repeatable)")
	cmd.Flags().StringVar(&req.Start, "from", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.End, "to", "", "end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Grouping, "group", "none", "grouping: none, month or year")
	cmd.Flags().BoolVar(&out.json, "json", false, "print JSON")
	cmd.Flags().StringVar(&out.rowsCSV, "rows-csv", "", "also write aggregated rows to this CSV file")

	return cmd
}

func runReport(cmd *cobra.Command, opts *rootOptions, paths []string, req query.Request, out outputOptions) error {
	w := cmd.OutOrStdout()

	q, err := query.NewValidator().Build(req)
	if err != nil {
		return userError(w, err)
	}

	p := opts.pipeline(cmd.Context())
	sources, err := p.readSources(paths)
	if err != nil {
		return err
	}
	id, err := p.upload(sources)
	if err != nil {
		return userError(w, err)
	}
	ds, err := p.store.Dataset(id)
	if err != nil {
		return err
	}
	defer p.store.Delete(id)

	p.warnUnknownItems(ds, q)
	return render(w, p.service.Summarize(ds, q), out)
}
