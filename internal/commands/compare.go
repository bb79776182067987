package commands

import (
	"github.com/spf13/cobra"

	"github.com/VISHALVISHAL29/Dashboard/internal/dataset"
	"github.com/VISHALVISHAL29/Dashboard/internal/query"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var req query.Request
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "compare FILE1 FILE2",
		Short: "Compare spending on items between two uploads",
		Long: "Records from the first path are labelled \"File 1\" and from the second \"File 2\".\n" +
			"Totals are kept per file and never summed across files.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, args, req, out)
		},
	}

	cmd.Flags().StringArrayVar(&req.Items, "item", nil, "item to include (repeatable)")
	cmd.Flags().StringVar(&req.Start, "from", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.End, "to", "", "end date, YYYY-MM-DD")
	cmd.Flags().BoolVar(&out.json, "json", false, "print JSON")
	cmd.Flags().StringVar(&out.rowsCSV, "rows-csv", "", "also write aggregated rows to this CSV file")

	return cmd
}

func runCompare(cmd *cobra.Command, opts *rootOptions, paths []string, req query.Request, out outputOptions) error {
	w := cmd.OutOrStdout()

	q, err := query.NewValidator().Build(req)
	if err != nil {
		return userError(w, err)
	}

	p := opts.pipeline(cmd.Context())
	groups := make([][]dataset.Source, len(paths))
	for i, path := range paths {
		group, err := p.readSources([]string{path})
		if err != nil {
			return err
		}
		groups[i] = group
	}

	id, err := p.upload(dataset.Labelled(groups...))
	if err != nil {
		return userError(w, err)
	}
	ds, err := p.store.Dataset(id)
	if err != nil {
		return err
	}
	defer p.store.Delete(id)

	p.warnUnknownItems(ds, q)
	return render(w, p.service.Compare(ds, q), out)
}
