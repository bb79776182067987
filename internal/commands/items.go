package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/VISHALVISHAL29/Dashboard/internal/catalog"
	"github.com/VISHALVISHAL29/Dashboard/internal/dataset"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

func newItemsCommand(opts *rootOptions) *cobra.Command {
	var sections bool

	cmd := &cobra.Command{
		Use:   "items PATH...",
		Short: "List the items found in spreadsheets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(cmd, opts, args, sections)
		},
	}

	cmd.Flags().BoolVar(&sections, "sections", false, "also show which sheets were accepted or skipped")

	return cmd
}

func runItems(cmd *cobra.Command, opts *rootOptions, paths []string, sections bool) error {
	w := cmd.OutOrStdout()

	p := opts.pipeline(cmd.Context())
	sources, err := p.readSources(paths)
	if err != nil {
		return err
	}
	id, err := p.upload(sources)
	if err != nil {
		var nvs *dataset.NoValidSectionsError
		if sections && errors.As(err, &nvs) {
			if err := printSections(w, nvs.Outcomes); err != nil {
				return err
			}
		}
		return userError(w, err)
	}
	defer p.store.Delete(id)

	sess, ok := p.store.Get(id)
	if !ok {
		return fmt.Errorf("session %s vanished", id)
	}
	if sections {
		if err := printSections(w, sess.Outcomes); err != nil {
			return err
		}
	}

	for _, item := range catalog.New(sess.Dataset.Records).All() {
		fmt.Fprintln(w, item)
	}
	return nil
}

func printSections(w io.Writer, outcomes []dataset.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSHEET\tSTATUS\tRECORDS\tDROPPED\tMISSING")
	for _, o := range outcomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			o.File, o.Sheet, o.Status, o.Records, o.Dropped, joinRoles(o.Missing))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func joinRoles(roles []model.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ",")
}
