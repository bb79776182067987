package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/VISHALVISHAL29/Dashboard/internal/chart"
	"github.com/VISHALVISHAL29/Dashboard/internal/dashboard"
	"github.com/VISHALVISHAL29/Dashboard/internal/ledger"
)

type outputOptions struct {
	json    bool
	rowsCSV string
}

type jsonOutput struct {
	Status     string           `json:"status"`
	Message    string           `json:"message,omitempty"`
	Report     string           `json:"report,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
	DataPoints int              `json:"data_points,omitempty"`
	Chart      *chart.Chart     `json:"chart,omitempty"`
}

// render prints an outcome. Failed outcomes are returned as errors.
func render(w io.Writer, outcome dashboard.Outcome, opts outputOptions) error {
	switch o := outcome.(type) {
	case dashboard.Ok:
		if opts.rowsCSV != "" {
			if err := writeRowsFile(opts.rowsCSV, o); err != nil {
				return err
			}
		}
		if opts.json {
			total := o.Result.Summary.Total
			return writeJSON(w, jsonOutput{
				Status:     "ok",
				Report:     o.Report,
				Total:      &total,
				DataPoints: o.Result.Summary.DataPoints,
				Chart:      &o.Chart,
			})
		}
		fmt.Fprintln(w, o.Report)
		return printChart(w, o.Chart)
	case dashboard.Empty:
		if opts.json {
			return writeJSON(w, jsonOutput{Status: "empty", Message: o.Reason})
		}
		fmt.Fprintln(w, o.Reason)
		return nil
	case dashboard.Failed:
		if opts.json {
			if err := writeJSON(w, jsonOutput{Status: "failed", Message: o.Reason}); err != nil {
				return err
			}
		}
		return errors.New(o.Reason)
	}
	return fmt.Errorf("unexpected outcome %T", outcome)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeRowsFile(path string, o dashboard.Ok) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := ledger.WriteRows(f, o.Result); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// printChart prints chart data as an aligned table, one line per point.
func printChart(w io.Writer, c chart.Chart) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw)
	header := "SERIES\t" + c.XLabel + "\t" + c.YLabel
	if c.HasQuantity {
		header += "\t" + c.Y2Label
	}
	fmt.Fprintln(tw, header)

	for _, s := range c.Series {
		name := s.Name
		if s.Style != "" {
			name += " / " + s.Style
		}
		for _, p := range s.Points {
			line := fmt.Sprintf("%s\t%s\t%s", name, p.X, p.Cost.StringFixed(2))
			if c.HasQuantity {
				line += "\t" + p.Quantity.String()
			}
			fmt.Fprintln(tw, line)
		}
	}
	return tw.Flush()
}
