package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/VISHALVISHAL29/Dashboard/internal/aggregate"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/period"
)

// DefaultCurrencySymbol prefixes every money amount unless configured.
const DefaultCurrencySymbol = "₹"

// ErrNoRows is returned when asked to describe an empty result.
var ErrNoRows = errors.New("no aggregated rows")

// Formatter renders aggregation results as plain text summaries.
type Formatter struct {
	symbol string
}

// NewFormatter returns a Formatter using symbol for money. Empty means
// DefaultCurrencySymbol.
func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return &Formatter{symbol: symbol}
}

// Format renders the summary for q. The template depends on whether r is a
// comparison and on its grouping.
func (f *Formatter) Format(q model.Query, r aggregate.Result) (string, error) {
	if len(r.Rows) == 0 {
		return "", ErrNoRows
	}
	if r.Summary.Top == nil {
		return "", errors.New("summary has rows but no top group")
	}

	var b strings.Builder
	var err error
	switch {
	case r.Compare:
		err = f.comparison(&b, q, r)
	case r.Grouping == model.GroupNone:
		err = f.daily(&b, q, r)
	case r.Grouping == model.GroupMonth:
		err = f.monthly(&b, q, r)
	case r.Grouping == model.GroupYear:
		err = f.yearly(&b, q, r)
	default:
		err = fmt.Errorf("unknown grouping %s", r.Grouping)
	}
	if err != nil {
		return "", err
	}
	f.footer(&b, r.Summary)
	return b.String(), nil
}

func (f *Formatter) header(b *strings.Builder, title string, q model.Query) {
	fmt.Fprintf(b, "%s for %s\n", title, strings.Join(q.Descriptions, ", "))
	fmt.Fprintf(b, "Period: %s to %s\n\n", q.Start, q.End)
}

func (f *Formatter) daily(b *strings.Builder, q model.Query, r aggregate.Result) error {
	top := r.Summary.Top
	f.header(b, "Expenditure summary", q)
	fmt.Fprintf(b, "The highest cost occurred on %s (%s) with a total value of %s.\n",
		top.Date, top.Description, f.Money(top.TotalCost))
	return nil
}

func (f *Formatter) monthly(b *strings.Builder, q model.Query, r aggregate.Result) error {
	top := r.Summary.Top
	f.header(b, "Month-wise expenditure summary", q)
	fmt.Fprintf(b, "The highest monthly cost occurred in %s %d with a total value of %s.\n",
		period.MonthLabel(top.Month), top.Year, f.Money(top.TotalCost))
	return nil
}

func (f *Formatter) yearly(b *strings.Builder, q model.Query, r aggregate.Result) error {
	s := r.Summary
	if s.TopYear == nil || len(s.Years) == 0 {
		return errors.New("year-wise summary has no yearly totals")
	}
	f.header(b, "Year-wise expenditure summary", q)
	b.WriteString("Yearly totals:\n")
	for _, y := range s.Years {
		fmt.Fprintf(b, "  %d: %s\n", y.Year, f.Money(y.Total))
	}
	fmt.Fprintf(b, "The highest yearly total was in %d at %s.\n", s.TopYear.Year, f.Money(s.TopYear.Total))
	fmt.Fprintf(b, "The highest monthly cost occurred in %s %d with a total value of %s.\n",
		period.MonthLabel(s.Top.Month), s.Top.Year, f.Money(s.Top.TotalCost))
	return nil
}

func (f *Formatter) comparison(b *strings.Builder, q model.Query, r aggregate.Result) error {
	s := r.Summary
	if len(s.Sources) == 0 {
		return errors.New("comparison summary has no sources")
	}
	names := make([]string, len(s.Sources))
	for i, src := range s.Sources {
		names[i] = src.Source
	}
	f.header(b, "Comparison of "+strings.Join(names, " and "), q)
	for _, src := range s.Sources {
		fmt.Fprintf(b, "%s: total %s; largest item %s at %s.\n",
			src.Source, f.Money(src.Total), src.TopDescription, f.Money(src.TopTotal))
	}
	fmt.Fprintf(b, "The highest single cost occurred on %s in %s (%s) with a total value of %s.\n",
		s.Top.Date, s.Top.Source, s.Top.Description, f.Money(s.Top.TotalCost))
	return nil
}

func (f *Formatter) footer(b *strings.Builder, s aggregate.Summary) {
	fmt.Fprintf(b, "Total expenditure: %s across %d data %s.\n",
		f.Money(s.Total), s.DataPoints, plural(s.DataPoints, "point", "points"))
	if s.HasQuantity {
		fmt.Fprintf(b, "Total quantity: %s.\n", s.TotalQuantity.String())
	}
}

// Money formats d with the currency symbol, thousands grouping and two
// decimal places, e.g. "₹1,234.50".
func (f *Formatter) Money(d decimal.Decimal) string {
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = humanize.Comma(n)
	}
	return sign + f.symbol + whole + "." + frac
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
