package aggregate

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/period"
)

// Row is one aggregated group. Date is set for daily and comparison rows;
// Year and Month are always set.
type Row struct {
	Date          civil.Date
	Year          int
	Month         time.Month
	Description   string
	Source        string
	TotalCost     decimal.Decimal
	TotalQuantity decimal.Decimal
	HasQuantity   bool
}

// YearTotal is the cost subtotal of one calendar year.
type YearTotal struct {
	Year  int
	Total decimal.Decimal
}

// SourceTotal summarizes one provenance in comparison mode.
type SourceTotal struct {
	Source         string
	Total          decimal.Decimal
	TopDescription string
	TopTotal       decimal.Decimal
}

// Summary holds statistics derived from the rows.
type Summary struct {
	Total         decimal.Decimal
	TotalQuantity decimal.Decimal
	HasQuantity   bool
	DataPoints    int
	Top           *Row
	Years         []YearTotal
	TopYear       *YearTotal
	Sources       []SourceTotal
}

// Result is the aggregated, ordered view of a filtered selection.
type Result struct {
	Grouping model.Grouping
	Compare  bool
	Rows     []Row
	Summary  Summary
}

// Aggregate groups records by date and item (GroupNone) or by calendar month
// (GroupMonth, GroupYear) and sums cost and quantity per group.
func Aggregate(records []model.Record, g model.Grouping) Result {
	var rows []Row
	switch g {
	case model.GroupMonth, model.GroupYear:
		rows = byMonth(records)
	default:
		rows = byDay(records)
	}

	res := Result{Grouping: g, Rows: rows, Summary: summarize(rows)}
	if g == model.GroupYear {
		res.Summary.Years, res.Summary.TopYear = yearTotals(rows)
	}
	return res
}

// Compare groups records by date, source and item. Sources are never summed
// together; they are ordered by first appearance in records.
func Compare(records []model.Record) Result {
	order := make(map[string]int)
	for _, r := range records {
		if _, ok := order[r.Source]; !ok {
			order[r.Source] = len(order)
		}
	}

	type key struct {
		date   civil.Date
		source string
		item   string
	}
	index := make(map[key]int)
	var rows []Row
	for _, r := range records {
		k := key{r.Date, r.Source, r.Key()}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, newRow(r, true))
		}
		add(&rows[i], r)
	}

	sortByItem(rows, func(a, b Row) int {
		if a.Date != b.Date {
			return a.Date.Compare(b.Date)
		}
		return order[a.Source] - order[b.Source]
	})

	res := Result{Grouping: model.GroupNone, Compare: true, Rows: rows, Summary: summarize(rows)}
	res.Summary.Sources = sourceTotals(rows, order)
	return res
}

func byDay(records []model.Record) []Row {
	type key struct {
		date civil.Date
		item string
	}
	index := make(map[key]int)
	var rows []Row
	for _, r := range records {
		k := key{r.Date, r.Key()}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, newRow(r, false))
		}
		add(&rows[i], r)
	}

	sortByItem(rows, func(a, b Row) int {
		return a.Date.Compare(b.Date)
	})
	return rows
}

// sortByItem stably sorts rows by cmp, breaking ties by folded item name.
// Item keys are computed once per row.
func sortByItem(rows []Row, cmp func(a, b Row) int) {
	type keyed struct {
		row Row
		key string
	}
	ks := make([]keyed, len(rows))
	for i, r := range rows {
		ks[i] = keyed{r, model.ItemKey(r.Description)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if c := cmp(ks[i].row, ks[j].row); c != 0 {
			return c < 0
		}
		return ks[i].key < ks[j].key
	})
	for i := range ks {
		rows[i] = ks[i].row
	}
}

func byMonth(records []model.Record) []Row {
	type key struct {
		year  int
		month time.Month
	}
	index := make(map[key]int)
	var rows []Row
	for _, r := range records {
		k := key{r.Date.Year, r.Date.Month}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, Row{
				Year:          k.year,
				Month:         k.month,
				TotalCost:     decimal.Zero,
				TotalQuantity: decimal.Zero,
			})
		}
		add(&rows[i], r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return period.Before(rows[i].Year, rows[i].Month, rows[j].Year, rows[j].Month)
	})
	return rows
}

func newRow(r model.Record, withSource bool) Row {
	row := Row{
		Date:          r.Date,
		Year:          r.Date.Year,
		Month:         r.Date.Month,
		Description:   r.Description,
		TotalCost:     decimal.Zero,
		TotalQuantity: decimal.Zero,
	}
	if withSource {
		row.Source = r.Source
	}
	return row
}

func add(row *Row, r model.Record) {
	row.TotalCost = row.TotalCost.Add(r.Cost)
	if r.HasQuantity {
		row.TotalQuantity = row.TotalQuantity.Add(r.Quantity)
		row.HasQuantity = true
	}
}

// summarize computes totals and the first maximal row in sorted order.
func summarize(rows []Row) Summary {
	s := Summary{
		Total:         decimal.Zero,
		TotalQuantity: decimal.Zero,
		DataPoints:    len(rows),
	}
	for i := range rows {
		row := &rows[i]
		s.Total = s.Total.Add(row.TotalCost)
		if row.HasQuantity {
			s.TotalQuantity = s.TotalQuantity.Add(row.TotalQuantity)
			s.HasQuantity = true
		}
		if s.Top == nil || row.TotalCost.GreaterThan(s.Top.TotalCost) {
			top := *row
			s.Top = &top
		}
	}
	return s
}

func yearTotals(rows []Row) ([]YearTotal, *YearTotal) {
	var years []YearTotal
	for _, r := range rows {
		if n := len(years); n > 0 && years[n-1].Year == r.Year {
			years[n-1].Total = years[n-1].Total.Add(r.TotalCost)
			continue
		}
		years = append(years, YearTotal{Year: r.Year, Total: r.TotalCost})
	}

	var top *YearTotal
	for i := range years {
		if top == nil || years[i].Total.GreaterThan(top.Total) {
			y := years[i]
			top = &y
		}
	}
	return years, top
}

func sourceTotals(rows []Row, order map[string]int) []SourceTotal {
	totals := make([]SourceTotal, len(order))
	for src, i := range order {
		totals[i] = SourceTotal{Source: src, Total: decimal.Zero, TopTotal: decimal.Zero}
	}

	type item struct {
		label string
		total decimal.Decimal
	}
	items := make([][]item, len(order))
	itemIndex := make([]map[string]int, len(order))
	for i := range itemIndex {
		itemIndex[i] = make(map[string]int)
	}

	for _, r := range rows {
		si := order[r.Source]
		totals[si].Total = totals[si].Total.Add(r.TotalCost)

		k := model.ItemKey(r.Description)
		ii, ok := itemIndex[si][k]
		if !ok {
			ii = len(items[si])
			itemIndex[si][k] = ii
			items[si] = append(items[si], item{label: r.Description, total: decimal.Zero})
		}
		items[si][ii].total = items[si][ii].total.Add(r.TotalCost)
	}

	for si := range totals {
		for _, it := range items[si] {
			if totals[si].TopDescription == "" || it.total.GreaterThan(totals[si].TopTotal) {
				totals[si].TopDescription = it.label
				totals[si].TopTotal = it.total
			}
		}
	}
	return totals
}
