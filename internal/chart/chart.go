package chart

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/VISHALVISHAL29/Dashboard/internal/aggregate"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/period"
)

// Kind tells a renderer how to draw the chart.
type Kind string

const (
	KindDaily      Kind = "daily"
	KindMonthly    Kind = "monthly"
	KindComparison Kind = "comparison"
)

// Point is one x position with its cost and quantity values.
type Point struct {
	X        string          `json:"x"`
	Cost     decimal.Decimal `json:"cost"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Series is a named line. Style distinguishes lines that share a Name,
// such as items within one source in comparison charts.
type Series struct {
	Name   string  `json:"name"`
	Style  string  `json:"style,omitempty"`
	Points []Point `json:"points"`
}

// Chart is rendering-ready time series data. Cost is plotted on the primary
// axis and quantity on the secondary axis when HasQuantity is set.
type Chart struct {
	Kind        Kind     `json:"kind"`
	XLabel      string   `json:"x_label"`
	YLabel      string   `json:"y_label"`
	Y2Label     string   `json:"y2_label,omitempty"`
	HasQuantity bool     `json:"has_quantity"`
	Categories  []string `json:"categories"`
	Series      []Series `json:"series"`
}

// Empty reports whether the chart has nothing to draw.
func (c Chart) Empty() bool {
	return len(c.Series) == 0
}

// Build converts an aggregation result into chart series.
func Build(r aggregate.Result) Chart {
	var c Chart
	switch {
	case r.Compare:
		c = comparison(r.Rows)
	case r.Grouping == model.GroupMonth || r.Grouping == model.GroupYear:
		c = monthly(r.Rows)
	default:
		c = daily(r.Rows)
	}
	c.YLabel = "Total Value"
	if r.Summary.HasQuantity {
		c.HasQuantity = true
		c.Y2Label = "Total Quantity"
	}
	return c
}

func daily(rows []aggregate.Row) Chart {
	c := Chart{Kind: KindDaily, XLabel: "Date"}
	index := make(map[string]int)
	seenX := make(map[string]bool)
	for _, row := range rows {
		x := row.Date.String()
		if !seenX[x] {
			seenX[x] = true
			c.Categories = append(c.Categories, x)
		}
		key := model.ItemKey(row.Description)
		i, ok := index[key]
		if !ok {
			i = len(c.Series)
			index[key] = i
			c.Series = append(c.Series, Series{Name: row.Description})
		}
		c.Series[i].Points = append(c.Series[i].Points, point(x, row))
	}
	return c
}

// monthly draws one series per year over month-of-year categories.
func monthly(rows []aggregate.Row) Chart {
	c := Chart{Kind: KindMonthly, XLabel: "Month"}
	index := make(map[int]int)
	seenX := make(map[string]bool)
	for _, row := range rows {
		x := period.MonthLabel(row.Month)
		if !seenX[x] {
			seenX[x] = true
			c.Categories = append(c.Categories, x)
		}
		i, ok := index[row.Year]
		if !ok {
			i = len(c.Series)
			index[row.Year] = i
			c.Series = append(c.Series, Series{Name: strconv.Itoa(row.Year)})
		}
		c.Series[i].Points = append(c.Series[i].Points, point(x, row))
	}
	period.SortMonthLabels(c.Categories)
	return c
}

func comparison(rows []aggregate.Row) Chart {
	c := Chart{Kind: KindComparison, XLabel: "Date"}
	type key struct{ source, item string }
	index := make(map[key]int)
	seenX := make(map[string]bool)
	for _, row := range rows {
		x := row.Date.String()
		if !seenX[x] {
			seenX[x] = true
			c.Categories = append(c.Categories, x)
		}
		k := key{row.Source, model.ItemKey(row.Description)}
		i, ok := index[k]
		if !ok {
			i = len(c.Series)
			index[k] = i
			c.Series = append(c.Series, Series{Name: row.Source, Style: row.Description})
		}
		c.Series[i].Points = append(c.Series[i].Points, point(x, row))
	}
	return c
}

func point(x string, row aggregate.Row) Point {
	return Point{X: x, Cost: row.TotalCost, Quantity: row.TotalQuantity}
}
