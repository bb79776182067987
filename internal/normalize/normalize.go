package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

// DefaultLayouts are the date layouts tried, in order, before falling back
// to Excel serial numbers. Slash dates are month-first.
var DefaultLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"01/02/06",
	"1/2/06",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02.01.2006",
	"2006/01/02",
}

// Excel serials beyond 9999-12-31 are not dates.
const maxExcelSerial = 2958465

var errEmpty = errors.New("empty value")

// Result is the outcome of normalizing one table.
type Result struct {
	Records []model.Record
	Dropped int
}

// Normalizer converts raw rows into typed records.
type Normalizer struct {
	layouts []string
}

// New returns a Normalizer trying layouts in order. Empty means DefaultLayouts.
func New(layouts []string) *Normalizer {
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}
	return &Normalizer{layouts: layouts}
}

// Normalize converts every row of t using roles. Rows with an unparseable
// date, malformed cost or empty description are dropped and counted.
// A table missing a required role yields no records.
func (n *Normalizer) Normalize(t model.RawTable, roles model.ColumnRoleMap, source string) Result {
	if len(roles.Missing()) > 0 {
		return Result{Dropped: len(t.Rows)}
	}

	dateCol := roles[model.RoleDate]
	costCol := roles[model.RoleCost]
	descCol := roles[model.RoleDescription]
	qtyCol, hasQty := roles.Column(model.RoleQuantity)

	var res Result
	for i := range t.Rows {
		date, err := n.ParseDate(t.Cell(i, dateCol))
		if err != nil {
			res.Dropped++
			continue
		}
		cost, err := ParseAmount(t.Cell(i, costCol))
		if err != nil {
			res.Dropped++
			continue
		}
		desc := t.Cell(i, descCol)
		if desc == "" {
			res.Dropped++
			continue
		}

		rec := model.Record{
			Date:        date,
			Cost:        cost,
			Description: desc,
			Source:      source,
		}
		if hasQty {
			if qty, err := ParseAmount(t.Cell(i, qtyCol)); err == nil {
				rec.Quantity = qty
				rec.HasQuantity = true
			}
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// ParseDate parses s with the configured layouts, then as an Excel serial.
func (n *Normalizer) ParseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Date{}, errEmpty
	}
	for _, layout := range n.layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= 1 && serial <= maxExcelSerial {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, fmt.Errorf("parsing date %q: no layout matched", s)
}

// ParseAmount parses a plain decimal number. Currency symbols and thousands
// separators are not accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}
