package model

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Record is one normalized expenditure row.
type Record struct {
	Date        civil.Date
	Cost        decimal.Decimal
	Quantity    decimal.Decimal // zero unless HasQuantity
	HasQuantity bool
	Description string
	Source      string // sheet name or upload label
}

// Key returns the case-folded item key of the record's description.
func (r Record) Key() string {
	return ItemKey(r.Description)
}

// Dataset is the ordered union of records from every accepted table of an upload.
type Dataset struct {
	Records []Record
	Sources []string
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// ItemKey folds an item description for case-insensitive comparison.
// A new Caser is used per call since Casers are not safe for concurrent use.
func ItemKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
