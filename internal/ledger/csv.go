package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/VISHALVISHAL29/Dashboard/internal/aggregate"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/period"
)

// Header is the CSV header for exported records. Its column names resolve
// through the default schema, so exports can be uploaded again.
const Header = "date,description,amount,quantity,source"

const (
	numFields   = 5
	colDate     = 0
	colDesc     = 1
	colAmount   = 2
	colQuantity = 3
	colSource   = 4
)

// RowsHeader is the CSV header for exported aggregate rows.
const RowsHeader = "period,date,description,source,total_cost,total_quantity"

// ReadRecords reads records written by WriteRecords.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var records []model.Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes records (including header).
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date.String()
	row[colDesc] = rec.Description
	row[colAmount] = rec.Cost.String()
	if rec.HasQuantity {
		row[colQuantity] = rec.Quantity.String()
	}
	row[colSource] = rec.Source
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := civil.ParseDate(row[colDate])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	cost, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	rec := model.Record{
		Date:        date,
		Cost:        cost,
		Description: row[colDesc],
		Source:      row[colSource],
	}
	if row[colQuantity] != "" {
		rec.Quantity, err = decimal.NewFromString(row[colQuantity])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing quantity %q: %w", row[colQuantity], err)
		}
		rec.HasQuantity = true
	}
	return rec, nil
}

// WriteRows writes aggregate rows (including header). The period column is
// the month key; date is empty for month and year groupings.
func WriteRows(w io.Writer, res aggregate.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(RowsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	daily := res.Compare || res.Grouping == model.GroupNone
	for i, r := range res.Rows {
		row := []string{period.FormatMonth(r.Year, r.Month), "", r.Description, r.Source, r.TotalCost.StringFixed(2), ""}
		if daily {
			row[1] = r.Date.String()
		}
		if r.HasQuantity {
			row[5] = r.TotalQuantity.String()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
