package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

const utf8BOM = "\ufeff"

// CSVParser reads a comma-separated file as a single unnamed table.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads the whole file. Ragged rows are allowed.
func (p *CSVParser) Parse(r io.Reader) ([]model.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}
	return []model.RawTable{newTable("", records)}, nil
}
