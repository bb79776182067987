package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

// XLSXParser reads Office Open XML workbooks. Every sheet becomes a table.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse reads all sheets in workbook order. Cells are read unformatted so
// date cells arrive as Excel serial numbers.
func (p *XLSXParser) Parse(r io.Reader) ([]model.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var tables []model.RawTable
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		tables = append(tables, newTable(sheet, rows))
	}
	return tables, nil
}
