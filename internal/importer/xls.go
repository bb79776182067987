package importer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/extrame/xls"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

const xlsCharset = "utf-8"

// XLSParser reads legacy BIFF (.xls) workbooks.
type XLSParser struct{}

// Format returns the parser name.
func (p *XLSParser) Format() string { return "xls" }

// Parse reads all sheets in workbook order.
func (p *XLSParser) Parse(r io.Reader) ([]model.RawTable, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading workbook: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	wb, err := xls.OpenReader(rs, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	var tables []model.RawTable
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		rows := make([][]string, 0, int(ws.MaxRow)+1)
		for j := 0; j <= int(ws.MaxRow); j++ {
			row := ws.Row(j)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := range cells {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		tables = append(tables, newTable(ws.Name, rows))
	}
	return tables, nil
}
