// Package testutil builds spreadsheet fixtures for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is a named grid of cell values. Row 0 is written to row 1.
type Sheet struct {
	Name string
	Rows [][]any
}

// Workbook returns the bytes of an xlsx file holding sheets in order.
func Workbook(t testing.TB, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.Name))
		} else {
			_, err := f.NewSheet(s.Name)
			require.NoError(t, err)
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.Name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// Ledger is a sheet with the usual posting-ledger header.
func Ledger(name string, rows ...[]any) Sheet {
	header := []any{"Posting Date", "SoE Description", "Item Descriptor", "Quantity", "Value"}
	return Sheet{Name: name, Rows: append([][]any{header}, rows...)}
}
