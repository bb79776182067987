package ledger

import (
	"bytes"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VISHALVISHAL29/Dashboard/internal/aggregate"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/schema"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{
			Date:        civil.Date{Year: 2024, Month: 1, Day: 5},
			Cost:        decimal.RequireFromString("1500.25"),
			Quantity:    decimal.NewFromInt(2),
			HasQuantity: true,
			Description: "Acetone, AR grade",
			Source:      "2024",
		},
		{
			Date:        civil.Date{Year: 2024, Month: 2, Day: 1},
			Cost:        decimal.NewFromInt(80),
			Description: "Ethanol",
			Source:      "2024",
		},
	}
}

func TestWriteReadRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, `2024-01-05,"Acetone, AR grade",1500.25,2,2024`, lines[1])
	assert.Equal(t, "2024-02-01,Ethanol,80,,2024", lines[2])

	got, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Acetone, AR grade", got[0].Description)
	assert.True(t, got[0].Cost.Equal(decimal.RequireFromString("1500.25")))
	assert.True(t, got[0].HasQuantity)
	assert.False(t, got[1].HasQuantity)
	assert.Equal(t, civil.Date{Year: 2024, Month: 2, Day: 1}, got[1].Date)
}

func TestHeaderResolves(t *testing.T) {
	_, missing := schema.Default().Resolve(strings.Split(Header, ","))
	assert.Empty(t, missing)
}

func TestUnmarshalRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want string
	}{
		{"short row", []string{"2024-01-01", "x"}, "expected 5 fields"},
		{"bad date", []string{"01/01/2024", "x", "1", "", "s"}, "parsing date"},
		{"bad amount", []string{"2024-01-01", "x", "one", "", "s"}, "parsing amount"},
		{"bad quantity", []string{"2024-01-01", "x", "1", "two", "s"}, "parsing quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalRecord(tt.row)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadRecords_Empty(t *testing.T) {
	got, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWriteRows(t *testing.T) {
	recs := sampleRecords()

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, aggregate.Aggregate(recs, model.GroupMonth)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, RowsHeader, lines[0])
	assert.Equal(t, "2024-01,,,,1500.25,2", lines[1])
	assert.Equal(t, "2024-02,,,,80.00,", lines[2])

	buf.Reset()
	require.NoError(t, WriteRows(&buf, aggregate.Aggregate(recs, model.GroupNone)))
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, `2024-01,2024-01-05,"Acetone, AR grade",,1500.25,2`, lines[1])
}
