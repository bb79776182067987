package filter

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

func rec(date, desc string, cost int64) model.Record {
	d, err := civil.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Record{Date: d, Description: desc, Cost: decimal.NewFromInt(cost)}
}

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sample() []model.Record {
	return []model.Record{
		rec("2023-12-31", "Acetone", 1),
		rec("2024-01-01", "Acetone", 2),
		rec("2024-01-15", "ACETONE ", 3),
		rec("2024-01-15", "Ethanol", 4),
		rec("2024-01-31", "acetone", 5),
		rec("2024-02-01", "Acetone", 6),
	}
}

func TestApply(t *testing.T) {
	q := model.Query{
		Descriptions: []string{"Acetone"},
		Start:        day("2024-01-01"),
		End:          day("2024-01-31"),
	}

	got := Apply(sample(), q)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].Cost.IntPart())
	assert.Equal(t, int64(3), got[1].Cost.IntPart())
	assert.Equal(t, int64(5), got[2].Cost.IntPart())
}

func TestApply_MultipleItems(t *testing.T) {
	q := model.Query{
		Descriptions: []string{" ethanol", "ACETONE"},
		Start:        day("2024-01-15"),
		End:          day("2024-01-15"),
	}
	got := Apply(sample(), q)
	assert.Len(t, got, 2)
}

func TestApply_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		q    model.Query
	}{
		{"unknown item", model.Query{Descriptions: []string{"Toluene"}, Start: day("2000-01-01"), End: day("2099-01-01")}},
		{"no items", model.Query{Start: day("2000-01-01"), End: day("2099-01-01")}},
		{"range outside data", model.Query{Descriptions: []string{"Acetone"}, Start: day("2030-01-01"), End: day("2030-12-31")}},
		{"inverted range", model.Query{Descriptions: []string{"Acetone"}, Start: day("2024-02-01"), End: day("2024-01-01")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Apply(sample(), tt.q))
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	q := model.Query{
		Descriptions: []string{"acetone", "ethanol"},
		Start:        day("2024-01-01"),
		End:          day("2024-01-31"),
	}
	once := Apply(sample(), q)
	twice := Apply(once, q)
	assert.Equal(t, once, twice)
}
