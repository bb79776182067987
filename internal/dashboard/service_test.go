package dashboard

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VISHALVISHAL29/Dashboard/internal/aggregate"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/report"
)

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func rec(date, desc, source string, cost int64) model.Record {
	return model.Record{Date: day(date), Description: desc, Source: source, Cost: decimal.NewFromInt(cost)}
}

func newTestService() *Service {
	return NewService(report.NewFormatter(""), zerolog.Nop())
}

func yearQuery(items ...string) model.Query {
	return model.Query{Descriptions: items, Start: day("2024-01-01"), End: day("2024-12-31")}
}

func TestSummarize_Ok(t *testing.T) {
	ds := &model.Dataset{Records: []model.Record{
		rec("2024-01-05", "Acid", "S", 100),
		rec("2024-02-10", "Acid", "S", 50),
		rec("2024-02-10", "Base", "S", 70),
	}}

	out := newTestService().Summarize(ds, yearQuery("acid"))
	ok, isOk := out.(Ok)
	require.True(t, isOk, "got %T", out)

	require.Len(t, ok.Result.Rows, 2)
	assert.Equal(t, "150", ok.Result.Summary.Total.String())
	assert.Equal(t, 2, ok.Result.Summary.DataPoints)
	assert.Equal(t, day("2024-01-05"), ok.Result.Summary.Top.Date)
	assert.NoError(t, ok.ReportErr)
	assert.Contains(t, ok.Report, "2024-01-05")
	assert.False(t, ok.Chart.Empty())
}

func TestSummarize_Empty(t *testing.T) {
	ds := &model.Dataset{Records: []model.Record{rec("2023-01-05", "Acid", "S", 100)}}

	out := newTestService().Summarize(ds, yearQuery("Acid"))
	empty, ok := out.(Empty)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, MsgNoData, empty.Reason)
}

func TestSummarize_NoDataset(t *testing.T) {
	out := newTestService().Summarize(nil, yearQuery("Acid"))
	failed, ok := out.(Failed)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, MsgNoDataset, failed.Reason)
}

func TestSummarize_Year(t *testing.T) {
	ds := &model.Dataset{Records: []model.Record{
		rec("2024-01-05", "Acid", "S", 100),
		rec("2024-03-10", "Acid", "S", 50),
	}}
	q := yearQuery("Acid")
	q.Grouping = model.GroupYear

	ok, isOk := newTestService().Summarize(ds, q).(Ok)
	require.True(t, isOk)
	assert.Contains(t, ok.Report, "Year-wise")
	assert.Equal(t, []string{"Jan", "Mar"}, ok.Chart.Categories)
}

func TestCompare(t *testing.T) {
	ds := &model.Dataset{
		Records: []model.Record{
			rec("2024-01-01", "Base", "File 1", 10),
			rec("2024-01-02", "Base", "File 1", 20),
			rec("2024-01-01", "Base", "File 2", 30),
			rec("2024-01-02", "Base", "File 2", 40),
		},
		Sources: []string{"File 1", "File 2"},
	}

	ok, isOk := newTestService().Compare(ds, yearQuery("base")).(Ok)
	require.True(t, isOk)

	sources := ok.Result.Summary.Sources
	require.Len(t, sources, 2)
	assert.Equal(t, "30", sources[0].Total.String())
	assert.Equal(t, "70", sources[1].Total.String())

	seen := map[string]bool{}
	for _, row := range ok.Result.Rows {
		if row.Date == day("2024-01-01") {
			seen[row.Source] = true
		}
	}
	assert.True(t, seen["File 1"])
	assert.True(t, seen["File 2"])
	require.Len(t, ok.Chart.Series, 2)
}

func TestRun_AggregationPanicBecomesFailed(t *testing.T) {
	ds := &model.Dataset{Records: []model.Record{rec("2024-01-05", "Acid", "S", 100)}}

	out := newTestService().run(ds, yearQuery("Acid"), func([]model.Record) aggregate.Result {
		panic("boom")
	})
	failed, ok := out.(Failed)
	require.True(t, ok, "got %T", out)
	assert.Contains(t, failed.Reason, "boom")
	assert.Error(t, failed.Err)
}

func TestRun_ReportFailureKeepsChart(t *testing.T) {
	ds := &model.Dataset{Records: []model.Record{rec("2024-01-05", "Acid", "S", 100)}}

	out := newTestService().run(ds, yearQuery("Acid"), func(records []model.Record) aggregate.Result {
		res := aggregate.Aggregate(records, model.GroupNone)
		res.Summary.Top = nil
		return res
	})
	ok, isOk := out.(Ok)
	require.True(t, isOk, "got %T", out)
	assert.Error(t, ok.ReportErr)
	assert.Contains(t, ok.Report, "Summary could not be computed")
	assert.False(t, ok.Chart.Empty())
}
