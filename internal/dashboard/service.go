package dashboard

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/VISHALVISHAL29/Dashboard/internal/aggregate"
	"github.com/VISHALVISHAL29/Dashboard/internal/chart"
	"github.com/VISHALVISHAL29/Dashboard/internal/filter"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/report"
)

// User-facing outcome messages.
const (
	MsgNoDataset = "Please upload files first."
	MsgNoData    = "No data found for this selection."
)

// Outcome is one of Ok, Empty or Failed.
type Outcome interface {
	outcome()
}

// Ok carries the rendered summary and chart. When the summary could not be
// produced Report holds a note and ReportErr the cause; the chart is still
// usable.
type Ok struct {
	Result    aggregate.Result
	Chart     chart.Chart
	Report    string
	ReportErr error
}

// Empty means the selection matched no records.
type Empty struct {
	Reason string
}

// Failed means no chart could be produced.
type Failed struct {
	Reason string
	Err    error
}

func (Ok) outcome()     {}
func (Empty) outcome()  {}
func (Failed) outcome() {}

// Service runs queries against a dataset. It holds no dataset itself.
type Service struct {
	formatter *report.Formatter
	log       zerolog.Logger
}

// NewService creates a Service.
func NewService(f *report.Formatter, log zerolog.Logger) *Service {
	return &Service{formatter: f, log: log}
}

// Summarize filters ds by q and aggregates with q.Grouping.
func (s *Service) Summarize(ds *model.Dataset, q model.Query) Outcome {
	return s.run(ds, q, func(records []model.Record) aggregate.Result {
		return aggregate.Aggregate(records, q.Grouping)
	})
}

// Compare filters ds by q and aggregates per source. q.Grouping is ignored.
func (s *Service) Compare(ds *model.Dataset, q model.Query) Outcome {
	return s.run(ds, q, aggregate.Compare)
}

func (s *Service) run(ds *model.Dataset, q model.Query, agg func([]model.Record) aggregate.Result) Outcome {
	if ds == nil {
		return Failed{Reason: MsgNoDataset}
	}

	records := filter.Apply(ds.Records, q)
	s.log.Debug().
		Strs("items", q.Descriptions).
		Str("start", q.Start.String()).
		Str("end", q.End.String()).
		Int("matched", len(records)).
		Msg("filtered dataset")
	if len(records) == 0 {
		return Empty{Reason: MsgNoData}
	}

	var res aggregate.Result
	var c chart.Chart
	if err := safely(func() {
		res = agg(records)
		c = chart.Build(res)
	}); err != nil {
		s.log.Error().Err(err).Msg("aggregation failed")
		return Failed{Reason: "Could not aggregate the selection: " + err.Error(), Err: err}
	}

	ok := Ok{Result: res, Chart: c}
	var text string
	var ferr error
	if err := safely(func() { text, ferr = s.formatter.Format(q, res) }); err != nil {
		ferr = err
	}
	if ferr != nil {
		s.log.Warn().Err(ferr).Msg("summary could not be computed")
		ok.Report = "Summary could not be computed: " + ferr.Error()
		ok.ReportErr = ferr
		return ok
	}
	ok.Report = text
	return ok
}

// safely runs fn and converts a panic into an error.
func safely(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
