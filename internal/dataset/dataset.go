package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/VISHALVISHAL29/Dashboard/internal/importer"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/normalize"
	"github.com/VISHALVISHAL29/Dashboard/internal/schema"
)

// ErrNoValidSections is matched by the error returned when no table in an
// upload resolves its required columns.
var ErrNoValidSections = errors.New("no valid sections")

// NoValidSectionsError carries the user guidance and the per-table outcomes.
type NoValidSectionsError struct {
	Guidance string
	Outcomes []Outcome
}

func (e *NoValidSectionsError) Error() string { return e.Guidance }

// Unwrap lets errors.Is match ErrNoValidSections.
func (e *NoValidSectionsError) Unwrap() error { return ErrNoValidSections }

// Source is one uploaded file. When Label is set every sheet of the file is
// tagged with it; otherwise records carry their sheet name.
type Source struct {
	Name  string
	Label string
	Data  []byte
}

// Status is the verdict on a single table.
type Status int

const (
	Accepted Status = iota
	Rejected
)

func (s Status) String() string {
	if s == Accepted {
		return "accepted"
	}
	return "rejected"
}

// Outcome reports what happened to one sheet of one file.
type Outcome struct {
	File    string
	Sheet   string
	Status  Status
	Missing []model.Role
	Records int
	Dropped int
}

// Loader turns uploaded files into a Dataset.
type Loader struct {
	registry   *importer.Registry
	resolver   *schema.Resolver
	normalizer *normalize.Normalizer
	log        zerolog.Logger
}

// NewLoader creates a Loader.
func NewLoader(reg *importer.Registry, res *schema.Resolver, norm *normalize.Normalizer, log zerolog.Logger) *Loader {
	return &Loader{registry: reg, resolver: res, normalizer: norm, log: log}
}

// Load parses every source and concatenates the records of accepted tables
// in file order, then sheet order. Duplicates are kept. A file that cannot be
// parsed fails the whole load.
func (l *Loader) Load(sources []Source) (*model.Dataset, []Outcome, error) {
	ds := &model.Dataset{}
	seen := make(map[string]bool)
	var outcomes []Outcome
	accepted := 0

	for _, src := range sources {
		parser, err := l.registry.ForFile(src.Name)
		if err != nil {
			return nil, outcomes, err
		}
		tables, err := parser.Parse(bytes.NewReader(src.Data))
		if err != nil {
			return nil, outcomes, fmt.Errorf("parsing %s: %w", src.Name, err)
		}

		for _, tbl := range tables {
			if tbl.Name == "" {
				tbl.Name = baseName(src.Name)
			}
			source := src.Label
			if source == "" {
				source = tbl.Name
			}

			o := Outcome{File: src.Name, Sheet: tbl.Name}
			roles, missing := l.resolver.Resolve(tbl.Columns)
			if len(missing) > 0 {
				o.Status = Rejected
				o.Missing = missing
				l.log.Info().
					Str("file", src.Name).
					Str("sheet", tbl.Name).
					Interface("missing", missing).
					Msg("skipping sheet")
				outcomes = append(outcomes, o)
				continue
			}

			res := l.normalizer.Normalize(tbl, roles, source)
			o.Status = Accepted
			o.Records = len(res.Records)
			o.Dropped = res.Dropped
			outcomes = append(outcomes, o)
			accepted++

			l.log.Debug().
				Str("file", src.Name).
				Str("sheet", tbl.Name).
				Int("records", o.Records).
				Int("dropped", o.Dropped).
				Msg("loaded sheet")

			ds.Records = append(ds.Records, res.Records...)
			if len(res.Records) > 0 && !seen[source] {
				seen[source] = true
				ds.Sources = append(ds.Sources, source)
			}
		}
	}

	if accepted == 0 {
		return nil, outcomes, &NoValidSectionsError{
			Guidance: l.resolver.Guidance(),
			Outcomes: outcomes,
		}
	}
	return ds, outcomes, nil
}

// Labelled flattens groups of sources, tagging every source of the i-th
// group "File i" (counting from 1). A group is usually one command line
// argument, so all files of a directory share a label.
func Labelled(groups ...[]Source) []Source {
	var out []Source
	for i, group := range groups {
		for _, s := range group {
			s.Label = fmt.Sprintf("File %d", i+1)
			out = append(out, s)
		}
	}
	return out
}

func baseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
