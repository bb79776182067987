package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/VISHALVISHAL29/Dashboard/internal/catalog"
	"github.com/VISHALVISHAL29/Dashboard/internal/dashboard"
	"github.com/VISHALVISHAL29/Dashboard/internal/dataset"
	"github.com/VISHALVISHAL29/Dashboard/internal/importer"
	"github.com/VISHALVISHAL29/Dashboard/internal/logger"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
	"github.com/VISHALVISHAL29/Dashboard/internal/normalize"
	"github.com/VISHALVISHAL29/Dashboard/internal/query"
	"github.com/VISHALVISHAL29/Dashboard/internal/report"
	"github.com/VISHALVISHAL29/Dashboard/internal/schema"
	"github.com/VISHALVISHAL29/Dashboard/internal/session"
)

// pipeline wires the loader, session store and query service for one
// command invocation.
type pipeline struct {
	registry *importer.Registry
	loader   *dataset.Loader
	store    *session.Store
	service  *dashboard.Service
	log      zerolog.Logger
}

// pipeline builds the command's pipeline using the logger stored on ctx
// by the root command.
func (o *rootOptions) pipeline(ctx context.Context) *pipeline {
	log := logger.FromContext(ctx)
	reg := importer.DefaultRegistry()
	return &pipeline{
		registry: reg,
		loader: dataset.NewLoader(
			reg,
			schema.NewResolver(o.cfg.Synonyms()),
			normalize.New(o.cfg.Dates.Layouts),
			log,
		),
		store:   session.NewStore(),
		service: dashboard.NewService(report.NewFormatter(o.cfg.Report.CurrencySymbol), log),
		log:     log,
	}
}

// readSources reads each path. Directories contribute every spreadsheet
// they contain, in name order.
func (p *pipeline) readSources(paths []string) ([]dataset.Source, error) {
	var sources []dataset.Source
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		files := []string{path}
		if info.IsDir() {
			found, err := importer.Scan(path, p.registry)
			if err != nil {
				return nil, err
			}
			files = files[:0]
			for _, f := range found {
				files = append(files, f.Path)
			}
			p.log.Debug().Str("dir", path).Int("files", len(files)).Msg("scanned directory")
		}

		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", f, err)
			}
			sources = append(sources, dataset.Source{Name: f, Data: data})
		}
	}
	return sources, nil
}

// upload loads sources into a fresh session and returns its ID.
func (p *pipeline) upload(sources []dataset.Source) (string, error) {
	ds, outcomes, err := p.loader.Load(sources)
	if err != nil {
		return "", err
	}
	sess := p.store.Create()
	if err := p.store.Upload(sess.ID, ds, outcomes); err != nil {
		p.store.Delete(sess.ID)
		return "", err
	}
	p.log.Info().
		Str("session", sess.ID).
		Int("records", ds.Len()).
		Strs("sources", ds.Sources).
		Msg("dataset loaded")
	return sess.ID, nil
}

// warnUnknownItems logs selected items that appear nowhere in the dataset.
func (p *pipeline) warnUnknownItems(ds *model.Dataset, q model.Query) {
	if ds == nil {
		return
	}
	for _, name := range catalog.New(ds.Records).Unknown(q.Descriptions) {
		p.log.Warn().Str("item", name).Msg("item not found in any sheet")
	}
}

// userError prints errors meant for the user and swallows them. Other errors
// are returned unchanged.
func userError(w io.Writer, err error) error {
	var verr query.ValidationError
	var nvs *dataset.NoValidSectionsError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(w, verr.Message)
		return nil
	case errors.As(err, &nvs):
		fmt.Fprintln(w, nvs.Guidance)
		return nil
	}
	return err
}
