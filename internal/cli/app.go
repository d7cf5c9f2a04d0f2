package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lostfound-tw/lostfound/internal/config"
	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/filter"
	"github.com/lostfound-tw/lostfound/internal/item"
	"github.com/lostfound-tw/lostfound/internal/logger"
	"github.com/lostfound-tw/lostfound/internal/metrics"
	"github.com/lostfound-tw/lostfound/internal/sheet"
	"github.com/lostfound-tw/lostfound/internal/storage"
	"github.com/lostfound-tw/lostfound/internal/store"
)

// app holds the components every command works with.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	client     store.TableFetcher
	mapper     *item.Mapper
	categories *facet.Categories
	engine     *filter.Engine
	storage    *storage.Storage
	store      *store.Store
	metrics    *metrics.Metrics
}

func loadApp(ctx context.Context, opts *rootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(ctx, opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		cfg.LogLevel = string(logger.LevelDebug)
	}
	return newApp(cfg, logOut)
}

func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logger.New(level, logOut)
	logger.SetDefault(log)

	st, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	categories := cfg.Categories()
	m := metrics.New(prometheus.NewRegistry())

	records := store.New()
	records.SetObserver(m)

	return &app{
		cfg: cfg,
		log: log,
		client: sheet.New(
			sheet.WithTimeout(cfg.Timeout),
			sheet.WithUserAgent(cfg.UserAgent),
		),
		mapper:     item.NewMapper(cfg.Columns, cfg.Location()),
		categories: categories,
		engine:     filter.NewEngine(categories),
		storage:    st,
		store:      records,
		metrics:    m,
	}, nil
}

func (a *app) loader() store.Loader {
	return store.SheetLoader(a.client, a.cfg.SheetID, a.cfg.SheetName, a.mapper)
}

// fetch refreshes the store from the sheet and saves the result as the
// offline snapshot.
func (a *app) fetch(ctx context.Context) error {
	a.log.Debug("Fetching sheet", logger.Fields{
		"sheet_id":   a.cfg.SheetID,
		"sheet_name": a.cfg.SheetName,
	})

	if err := a.store.Refresh(ctx, a.loader()); err != nil {
		a.log.Error("Fetching sheet failed", logger.Fields{"sheet_name": a.cfg.SheetName}, err)
		return err
	}

	snap := *a.store.Snapshot()
	a.log.Debug("Fetched records", logger.Fields{"records": len(snap.Records)})

	if err := a.storage.SaveSnapshot(&snap, a.cfg.SheetID, a.cfg.SheetName); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// restore loads the saved snapshot into the store.
func (a *app) restore() error {
	snap, err := a.previous()
	if err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("no saved snapshot in %s; run once without --offline", a.storage.Dir())
	}
	a.store.Replace(snap)
	a.log.Debug("Loaded saved snapshot", logger.Fields{
		"records":    len(snap.Records),
		"fetched_at": snap.FetchedAt,
	})
	return nil
}

func (a *app) previous() (*item.Snapshot, error) {
	snap, err := a.storage.LoadSnapshot(a.cfg.SheetID, a.cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return snap, nil
}

// evaluate filters records and counts the evaluation.
func (a *app) evaluate(records []item.Record, c filter.Criteria) []item.Record {
	matched := a.engine.Evaluate(records, c)
	a.metrics.ObserveEvaluation(len(matched))
	return matched
}
