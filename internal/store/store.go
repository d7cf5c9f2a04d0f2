// Package store holds the process-wide record collection.
//
// The collection is only ever replaced as a whole, after a fetch has
// completed and been mapped successfully; readers always see either the
// previous snapshot or the new one. The store also tracks the load status so
// a presentation layer can show loading and failure states.
package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lostfound-tw/lostfound/internal/item"
	"github.com/lostfound-tw/lostfound/internal/sheet"
)

// Status is the load state of a Store.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Loader produces a complete record collection.
type Loader func(ctx context.Context) ([]item.Record, error)

// Observer is notified about every load attempt.
type Observer interface {
	ObserveFetch(d time.Duration, err error)
	SetRecords(n int)
}

// Store owns the current record snapshot.
type Store struct {
	snap atomic.Pointer[item.Snapshot]

	mu       sync.Mutex
	status   Status
	err      error
	observer Observer

	refresh sync.Mutex
}

// New creates an empty, idle Store.
func New() *Store {
	s := &Store{}
	s.snap.Store(item.NewSnapshot(nil, time.Time{}))
	return s
}

// SetObserver registers o to be told about load attempts.
func (s *Store) SetObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = o
}

// Snapshot returns the current snapshot. It is never nil and must be treated
// as read-only.
func (s *Store) Snapshot() *item.Snapshot {
	return s.snap.Load()
}

// Records returns the current records. The slice must not be modified.
func (s *Store) Records() []item.Record {
	return s.snap.Load().Records
}

// State returns the load status and, when failed, the error that caused it.
func (s *Store) State() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// Replace swaps in a new snapshot and marks the store ready.
func (s *Store) Replace(snap *item.Snapshot) {
	if snap == nil {
		snap = item.NewSnapshot(nil, time.Now().UTC())
	}
	s.snap.Store(snap)

	s.mu.Lock()
	s.status = StatusReady
	s.err = nil
	obs := s.observer
	s.mu.Unlock()

	if obs != nil {
		obs.SetRecords(len(snap.Records))
	}
}

// Refresh runs load and replaces the collection with its result. On failure
// the previous records are kept but the store reports StatusFailed.
// Concurrent refreshes are serialized.
func (s *Store) Refresh(ctx context.Context, load Loader) error {
	s.refresh.Lock()
	defer s.refresh.Unlock()

	s.setStatus(StatusLoading, nil)

	start := time.Now()
	records, err := load(ctx)

	s.mu.Lock()
	obs := s.observer
	s.mu.Unlock()
	if obs != nil {
		obs.ObserveFetch(time.Since(start), err)
	}

	if err != nil {
		s.setStatus(StatusFailed, err)
		return err
	}

	s.Replace(item.NewSnapshot(records, time.Now().UTC()))
	return nil
}

func (s *Store) setStatus(status Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.err = err
}

// TableFetcher fetches one spreadsheet tab as a table.
type TableFetcher interface {
	FetchTable(ctx context.Context, sheetID, sheetName string) (*sheet.Table, error)
}

// SheetLoader returns a Loader that fetches sheetID/sheetName and maps the
// table with mapper.
func SheetLoader(fetcher TableFetcher, sheetID, sheetName string, mapper *item.Mapper) Loader {
	return func(ctx context.Context) ([]item.Record, error) {
		table, err := fetcher.FetchTable(ctx, sheetID, sheetName)
		if err != nil {
			return nil, fmt.Errorf("loading sheet %q: %w", sheetName, err)
		}
		return mapper.Map(table), nil
	}
}
