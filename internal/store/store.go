package store

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/dineforge/restalytics/internal/models"
)

// ErrDataUnavailable marks a backing source that is missing or empty. The
// store degrades to an empty snapshot instead of failing, so downstream
// analyses uniformly see "no data" as zero records.
var ErrDataUnavailable = errors.New("data source unavailable")

// Source supplies the full record set for a snapshot.
type Source interface {
	Fetch(ctx context.Context) ([]models.OrderRecord, error)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(ctx context.Context) ([]models.OrderRecord, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]models.OrderRecord, error) {
	return f(ctx)
}

// Snapshot is one immutable, fully preprocessed record set together with
// the outlet reference data derived from it. Analyses read snapshots and
// never write to them.
type Snapshot struct {
	Records []models.OrderRecord
	Outlets []models.Outlet
}

// Store owns the current snapshot. Load is idempotent; Reload swaps the
// snapshot pointer atomically, so in-flight analyses see either the old or
// the new record set in full, never a mix.
type Store struct {
	source Source
	snap   atomic.Pointer[Snapshot]
	loaded atomic.Bool
}

func New(source Source) *Store {
	s := &Store{source: source}
	s.snap.Store(&Snapshot{})
	return s
}

// Load fetches and preprocesses the record set once. Subsequent calls
// return the snapshot already in memory. An unavailable source yields an
// empty snapshot, not an error.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	if s.loaded.Load() {
		return s.snap.Load(), nil
	}
	return s.Reload(ctx)
}

// Reload fetches a fresh record set and swaps it in atomically.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	records, err := s.source.Fetch(ctx)
	if err != nil {
		if errors.Is(err, ErrDataUnavailable) {
			log.Printf("record source unavailable, continuing with empty data set: %v", err)
			empty := newSnapshot(nil)
			s.snap.Store(empty)
			s.loaded.Store(true)
			return empty, nil
		}
		return nil, err
	}
	snap := newSnapshot(records)
	s.snap.Store(snap)
	s.loaded.Store(true)
	return snap, nil
}

// Snapshot returns the current snapshot without touching the source.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

func newSnapshot(records []models.OrderRecord) *Snapshot {
	for i := range records {
		records[i].DeriveTime()
	}
	return &Snapshot{
		Records: records,
		Outlets: deriveOutlets(records),
	}
}

// deriveOutlets takes the first occurrence per (outlet id, outlet name)
// group, in record order.
func deriveOutlets(records []models.OrderRecord) []models.Outlet {
	type key struct{ id, name string }
	seen := make(map[key]bool)
	var outlets []models.Outlet
	for i := range records {
		r := &records[i]
		k := key{r.OutletID, r.OutletName}
		if seen[k] {
			continue
		}
		seen[k] = true
		outlets = append(outlets, models.Outlet{
			ID:       r.OutletID,
			Name:     r.OutletName,
			Borough:  r.Borough,
			Capacity: r.Capacity,
		})
	}
	return outlets
}

// Summary describes the loaded data set: record count, covered date range,
// outlet and customer counts.
func (s *Store) Summary() models.Result {
	snap := s.Snapshot()

	var minDate, maxDate string
	customers := make(map[string]bool)
	for i := range snap.Records {
		r := &snap.Records[i]
		customers[r.CustomerID] = true
		if !r.TimeValid {
			continue
		}
		if minDate == "" || r.Date < minDate {
			minDate = r.Date
		}
		if r.Date > maxDate {
			maxDate = r.Date
		}
	}

	return models.Result{
		"totalRecords":   len(snap.Records),
		"dateRange":      models.Result{"start": minDate, "end": maxDate},
		"outletsCount":   len(snap.Outlets),
		"customersCount": len(customers),
	}
}
