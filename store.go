package cali

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tidwall/btree"
)

const castPanic = "how could an entries item not be of type *DailyEntry"

type EntryIterator func(ent DailyEntry) bool

// Store owns every DailyEntry, keyed and ordered by date.
// It is loaded once, mutated in memory and written back by Save.
type Store struct {
	path        string
	entries     *btree.BTree
	persistence *persistence
	logger      *zerolog.Logger
}

// Load reads the store persisted at path. A missing or empty file yields an
// empty store; a file that is not a valid document fails with ErrCorruptData.
func Load(path string, cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = defaultConfig()
	} else {
		cfg.applyDefaults()
	}

	s := &Store{
		path:    path,
		entries: btree.NewNonConcurrent(byDate),
		logger:  cfg.Logger,
	}

	if path == InMemory {
		return s, nil
	}

	s.persistence = newPersistence(path, cfg)

	loaded, err := s.persistence.read()
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}

	for _, ent := range loaded {
		s.entries.Set(ent)
	}

	s.logger.Debug().
		Str("path", path).
		Int("entries", s.entries.Len()).
		Msg("store loaded")

	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Len() int {
	return s.entries.Len()
}

func (s *Store) find(date Date) *DailyEntry {
	found := s.entries.Get(&DailyEntry{Date: date})
	if found == nil {
		return nil
	}

	ent, ok := found.(*DailyEntry)
	if !ok {
		panic(castPanic)
	}

	return ent
}

// GetOrCreate returns the stored entry for date, inserting a zeroed one
// when there is none. The returned pointer is owned by the store.
func (s *Store) GetOrCreate(date Date) *DailyEntry {
	if ent := s.find(date); ent != nil {
		return ent
	}

	ent := NewDailyEntry(date)
	s.entries.Set(ent)
	return ent
}

// Lookup returns a copy of the entry for date.
func (s *Store) Lookup(date Date) (DailyEntry, bool) {
	ent := s.find(date)
	if ent == nil {
		return DailyEntry{Date: date}, false
	}

	return ent.clone(), true
}

// AddMetric adds amount to the metric accumulator of the entry for date and
// returns the updated entry. Invalid amounts leave the store untouched.
func (s *Store) AddMetric(date Date, m Metric, amount float64) (DailyEntry, error) {
	if _, ok := metricNames[m]; !ok {
		return DailyEntry{}, errors.Wrapf(ErrUnknownMetric, "metric #%d", m)
	}

	if err := validateAmount(amount); err != nil {
		return DailyEntry{}, errors.Wrapf(err, "could not log %s for %s", m, date)
	}

	ent := s.GetOrCreate(date)
	ent.add(m, amount)

	s.logger.Debug().
		Str("date", date.String()).
		Str("metric", m.String()).
		Float64("amount", amount).
		Float64("total", ent.Value(m)).
		Msg("metric logged")

	return ent.clone(), nil
}

// Reset zeroes the entry for date, creating it if needed.
// It reports whether an entry existed before the call.
func (s *Store) Reset(date Date) bool {
	existed := s.find(date) != nil
	s.GetOrCreate(date).reset()

	s.logger.Debug().
		Str("date", date.String()).
		Bool("existed", existed).
		Msg("entry reset")

	return existed
}

// Save writes the whole store to its path atomically.
// Saving an in-memory store is a no-op.
func (s *Store) Save() error {
	if s.persistence == nil {
		return nil
	}

	all := make([]*DailyEntry, 0, s.entries.Len())
	s.entries.Ascend(nil, func(i interface{}) bool {
		all = append(all, i.(*DailyEntry))
		return true
	})

	written, err := s.persistence.write(all)
	if err != nil {
		return errors.Wrapf(err, "could not save %s", s.path)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("entries", len(all)).
		Bool("written", written).
		Msg("store saved")

	return nil
}

// Ascend calls ir for every entry on or after pivot in date order until ir
// returns false. An empty pivot starts from the earliest entry.
func (s *Store) Ascend(pivot Date, ir EntryIterator) {
	var p interface{}
	if pivot != "" {
		p = &DailyEntry{Date: pivot}
	}

	s.entries.Ascend(p, func(i interface{}) bool {
		return ir(i.(*DailyEntry).clone())
	})
}

// Descend calls ir for every entry on or before pivot in reverse date order
// until ir returns false. An empty pivot starts from the latest entry.
func (s *Store) Descend(pivot Date, ir EntryIterator) {
	var p interface{}
	if pivot != "" {
		p = &DailyEntry{Date: pivot}
	}

	s.entries.Descend(p, func(i interface{}) bool {
		return ir(i.(*DailyEntry).clone())
	})
}
