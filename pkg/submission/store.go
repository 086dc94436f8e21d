// Package submission owns the pending ("current") item list and the day
// keyed submission history, and keeps ids and sequence numbers consistent
// across every mutation.
//
// A Store is not safe for concurrent use. Front ends drive it from a single
// goroutine (the cobra command, or the Bubble Tea update loop).
package submission

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/store"
	"tableflip.dev/subtrack/pkg/timeutil"
)

// DefaultRetentionMonths is how far back history is kept.
const DefaultRetentionMonths = 4

// Store is the submission tracker state. History is written through to the
// persistence after every change; the current list and the undo buffer are
// memory only.
type Store struct {
	persistence store.Persistence
	logger      *slog.Logger
	now         func() time.Time
	loc         *time.Location
	retention   int

	current []item.Item
	history item.History
	nextID  int

	// One level of undo for the last MarkAsSubmitted.
	undo   []item.Item
	undoAt time.Time

	lastSaveErr error
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the calendar used to cut days. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// WithRetentionMonths sets how many months of history CleanOldHistory keeps.
func WithRetentionMonths(months int) Option {
	return func(s *Store) {
		if months > 0 {
			s.retention = months
		}
	}
}

// WithLogger receives persistence failures, which are otherwise swallowed.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New loads history from p and prunes it. A nil p keeps everything in
// memory. Load failures leave the store with an empty history.
func New(p store.Persistence, opts ...Option) *Store {
	s := &Store{
		persistence: p,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
		loc:         time.Local,
		retention:   DefaultRetentionMonths,
		history:     item.History{},
		nextID:      1,
	}
	for _, opt := range opts {
		opt(s)
	}

	if h, err := s.read(); err == nil {
		s.history = h
	}
	s.nextID = s.maxID() + 1
	s.CleanOldHistory()
	return s
}

// Reload re-reads history from persistence, e.g. after another process
// wrote the file. It reports whether anything changed. A changed history
// invalidates the undo buffer.
func (s *Store) Reload() bool {
	h, err := s.read()
	if err != nil {
		return false
	}
	before, err1 := store.EncodeHistory(s.history)
	after, err2 := store.EncodeHistory(h)
	if err1 == nil && err2 == nil && bytes.Equal(before, after) {
		return false
	}
	s.history = h
	s.clearUndo()
	if next := s.maxID() + 1; next > s.nextID {
		s.nextID = next
	}
	return true
}

// CurrentItems returns a copy of the pending list.
func (s *Store) CurrentItems() []item.Item {
	return item.CloneAll(s.current)
}

// History returns a copy of the full history.
func (s *Store) History() item.History {
	return s.history.Clone()
}

// Days returns the day keys that have history, oldest first.
func (s *Store) Days() []time.Time {
	return s.history.Days()
}

// ItemsForDate returns the history of the day containing date, or an empty
// list.
func (s *Store) ItemsForDate(date time.Time) []item.Item {
	items, ok := s.history[s.day(date)]
	if !ok {
		return []item.Item{}
	}
	return item.CloneAll(items)
}

// FindHistoryItem locates a history item by id, scanning days oldest first.
func (s *Store) FindHistoryItem(id int) (time.Time, item.Item, bool) {
	for _, day := range s.history.Days() {
		for _, it := range s.history[day] {
			if it.ID == id {
				return day, it.Clone(), true
			}
		}
	}
	return time.Time{}, item.Item{}, false
}

// CanUndo reports whether UndoLastSubmission would do anything.
func (s *Store) CanUndo() bool {
	return len(s.undo) > 0 && !s.undoAt.IsZero()
}

// LastSubmission returns the undo buffer and when it was submitted.
func (s *Store) LastSubmission() ([]item.Item, time.Time) {
	return item.CloneAll(s.undo), s.undoAt
}

// Today is the day key for the store clock.
func (s *Store) Today() time.Time {
	return s.day(s.now())
}

// Location is the calendar used for day keys.
func (s *Store) Location() *time.Location {
	return s.loc
}

// LastSaveError is the error of the most recent history write, nil once a
// write succeeds again.
func (s *Store) LastSaveError() error {
	return s.lastSaveErr
}

func (s *Store) day(t time.Time) time.Time {
	return timeutil.Day(t, s.loc)
}

func (s *Store) read() (item.History, error) {
	if s.persistence == nil {
		return item.History{}, nil
	}
	h, err := s.persistence.ReadHistory()
	if err != nil {
		s.logger.Warn("history unreadable, starting empty", "op", "load", "path", s.persistence.Path(), "error", err)
		return nil, err
	}
	// Keys must be cut with the store calendar for lookups to hit.
	out := make(item.History, len(h))
	for d, items := range h {
		k := s.day(d)
		out[k] = append(out[k], items...)
	}
	return out, nil
}

func (s *Store) save() {
	if s.persistence == nil {
		return
	}
	if err := s.persistence.WriteHistory(s.history); err != nil {
		s.lastSaveErr = err
		s.logger.Warn("history write dropped", "op", "save", "path", s.persistence.Path(), "error", err)
		return
	}
	s.lastSaveErr = nil
}

func (s *Store) maxID() int {
	highest := 0
	for _, items := range s.history {
		for _, it := range items {
			if it.ID > highest {
				highest = it.ID
			}
		}
	}
	for _, it := range s.current {
		if it.ID > highest {
			highest = it.ID
		}
	}
	return highest
}

func (s *Store) clearUndo() {
	s.undo = nil
	s.undoAt = time.Time{}
}
