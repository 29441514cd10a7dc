// Package tracker computes the reading-plan snapshot shown for a selected date.
package tracker

import (
	"math"
	"time"

	"github.com/metcalfc/pyeongsam/internal/memo"
	"github.com/metcalfc/pyeongsam/internal/plan"
)

type span struct {
	start, end plan.Date
}

// Snapshot is everything the form displays for one date.
type Snapshot struct {
	Date         plan.Date
	ChaptersRead int
	Position     plan.Position
	// Due is the number of chapters assigned to Date.
	Due     int
	Reading plan.Reading
	// Percent is 100 * ChaptersRead / table total and may exceed 100.
	Percent float64
}

// Completed reports whether the whole table has been read.
func (s Snapshot) Completed() bool { return s.Position.Done }

// FinishesToday reports whether today's list runs off the end of the table.
func (s Snapshot) FinishesToday() bool { return !s.Completed() && s.Reading.Exhausted }

// DisplayPercent is Percent clamped to [0, 100].
func (s Snapshot) DisplayPercent() float64 {
	return math.Max(0, math.Min(100, s.Percent))
}

// Fraction is DisplayPercent scaled to [0, 1] for progress bars.
func (s Snapshot) Fraction() float64 { return s.DisplayPercent() / 100 }

// Tracker computes snapshots against a book table.
type Tracker struct {
	table *plan.BookTable
	loc   *time.Location
	now   func() time.Time
	cache *memo.Store[span, int]
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLocation sets the zone used to decide today's date.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) { t.loc = loc }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a Tracker over table.
func New(table *plan.BookTable, opts ...Option) *Tracker {
	t := &Tracker{
		table: table,
		loc:   time.Local,
		now:   time.Now,
		cache: memo.New[span, int](),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Table returns the book table.
func (t *Tracker) Table() *plan.BookTable { return t.table }

// Today returns the current date in the tracker's zone.
func (t *Tracker) Today() plan.Date {
	return plan.DateOf(t.now().In(t.loc))
}

// ChaptersRead returns the chapters due from January 1 of d's year through d.
func (t *Tracker) ChaptersRead(d plan.Date) int {
	s := span{start: d.StartOfYear(), end: d}
	return t.cache.Get(s, func() int { return plan.Accumulate(s.start, s.end) })
}

// At computes the snapshot for d.
func (t *Tracker) At(d plan.Date) Snapshot {
	read := t.ChaptersRead(d)
	s := Snapshot{
		Date:         d,
		ChaptersRead: read,
		Position:     t.table.Resolve(read),
		Due:          plan.ChaptersForDay(d),
		Percent:      100 * float64(read) / float64(t.table.Total()),
	}
	if !s.Completed() {
		s.Reading = t.table.Walk(s.Position, s.Due)
	}
	return s
}

// Now computes the snapshot for today.
func (t *Tracker) Now() Snapshot { return t.At(t.Today()) }

// CacheStats exposes the accumulate cache counters.
func (t *Tracker) CacheStats() (hits, misses int) { return t.cache.Stats() }
