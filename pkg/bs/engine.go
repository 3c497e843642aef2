package bs

import (
	"fmt"
	"time"

	"github.com/muhlemmer/bsdate/pkg/date"
	"github.com/rs/zerolog"
)

// Anchor is the correspondence of a BS date with an AD epoch day,
// used as the zero point for offset calculations.
type Anchor struct {
	BS       Date
	EpochDay int
}

// NewAnchor returns an Anchor placing bs on the AD date in ISO YYYY-MM-DD format.
func NewAnchor(bs Date, adISO string) (Anchor, error) {
	day, err := date.ParseISO(adISO)
	if err != nil {
		return Anchor{}, fmt.Errorf("bs: anchor: %w", err)
	}
	return Anchor{BS: bs, EpochDay: day}, nil
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the function used by Today to obtain the current time.
// The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger used for reporting clamped Today results.
// The default discards all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// Engine converts dates between BS and AD and performs day arithmetic
// on BS dates. All conversions go through the signed offset in days
// from the Anchor.
// An Engine does not carry mutable state and is safe for concurrent use.
type Engine struct {
	table  *Table
	anchor Anchor

	// anchorDay is the day number of the anchor inside the table.
	anchorDay int

	now    func() time.Time
	logger zerolog.Logger
}

// NewEngine returns an Engine over table, with the given anchor.
// The BS date of the anchor must be present in table.
func NewEngine(table *Table, anchor Anchor, opts ...Option) (*Engine, error) {
	n, err := table.dayNumber(anchor.BS)
	if err != nil {
		return nil, fmt.Errorf("bs: anchor %s: %w", anchor.BS, err)
	}

	e := &Engine{
		table:     table,
		anchor:    anchor,
		anchorDay: n,
		now:       time.Now,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

func (e *Engine) Table() *Table  { return e.table }
func (e *Engine) Anchor() Anchor { return e.anchor }

// Range of dates supported by the table.
func (e *Engine) Range() (Range, bool) { return e.table.Range() }

// Offset returns the signed amount of days from the anchor to d.
// Dates before the anchor have a negative offset.
func (e *Engine) Offset(d Date) (int, error) {
	n, err := e.table.dayNumber(d)
	if err != nil {
		return 0, err
	}
	return n - e.anchorDay, nil
}

// FromOffset returns the date offset days away from the anchor.
func (e *Engine) FromOffset(offset int) (Date, error) {
	return e.table.addDays(e.anchorDay, offset)
}

// ToEpochDay returns the AD epoch day of d.
func (e *Engine) ToEpochDay(d Date) (int, error) {
	offset, err := e.Offset(d)
	if err != nil {
		return 0, err
	}
	return e.anchor.EpochDay + offset, nil
}

// FromEpochDay returns the BS date of an AD epoch day.
func (e *Engine) FromEpochDay(day int) (Date, error) {
	first := e.anchor.EpochDay - e.anchorDay
	if day < first {
		return e.table.addDays(0, -1)
	}
	// compare before subtracting, day - first may overflow.
	if last := e.table.yearStart[e.table.Len()] - 1; day-last > first {
		return e.table.addDays(last, 1)
	}
	return e.table.fromDayNumber(day - first)
}

// ToAD converts d to an AD date in ISO YYYY-MM-DD format.
func (e *Engine) ToAD(d Date) (string, error) {
	day, err := e.ToEpochDay(d)
	if err != nil {
		return "", err
	}
	return date.FormatISO(day), nil
}

// ToBS converts an AD date in ISO YYYY-MM-DD format to a BS date.
func (e *Engine) ToBS(adISO string) (Date, error) {
	day, err := date.ParseISO(adISO)
	if err != nil {
		return Date{}, fmt.Errorf("bs: %w", err)
	}
	return e.FromEpochDay(day)
}

// AddDays returns the date n days after d. n may be negative.
func (e *Engine) AddDays(d Date, n int) (Date, error) {
	dn, err := e.table.dayNumber(d)
	if err != nil {
		return Date{}, err
	}
	return e.table.addDays(dn, n)
}

// DiffDays returns the amount of days from a to b.
// The result is negative when b is before a.
func (e *Engine) DiffDays(a, b Date) (int, error) {
	oa, err := e.Offset(a)
	if err != nil {
		return 0, err
	}
	ob, err := e.Offset(b)
	if err != nil {
		return 0, err
	}
	return ob - oa, nil
}

// Today returns the BS date of the current UTC day.
// When the current day is outside the table, the first or last
// supported date is returned instead. Today never fails.
func (e *Engine) Today() Date {
	var (
		day  = date.EpochDay(e.now())
		n    = e.anchorDay + day - e.anchor.EpochDay
		last = e.table.yearStart[e.table.Len()] - 1
	)

	if c := date.Clamp(n, 0, last); c != n {
		r, _ := e.table.Range()
		clamped := r.Min
		if n > last {
			clamped = r.Max
		}
		e.logger.Debug().Int("epoch_day", day).Stringer("clamped", clamped).Msg("bs today outside table range")
		return clamped
	}

	d, _ := e.table.fromDayNumber(n)
	return d
}
