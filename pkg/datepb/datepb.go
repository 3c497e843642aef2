// Package datepb provides utilities for carrying BS dates in googleapis/types/date.Date messages.
package datepb

import (
	"time"

	"github.com/muhlemmer/bsdate/pkg/bs"
	ad "github.com/muhlemmer/bsdate/pkg/date"
	"google.golang.org/genproto/googleapis/type/date"
)

// FromBS converts a bs.Date to a googleapis/type/date.Date.
func FromBS(d bs.Date) *date.Date {
	return &date.Date{
		Year:  int32(d.Year),
		Month: int32(d.Month),
		Day:   int32(d.Day),
	}
}

// ToBS converts a googleapis/type/date.Date to a bs.Date.
// No validation is done, the result can be checked with bs.Table.Validate.
func ToBS(date *date.Date) bs.Date {
	return bs.Date{
		Year:  int(date.GetYear()),
		Month: int(date.GetMonth()),
		Day:   int(date.GetDay()),
	}
}

// period returns the first and last day of the BS period described by date.
func period(t *bs.Table, date *date.Date) (first, last bs.Date, err error) {
	d := ToBS(date)

	if d.Day != 0 {
		return d, d, nil
	}
	if d.Month != 0 {
		n, err := t.MonthLength(d.Year, d.Month)
		if err != nil {
			return first, last, err
		}
		return bs.Date{Year: d.Year, Month: d.Month, Day: 1}, bs.Date{Year: d.Year, Month: d.Month, Day: n}, nil
	}

	n, err := t.MonthLength(d.Year, 12)
	if err != nil {
		return first, last, err
	}
	return bs.Date{Year: d.Year, Month: 1, Day: 1}, bs.Date{Year: d.Year, Month: 12, Day: n}, nil
}

// Interval returns a start and end time.Time in UTC for the given BS period.
// The precision of the period is determined by the populated fields.
// start is always at 00:00 on the first AD day of the period.
// end is 1ns before the AD day following the period.
// For example:
//   - if day is non-zero the period is that single day.
//   - if day is zero and month is non-zero the period covers the BS month.
//   - if day and month are zero, the period covers the complete BS year.
func Interval(e *bs.Engine, date *date.Date) (start, end time.Time, err error) {
	first, last, err := period(e.Table(), date)
	if err != nil {
		return start, end, err
	}

	firstDay, err := e.ToEpochDay(first)
	if err != nil {
		return start, end, err
	}
	lastDay, err := e.ToEpochDay(last)
	if err != nil {
		return start, end, err
	}

	return ad.Time(firstDay), ad.Time(lastDay + 1).Add(-1), nil
}
