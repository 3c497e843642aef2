// Package date provides epoch day utilities for AD (Gregorian) dates.
// An epoch day is the amount of whole days since 1970-01-01 UTC.
package date

import (
	"fmt"
	"time"

	"google.golang.org/genproto/googleapis/type/date"
)

// ISOLayout is the time layout of an ISO YYYY-MM-DD date.
const ISOLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// EpochDay returns the epoch day of ts in the UTC timezone.
// The time of day is truncated.
func EpochDay(ts time.Time) int {
	year, month, day := ts.UTC().Date()
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// Time returns 00:00 UTC of the epoch day.
func Time(day int) time.Time {
	return time.Unix(int64(day)*secondsPerDay, 0).UTC()
}

// ParseISO parses a YYYY-MM-DD date into an epoch day.
func ParseISO(s string) (int, error) {
	ts, err := time.Parse(ISOLayout, s)
	if err != nil {
		return 0, fmt.Errorf("date: parse ISO %q: %w", s, err)
	}
	return EpochDay(ts), nil
}

// FormatISO formats an epoch day as YYYY-MM-DD.
func FormatISO(day int) string {
	return Time(day).Format(ISOLayout)
}

// Proto converts an epoch day to a googleapis/type/date.Date.
func Proto(day int) *date.Date {
	year, month, d := Time(day).Date()
	return &date.Date{
		Year:  int32(year),
		Month: int32(month),
		Day:   int32(d),
	}
}

// FromProto converts a googleapis/type/date.Date to an epoch day.
// Year, month and day must all be set and form an existing date.
func FromProto(pb *date.Date) (int, error) {
	var (
		year  = int(pb.GetYear())
		month = time.Month(pb.GetMonth())
		day   = int(pb.GetDay())
	)

	ts := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if y, m, d := ts.Date(); y != year || m != month || d != day || year == 0 {
		return 0, fmt.Errorf("date: invalid date %04d-%02d-%02d", year, month, day)
	}
	return EpochDay(ts), nil
}

// Clamp limits v to the interval [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
