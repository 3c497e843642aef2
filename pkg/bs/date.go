// Package bs converts dates between the Bikram Sambat (BS) calendar
// and the proleptic Gregorian (AD) calendar.
//
// BS months have a variable length of 28 to 32 days, which can not be computed
// and have to be looked up in a Table. An Engine translates between both calendars
// through a signed day offset from a single Anchor correspondence.
package bs

import (
	"fmt"
	"strconv"
)

// Date is a day in the BS calendar.
// Month is in the range 1-12 and Day starts at 1.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Compare returns -1 if d is before o, 1 if d is after o and 0 when they are equal.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses a date in the canonical YYYY-MM-DD form.
// It does not check the date against any Table.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("bs: parse date %q: want YYYY-MM-DD", s)
	}
	var parts [3]int
	for i, field := range []string{s[0:4], s[5:7], s[8:10]} {
		for _, c := range field {
			if c < '0' || c > '9' {
				return Date{}, fmt.Errorf("bs: parse date %q: want YYYY-MM-DD", s)
			}
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return Date{}, fmt.Errorf("bs: parse date %q: %w", s, err)
		}
		parts[i] = v
	}
	return Date{Year: parts[0], Month: parts[1], Day: parts[2]}, nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
