package bs

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	ErrUnsupportedYear = errors.New("bs: unsupported year")
	ErrInvalidMonth    = errors.New("bs: invalid month")
	ErrInvalidDay      = errors.New("bs: invalid day")

	ErrInvalidMonthLength = errors.New("bs: month length out of range")
	ErrInvalidYearLength  = errors.New("bs: year length out of range")
	ErrTableGap           = errors.New("bs: table years not contiguous")
)

// UnsupportedYearError is returned when a year is reached
// that has no entry in the Table.
type UnsupportedYearError struct {
	Year int
}

func (e *UnsupportedYearError) Error() string {
	return fmt.Sprintf("bs: year %d not supported by table", e.Year)
}

func (e *UnsupportedYearError) Is(target error) bool {
	return target == ErrUnsupportedYear
}

// InvalidMonthError is returned for a month outside 1-12.
type InvalidMonthError struct {
	Year  int
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("bs: invalid month %d for year %d", e.Month, e.Year)
}

func (e *InvalidMonthError) Is(target error) bool {
	return target == ErrInvalidMonth
}

// InvalidDayError is returned for a day outside the length of its month.
type InvalidDayError struct {
	Date Date
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("bs: invalid day in %s", e.Date)
}

func (e *InvalidDayError) Is(target error) bool {
	return target == ErrInvalidDay
}
