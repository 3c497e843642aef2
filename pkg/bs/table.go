package bs

import (
	"fmt"
	"sort"
)

// Month and year length limits accepted by NewTable.
const (
	MinMonthLength = 28
	MaxMonthLength = 32
	MinYearLength  = 354
	MaxYearLength  = 367
)

// Table holds the month lengths of a contiguous range of BS years.
// A Table is immutable and safe for concurrent use.
type Table struct {
	minYear int
	months  [][12]int

	// yearStart[i] is the number of days from the first day of minYear
	// to the first day of minYear+i. It has one extra entry holding the table total.
	yearStart []int
	// monthStart[i][m] is the number of days from the first day of year minYear+i
	// to the first day of month m+1.
	monthStart [][13]int
}

// NewTable builds a Table from a map of year to its 12 month lengths.
// Month lengths must be within [MinMonthLength, MaxMonthLength],
// the sum of a year within [MinYearLength, MaxYearLength]
// and the years must form a contiguous range.
func NewTable(years map[int][12]int) (*Table, error) {
	keys := make([]int, 0, len(years))
	for y := range years {
		keys = append(keys, y)
	}
	sort.Ints(keys)

	t := &Table{
		months:     make([][12]int, len(keys)),
		yearStart:  make([]int, len(keys)+1),
		monthStart: make([][13]int, len(keys)),
	}
	if len(keys) == 0 {
		return t, nil
	}
	t.minYear = keys[0]

	for i, y := range keys {
		if y != t.minYear+i {
			return nil, fmt.Errorf("%w: year %d missing", ErrTableGap, t.minYear+i)
		}

		months := years[y]
		var total int
		for m, n := range months {
			if n < MinMonthLength || n > MaxMonthLength {
				return nil, fmt.Errorf("%w: year %d month %d has %d days", ErrInvalidMonthLength, y, m+1, n)
			}
			t.monthStart[i][m] = total
			total += n
		}
		if total < MinYearLength || total > MaxYearLength {
			return nil, fmt.Errorf("%w: year %d has %d days", ErrInvalidYearLength, y, total)
		}
		t.monthStart[i][12] = total
		t.months[i] = months
		t.yearStart[i+1] = t.yearStart[i] + total
	}

	return t, nil
}

func (t *Table) index(year int) (int, bool) {
	i := year - t.minYear
	return i, i >= 0 && i < len(t.months)
}

// Contains reports if year is present in the table.
func (t *Table) Contains(year int) bool {
	_, ok := t.index(year)
	return ok
}

// Len returns the amount of years in the table.
func (t *Table) Len() int { return len(t.months) }

// SupportedYearRange returns the first and last year of the table.
// Both are 0 for an empty table.
func (t *Table) SupportedYearRange() (min, max int) {
	if len(t.months) == 0 {
		return 0, 0
	}
	return t.minYear, t.minYear + len(t.months) - 1
}

// Years returns all years in the table in ascending order.
func (t *Table) Years() []int {
	years := make([]int, len(t.months))
	for i := range years {
		years[i] = t.minYear + i
	}
	return years
}

// Months returns the 12 month lengths of year.
func (t *Table) Months(year int) ([12]int, error) {
	i, ok := t.index(year)
	if !ok {
		return [12]int{}, &UnsupportedYearError{Year: year}
	}
	return t.months[i], nil
}

// MonthLength returns the amount of days in month of year.
func (t *Table) MonthLength(year, month int) (int, error) {
	i, ok := t.index(year)
	if !ok {
		return 0, &UnsupportedYearError{Year: year}
	}
	if month < 1 || month > 12 {
		return 0, &InvalidMonthError{Year: year, Month: month}
	}
	return t.months[i][month-1], nil
}

// YearLength returns the amount of days in year.
func (t *Table) YearLength(year int) (int, error) {
	i, ok := t.index(year)
	if !ok {
		return 0, &UnsupportedYearError{Year: year}
	}
	return t.monthStart[i][12], nil
}

// Range is the span of dates supported by a Table.
type Range struct {
	Min Date
	Max Date
}

// Contains reports if d is within r, inclusive.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Min) && !d.After(r.Max)
}

// Range returns the first day of the first year and last day of the last year.
// ok is false for an empty table.
func (t *Table) Range() (r Range, ok bool) {
	if len(t.months) == 0 {
		return Range{}, false
	}
	last := len(t.months) - 1
	return Range{
		Min: Date{Year: t.minYear, Month: 1, Day: 1},
		Max: Date{Year: t.minYear + last, Month: 12, Day: t.months[last][11]},
	}, true
}

// Validate checks that d exists in the table.
func (t *Table) Validate(d Date) error {
	n, err := t.MonthLength(d.Year, d.Month)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > n {
		return &InvalidDayError{Date: d}
	}
	return nil
}

// NextDay returns the day after d.
func (t *Table) NextDay(d Date) (Date, error) {
	if err := t.Validate(d); err != nil {
		return Date{}, err
	}
	n, _ := t.MonthLength(d.Year, d.Month)
	switch {
	case d.Day < n:
		d.Day++
		return d, nil
	case d.Month < 12:
		return Date{Year: d.Year, Month: d.Month + 1, Day: 1}, nil
	case !t.Contains(d.Year + 1):
		return Date{}, &UnsupportedYearError{Year: d.Year + 1}
	default:
		return Date{Year: d.Year + 1, Month: 1, Day: 1}, nil
	}
}

// PrevDay returns the day before d.
func (t *Table) PrevDay(d Date) (Date, error) {
	if err := t.Validate(d); err != nil {
		return Date{}, err
	}
	if d.Day > 1 {
		d.Day--
		return d, nil
	}

	year, month := d.Year, d.Month-1
	if month < 1 {
		year, month = year-1, 12
	}
	n, err := t.MonthLength(year, month)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: year, Month: month, Day: n}, nil
}

// dayNumber returns the amount of days from the first day of the table to d.
func (t *Table) dayNumber(d Date) (int, error) {
	if err := t.Validate(d); err != nil {
		return 0, err
	}
	i, _ := t.index(d.Year)
	return t.yearStart[i] + t.monthStart[i][d.Month-1] + d.Day - 1, nil
}

// addDays returns the date delta days after day number n, which must be inside a non-empty table.
// Sums leaving the table, including those that would overflow int, result in an
// UnsupportedYearError for the adjacent year on the side the sum leaves.
func (t *Table) addDays(n, delta int) (Date, error) {
	last := t.yearStart[len(t.months)] - 1

	switch {
	case delta < -n:
		return Date{}, &UnsupportedYearError{Year: t.minYear - 1}
	case delta > last-n:
		return Date{}, &UnsupportedYearError{Year: t.minYear + len(t.months)}
	}
	return t.fromDayNumber(n + delta)
}

// fromDayNumber is the inverse of dayNumber.
// Numbers outside the table result in an UnsupportedYearError
// for the adjacent year.
func (t *Table) fromDayNumber(n int) (Date, error) {
	switch {
	case len(t.months) == 0:
		return Date{}, &UnsupportedYearError{Year: t.minYear}
	case n < 0:
		return Date{}, &UnsupportedYearError{Year: t.minYear - 1}
	case n >= t.yearStart[len(t.months)]:
		return Date{}, &UnsupportedYearError{Year: t.minYear + len(t.months)}
	}

	i := sort.Search(len(t.months), func(i int) bool { return t.yearStart[i+1] > n })
	n -= t.yearStart[i]

	m := sort.Search(12, func(m int) bool { return t.monthStart[i][m+1] > n })
	return Date{
		Year:  t.minYear + i,
		Month: m + 1,
		Day:   n - t.monthStart[i][m] + 1,
	}, nil
}
