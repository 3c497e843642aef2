package bs

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 30, 0, 0, time.UTC)
	}
}

func TestNewAnchor(t *testing.T) {
	got, err := NewAnchor(Date{2000, 1, 1}, "1943-04-14")
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultAnchor {
		t.Errorf("NewAnchor() = %v, want %v", got, DefaultAnchor)
	}

	if _, err = NewAnchor(Date{2000, 1, 1}, "14-04-1943"); err == nil {
		t.Error("NewAnchor() expected error")
	}
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		anchor  Anchor
		wantErr error
	}{
		{"default", DefaultAnchor, nil},
		{"outside table", Anchor{BS: Date{1999, 12, 30}}, ErrUnsupportedYear},
		{"invalid day", Anchor{BS: Date{2000, 1, 31}}, ErrInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(DefaultTable(), tt.anchor)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngine_ToAD(t *testing.T) {
	e := Default()

	tests := []struct {
		date    Date
		want    string
		wantErr error
	}{
		{Date{2000, 1, 1}, "1943-04-14", nil},
		{Date{2000, 12, 31}, "1944-04-12", nil},
		{Date{2001, 1, 1}, "1944-04-13", nil},
		{Date{2080, 1, 1}, "2023-04-14", nil},
		{Date{2081, 1, 1}, "2024-04-13", nil},
		{Date{2082, 1, 1}, "2025-04-14", nil},
		{Date{2083, 6, 28}, "2026-10-14", nil},
		{Date{2090, 12, 30}, "2034-04-13", nil},
		{Date{1999, 12, 30}, "", ErrUnsupportedYear},
		{Date{2091, 1, 1}, "", ErrUnsupportedYear},
		{Date{2080, 13, 1}, "", ErrInvalidMonth},
		{Date{2080, 1, 32}, "", ErrInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			got, err := e.ToAD(tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Engine.ToAD() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Engine.ToAD() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_ToBS(t *testing.T) {
	e := Default()

	tests := []struct {
		iso     string
		want    Date
		wantErr error
	}{
		{"1943-04-14", Date{2000, 1, 1}, nil},
		{"2023-04-14", Date{2080, 1, 1}, nil},
		{"2026-10-14", Date{2083, 6, 28}, nil},
		{"1943-04-13", Date{}, ErrUnsupportedYear},
		{"2034-04-14", Date{}, ErrUnsupportedYear},
	}
	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			got, err := e.ToBS(tt.iso)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Engine.ToBS() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Engine.ToBS() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := e.ToBS("foo"); err == nil {
		t.Error("Engine.ToBS() expected parse error")
	}
}

func TestEngine_AddDays(t *testing.T) {
	e := Default()

	tests := []struct {
		name    string
		date    Date
		days    int
		want    Date
		wantErr error
	}{
		{"zero", Date{2000, 1, 30}, 0, Date{2000, 1, 30}, nil},
		{"month rollover", Date{2000, 1, 30}, 1, Date{2000, 2, 1}, nil},
		{"in next month", Date{2000, 1, 30}, 5, Date{2000, 2, 5}, nil},
		{"year rollover", Date{2000, 12, 31}, 1, Date{2001, 1, 1}, nil},
		{"backward year", Date{2001, 1, 1}, -1, Date{2000, 12, 31}, nil},
		{"backward month", Date{2080, 2, 1}, -1, Date{2080, 1, 31}, nil},
		{"before table", Date{2000, 1, 1}, -1, Date{}, ErrUnsupportedYear},
		{"after table", Date{2090, 12, 30}, 1, Date{}, ErrUnsupportedYear},
		{"invalid start", Date{2000, 1, 31}, 1, Date{}, ErrInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.AddDays(tt.date, tt.days)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Engine.AddDays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Engine.AddDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_DiffDays(t *testing.T) {
	e := Default()

	tests := []struct {
		name    string
		a, b    Date
		want    int
		wantErr error
	}{
		{"forward", Date{2000, 1, 1}, Date{2000, 1, 10}, 9, nil},
		{"backward", Date{2000, 1, 10}, Date{2000, 1, 1}, -9, nil},
		{"same", Date{2050, 6, 15}, Date{2050, 6, 15}, 0, nil},
		{"years", Date{2000, 1, 1}, Date{2080, 1, 1}, 29220, nil},
		{"unsupported a", Date{1999, 1, 1}, Date{2000, 1, 1}, 0, ErrUnsupportedYear},
		{"unsupported b", Date{2000, 1, 1}, Date{2091, 1, 1}, 0, ErrUnsupportedYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.DiffDays(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Engine.DiffDays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Engine.DiffDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Today(t *testing.T) {
	table := mustTable(twoYears)

	tests := []struct {
		name  string
		clock func() time.Time
		want  Date
	}{
		{"anchor", fixedClock(1943, time.April, 14), Date{2000, 1, 1}},
		{"inside", fixedClock(1944, time.April, 13), Date{2001, 1, 1}},
		{"last day", fixedClock(1945, time.April, 12), Date{2001, 12, 30}},
		{"day after", fixedClock(1945, time.April, 13), Date{2001, 12, 30}},
		{"far future", fixedClock(2200, time.January, 1), Date{2001, 12, 30}},
		{"day before", fixedClock(1943, time.April, 13), Date{2000, 1, 1}},
		{"far past", fixedClock(1900, time.January, 1), Date{2000, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(table, DefaultAnchor,
				WithClock(tt.clock),
				WithLogger(zerolog.New(zerolog.NewTestWriter(t))),
			)
			if err != nil {
				t.Fatal(err)
			}
			if got := e.Today(); got != tt.want {
				t.Errorf("Engine.Today() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Today_default(t *testing.T) {
	got := Default(WithClock(fixedClock(2200, time.January, 1))).Today()
	if want := (Date{2090, 12, 30}); got != want {
		t.Errorf("Engine.Today() = %v, want %v", got, want)
	}

	got = Default(WithClock(fixedClock(1900, time.January, 1))).Today()
	if want := (Date{2000, 1, 1}); got != want {
		t.Errorf("Engine.Today() = %v, want %v", got, want)
	}
}

func TestEngine_unsupportedYear(t *testing.T) {
	table, err := NewTable(map[int][12]int{
		2080: monthData[2080],
	})
	if err != nil {
		t.Fatal(err)
	}
	anchor, err := NewAnchor(Date{2080, 1, 1}, "2023-04-14")
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine(table, anchor)
	if err != nil {
		t.Fatal(err)
	}

	var target *UnsupportedYearError

	_, err = e.ToAD(Date{2079, 12, 30})
	if !errors.As(err, &target) || target.Year != 2079 {
		t.Errorf("Engine.ToAD() error = %v, want unsupported year 2079", err)
	}
	_, err = e.AddDays(Date{2080, 1, 1}, -1)
	if !errors.As(err, &target) || target.Year != 2079 {
		t.Errorf("Engine.AddDays() error = %v, want unsupported year 2079", err)
	}
	_, err = e.AddDays(Date{2080, 12, 30}, 1)
	if !errors.As(err, &target) || target.Year != 2081 {
		t.Errorf("Engine.AddDays() error = %v, want unsupported year 2081", err)
	}
}

// samples returns the first, a middle and the last day of every year in the default table.
func samples() []Date {
	var dates []Date
	for _, y := range DefaultTable().Years() {
		last, _ := DefaultTable().MonthLength(y, 12)
		dates = append(dates,
			Date{y, 1, 1},
			Date{y, 6, 15},
			Date{y, 12, last},
		)
	}
	return dates
}

func TestEngine_roundTrip(t *testing.T) {
	e := Default()
	for _, d := range samples() {
		iso, err := e.ToAD(d)
		if err != nil {
			t.Fatal(err)
		}
		got, err := e.ToBS(iso)
		if err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Errorf("ToBS(ToAD(%s)) = %s", d, got)
		}
	}
}

func TestEngine_monotonic(t *testing.T) {
	e := Default()
	dates := samples()

	prev, err := e.ToEpochDay(dates[0])
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(dates); i++ {
		day, err := e.ToEpochDay(dates[i])
		if err != nil {
			t.Fatal(err)
		}
		if day <= prev {
			t.Errorf("ToEpochDay(%s) = %d, not after %d", dates[i], day, prev)
		}
		diff, err := e.DiffDays(dates[i-1], dates[i])
		if err != nil {
			t.Fatal(err)
		}
		if diff != day-prev {
			t.Errorf("DiffDays(%s, %s) = %d, want %d", dates[i-1], dates[i], diff, day-prev)
		}
		prev = day
	}
}

func TestEngine_antiSymmetry(t *testing.T) {
	e := Default()
	dates := samples()

	for i, a := range dates {
		b := dates[(i*7)%len(dates)]
		ab, err := e.DiffDays(a, b)
		if err != nil {
			t.Fatal(err)
		}
		ba, err := e.DiffDays(b, a)
		if err != nil {
			t.Fatal(err)
		}
		if ab != -ba {
			t.Errorf("DiffDays(%s, %s) = %d, reverse %d", a, b, ab, ba)
		}
		if aa, _ := e.DiffDays(a, a); aa != 0 {
			t.Errorf("DiffDays(%s, %s) = %d", a, a, aa)
		}
	}
}

func TestEngine_additive(t *testing.T) {
	e := Default()
	start := Date{2045, 7, 12}

	for _, mn := range [][2]int{{0, 0}, {1, 1}, {30, -45}, {-400, 1000}, {3650, -3650}, {-12, -365}} {
		m, n := mn[0], mn[1]
		t.Run(fmt.Sprint(m, n), func(t *testing.T) {
			want, err := e.AddDays(start, m+n)
			if err != nil {
				t.Fatal(err)
			}
			step, err := e.AddDays(start, m)
			if err != nil {
				t.Fatal(err)
			}
			got, err := e.AddDays(step, n)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("AddDays(AddDays(%s, %d), %d) = %s, want %s", start, m, n, got, want)
			}
		})
	}
}

func TestEngine_monthLengthFidelity(t *testing.T) {
	e := Default()
	table := e.Table()
	max := table.Years()[table.Len()-1]

	for _, y := range table.Years() {
		for m := 1; m <= 12; m++ {
			if y == max && m == 12 {
				continue
			}
			n, err := table.MonthLength(y, m)
			if err != nil {
				t.Fatal(err)
			}
			want := Date{y, m + 1, 1}
			if m == 12 {
				want = Date{y + 1, 1, 1}
			}
			got, err := e.AddDays(Date{y, m, n}, 1)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("AddDays(%s, 1) = %s, want %s", Date{y, m, n}, got, want)
			}
		}
	}
}

func TestEngine_anchorIndependent(t *testing.T) {
	anchor, err := NewAnchor(Date{2080, 1, 1}, "2023-04-14")
	if err != nil {
		t.Fatal(err)
	}
	other, err := NewEngine(DefaultTable(), anchor)
	if err != nil {
		t.Fatal(err)
	}
	e := Default()

	if off, err := other.Offset(Date{2000, 1, 1}); err != nil || off != -29220 {
		t.Errorf("Engine.Offset() = %d, %v, want -29220", off, err)
	}

	for _, d := range samples() {
		want, err := e.ToAD(d)
		if err != nil {
			t.Fatal(err)
		}
		got, err := other.ToAD(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Engine.ToAD(%s) = %s, want %s", d, got, want)
		}
	}
}

// offsetByWalking counts single day steps from the anchor to d.
func offsetByWalking(t *testing.T, e *Engine, d Date) int {
	t.Helper()

	var (
		step = e.Table().NextDay
		from = e.Anchor().BS
		to   = d
		dir  = 1
	)
	if d.Before(from) {
		from, to, dir = d, from, -1
	}

	var n int
	for cursor := from; cursor != to; n++ {
		var err error
		if cursor, err = step(cursor); err != nil {
			t.Fatal(err)
		}
	}
	return dir * n
}

func TestEngine_Offset_walk(t *testing.T) {
	anchor, err := NewAnchor(Date{2045, 1, 1}, "1988-04-13")
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine(DefaultTable(), anchor)
	if err != nil {
		t.Fatal(err)
	}

	for _, d := range []Date{{2000, 1, 1}, {2030, 5, 17}, {2045, 1, 1}, {2045, 3, 3}, {2060, 11, 29}, {2090, 12, 30}} {
		got, err := e.Offset(d)
		if err != nil {
			t.Fatal(err)
		}
		if want := offsetByWalking(t, e, d); got != want {
			t.Errorf("Engine.Offset(%s) = %d, want %d", d, got, want)
		}
	}
}

func TestEngine_concurrent(t *testing.T) {
	e := Default()
	dates := samples()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, d := range dates[i:] {
				iso, err := e.ToAD(d)
				if err != nil {
					t.Error(err)
					return
				}
				if got, err := e.ToBS(iso); err != nil || got != d {
					t.Errorf("ToBS(ToAD(%s)) = %s, %v", d, got, err)
				}
			}
		}(i)
	}
	wg.Wait()
}

func ExampleEngine_ToAD() {
	e := Default()
	ad, err := e.ToAD(Date{Year: 2080, Month: 1, Day: 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(ad)
	// output: 2023-04-14
}

func ExampleEngine_AddDays() {
	e := Default()
	d, err := e.AddDays(Date{Year: 2000, Month: 1, Day: 30}, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// output: 2000-02-01
}

func TestEngine_overflow(t *testing.T) {
	e := Default()

	tests := []struct {
		name     string
		call     func() (Date, error)
		wantYear int
	}{
		{"AddDays max", func() (Date, error) { return e.AddDays(Date{2090, 12, 1}, math.MaxInt) }, 2091},
		{"AddDays min", func() (Date, error) { return e.AddDays(Date{2000, 1, 2}, math.MinInt) }, 1999},
		{"FromOffset max", func() (Date, error) { return e.FromOffset(math.MaxInt) }, 2091},
		{"FromOffset min", func() (Date, error) { return e.FromOffset(math.MinInt) }, 1999},
		{"FromEpochDay max", func() (Date, error) { return e.FromEpochDay(math.MaxInt) }, 2091},
		{"FromEpochDay min", func() (Date, error) { return e.FromEpochDay(math.MinInt) }, 1999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target *UnsupportedYearError

			_, err := tt.call()
			if !errors.As(err, &target) || target.Year != tt.wantYear {
				t.Errorf("error = %v, want unsupported year %d", err, tt.wantYear)
			}
		})
	}
}

func TestEngine_FromEpochDay_edges(t *testing.T) {
	e := Default()

	tests := []struct {
		day  int
		want Date
	}{
		{-9759, Date{2000, 1, 1}},
		{-9758, Date{2000, 1, 2}},
		{23478, Date{2090, 12, 30}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.day), func(t *testing.T) {
			got, err := e.FromEpochDay(tt.day)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Engine.FromEpochDay() = %v, want %v", got, tt.want)
			}
		})
	}

	for _, day := range []int{-9760, 23479} {
		if _, err := e.FromEpochDay(day); !errors.Is(err, ErrUnsupportedYear) {
			t.Errorf("Engine.FromEpochDay(%d) error = %v, want %v", day, err, ErrUnsupportedYear)
		}
	}
}
