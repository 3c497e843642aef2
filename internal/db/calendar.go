package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/muhlemmer/bsdate/pkg/bs"
	"github.com/muhlemmer/bsdate/pkg/date"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func int4(v int) pgtype.Int4 {
	return pgtype.Int4{Int: int32(v), Status: pgtype.Present}
}

func monthsArray(months [12]int) []int32 {
	arr := make([]int32, len(months))
	for i, n := range months {
		arr[i] = int32(n)
	}
	return arr
}

// scanMonthRows scans year, month and days rows into a year table.
// Every year must have all 12 months present.
func scanMonthRows(rows pgx.Rows) (map[int][12]int, error) {
	var (
		years  = make(map[int][12]int)
		counts = make(map[int]int)
	)

	for rows.Next() {
		var year, month, days pgtype.Int4

		if err := rows.Scan(&year, &month, &days); err != nil {
			return nil, err
		}

		y, m := int(year.Int), int(month.Int)
		if m < 1 || m > 12 {
			return nil, status.Errorf(codes.DataLoss, "year %d has invalid month %d", y, m)
		}

		months := years[y]
		months[m-1] = int(days.Int)
		years[y] = months
		counts[y]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for y, n := range counts {
		if n != 12 {
			return nil, status.Errorf(codes.FailedPrecondition, "year %d has %d months", y, n)
		}
	}

	return years, nil
}

// LoadTable reads all years from calendar.bs_months into a bs.Table.
func (db *DB) LoadTable(ctx context.Context) (*bs.Table, error) {
	const errDesc = "load table"

	rows, err := db.pool.Query(ctx, selectMonthsSQL)
	if err = statusError(err, errDesc); err != nil {
		return nil, err
	}
	defer rows.Close()

	years, err := scanMonthRows(rows)
	if err = statusError(err, errDesc); err != nil {
		return nil, err
	}

	table, err := bs.NewTable(years)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%s: %v", errDesc, err)
	}

	zerolog.Ctx(ctx).Debug().Int("years", table.Len()).Msg("db calendar table loaded")
	return table, nil
}

// LoadAnchor reads the anchor from calendar.anchor.
func (db *DB) LoadAnchor(ctx context.Context) (bs.Anchor, error) {
	var (
		year, month, day pgtype.Int4
		ad               pgtype.Date
	)

	err := db.pool.QueryRow(ctx, selectAnchorSQL).Scan(&year, &month, &day, &ad)
	if err = statusError(err, "load anchor"); err != nil {
		return bs.Anchor{}, err
	}

	return bs.Anchor{
		BS: bs.Date{
			Year:  int(year.Int),
			Month: int(month.Int),
			Day:   int(day.Int),
		},
		EpochDay: date.EpochDay(ad.Time),
	}, nil
}

// Engine loads the table and anchor and returns a bs.Engine over them.
func (db *DB) Engine(ctx context.Context, opts ...bs.Option) (*bs.Engine, error) {
	table, err := db.LoadTable(ctx)
	if err != nil {
		return nil, err
	}
	anchor, err := db.LoadAnchor(ctx)
	if err != nil {
		return nil, err
	}

	e, err := bs.NewEngine(table, anchor, opts...)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "db engine: %v", err)
	}
	return e, nil
}

// InsertYear inserts the month lengths of a new year.
// An existing year results in an AlreadyExists status error.
func (db *DB) InsertYear(ctx context.Context, year int, months [12]int) error {
	_, err := db.pool.Exec(ctx, insertYearSQL, int4(year), monthsArray(months))
	return statusError(err, "insert year")
}

// UpsertYear inserts or updates the month lengths of a year.
// Failures are retried untill the operation succeeds, the passed context expires
// or the database rejects the values.
func (db *DB) UpsertYear(ctx context.Context, year int, months [12]int) error {
	return statusError(
		db.execRetry(ctx, time.Second/10, 2*time.Second, upsertYearSQL, int4(year), monthsArray(months)),
		"upsert year",
	)
}

// DeleteYear removes a year from the table.
// NotFound is returned when the year did not exist.
// Only the first or last year should be deleted: a table with a gap
// is rejected by LoadTable with FailedPrecondition until the year is inserted again.
func (db *DB) DeleteYear(ctx context.Context, year int) error {
	ct, err := db.pool.Exec(ctx, deleteYearSQL, int4(year))
	if err = statusError(err, "delete year"); err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return status.Errorf(codes.NotFound, "delete year: %d not found", year)
	}
	return nil
}

func anchorArgs(anchor bs.Anchor) []interface{} {
	return []interface{}{
		int4(anchor.BS.Year),
		int4(anchor.BS.Month),
		int4(anchor.BS.Day),
		pgtype.Date{
			Time:   date.Time(anchor.EpochDay),
			Status: pgtype.Present,
		},
	}
}

// SaveAnchor inserts or replaces the single anchor row.
func (db *DB) SaveAnchor(ctx context.Context, anchor bs.Anchor) error {
	return statusError(
		db.execRetry(ctx, time.Second/10, 2*time.Second, upsertAnchorSQL, anchorArgs(anchor)...),
		"save anchor",
	)
}

// Seed replaces the complete table and anchor in a single transaction.
func (db *DB) Seed(ctx context.Context, table *bs.Table, anchor bs.Anchor) error {
	var inserted int

	err := db.pool.BeginTxFunc(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, clearMonthsSQL); err != nil {
			return err
		}

		sd, err := tx.Prepare(ctx, "SeedYear", insertYearSQL)
		if err != nil {
			return err
		}

		for _, year := range table.Years() {
			months, err := table.Months(year)
			if err != nil {
				return err
			}
			ct, err := tx.Exec(ctx, sd.Name, int4(year), monthsArray(months))
			if err != nil {
				return fmt.Errorf("year %d: %w", year, err)
			}
			inserted += int(ct.RowsAffected())
		}

		_, err = tx.Exec(ctx, upsertAnchorSQL, anchorArgs(anchor)...)
		return err
	})

	zerolog.Ctx(ctx).Err(err).Int("inserted", inserted).Msg("db calendar seed")
	return statusError(err, "seed")
}
