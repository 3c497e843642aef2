// Package tester provides a testing framework for the complete project.
package tester

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/log/zerologadapter"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/muhlemmer/bsdate/internal/db/migrations"
	"github.com/muhlemmer/bsdate/pkg/bs"
	"github.com/muhlemmer/bsdate/pkg/date"
	"github.com/rs/zerolog"
)

// Database configuration
const (
	MigrDriverEnvKey  = "MIGRATION_DRIVER"
	DefaultMigrDriver = "pgx"
	DSNEnvKey         = "DB_URL"
)

// Resources caries data for testing.
type Resources struct {
	CTX    context.Context
	ErrCTX context.Context

	// DSN and Pool are empty when no database is configured.
	DSN  string
	Pool *pgxpool.Pool

	// Table and Anchor are the data inserted by RunWithData.
	Table  *bs.Table
	Anchor bs.Anchor
}

// SkipWithoutDB skips the test when no database is configured.
func (r *Resources) SkipWithoutDB(t testing.TB) {
	t.Helper()
	if r.Pool == nil {
		t.Skipf("%s not set, skipping database test", DSNEnvKey)
	}
}

func (r *Resources) calendarData(ctx context.Context) {
	r.Table = bs.DefaultTable()
	r.Anchor = bs.DefaultAnchor

	var inserted int64

	err := r.Pool.BeginTxFunc(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		sd, err := tx.Prepare(ctx, "CalendarData", insertMonthSQL)
		if err != nil {
			return err
		}

		for _, year := range r.Table.Years() {
			months, err := r.Table.Months(year)
			if err != nil {
				return err
			}
			for i, days := range months {
				ct, err := tx.Exec(ctx, sd.Name,
					pgtype.Int4{Int: int32(year), Status: pgtype.Present},
					pgtype.Int4{Int: int32(i + 1), Status: pgtype.Present},
					pgtype.Int4{Int: int32(days), Status: pgtype.Present},
				)
				if err != nil {
					return err
				}
				if ct.Insert() {
					inserted += ct.RowsAffected()
				}
			}
		}

		_, err = tx.Exec(ctx, insertAnchorSQL,
			pgtype.Int4{Int: int32(r.Anchor.BS.Year), Status: pgtype.Present},
			pgtype.Int4{Int: int32(r.Anchor.BS.Month), Status: pgtype.Present},
			pgtype.Int4{Int: int32(r.Anchor.BS.Day), Status: pgtype.Present},
			pgtype.Date{Time: date.Time(r.Anchor.EpochDay), Status: pgtype.Present},
		)
		return err
	})

	zerolog.Ctx(ctx).Err(err).Int64("inserted", inserted).Msg("tester calendar data insert")
	if err != nil {
		panic(fmt.Errorf("tester CalendarData: %w", err))
	}
}

// Run resets the database by migrating Down and Up.
//
// The run function is meant to iniate tests and supply
// them with Resources as required, returning the value
// from testing.M.Run().
//
// Database configuration is taken from the environment.
// See package constants for more details.
// When DB_URL is not set, run is called without a database
// and tests should call Resources.SkipWithoutDB.
func Run(timeout time.Duration, run func(r *Resources) int) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)
	errCTX, cancel := context.WithCancel(ctx)
	cancel()

	r := &Resources{
		CTX:    ctx,
		ErrCTX: errCTX,
	}

	dsn, ok := os.LookupEnv(DSNEnvKey)
	if !ok {
		logger.Warn().Msgf("tester: %s not set, running without database", DSNEnvKey)
		return run(r)
	}
	migrDriver, ok := os.LookupEnv(MigrDriverEnvKey)
	if !ok {
		migrDriver = DefaultMigrDriver
	}

	migrDSN := strings.Replace(dsn, "postgresql", migrDriver, 1)

	migrations.Down(migrDSN)
	migrations.Up(migrDSN)

	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		panic(err)
	}

	conf.ConnConfig.Logger = zerologadapter.NewLogger(logger)

	db, err := pgxpool.ConnectConfig(ctx, conf)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	r.DSN = dsn
	r.Pool = db

	return run(r)
}

// RunWithData resets the database by migrating Down and Up and inserts
// the default BS table and anchor.
// The inserted data can be found in Resources, passed to the run function.
// The run function is meant to iniate tests and supply
// them with Resources as required, returning the value
// from testing.M.Run().
//
// Database configuration is taken from the environment.
// See package constants for more details.
func RunWithData(timeout time.Duration, run func(r *Resources) int) int {
	return Run(timeout, func(r *Resources) int {
		if r.Pool != nil {
			r.calendarData(r.CTX)
		}
		return run(r)
	})
}
