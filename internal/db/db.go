package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/log/zerologadapter"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/muhlemmer/bsdate/internal/timer"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type multiError []error

func (errs multiError) Error() string {
	s := make([]string, len(errs))
	for i, err := range errs {
		s[i] = err.Error()
	}

	return fmt.Sprintf("multiple errors: %s", strings.Join(s, ", "))
}

func statusError(err error, desc string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return status.Errorf(codes.NotFound, "%s: %v", desc, err)
	}

	var code codes.Code

	pge := new(pgconn.PgError)
	if errors.As(err, &pge) {
		switch pge.Code {
		case pgerrcode.UniqueViolation:
			code = codes.AlreadyExists
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			code = codes.InvalidArgument
		default:
			code = codes.Internal
		}

		return status.Errorf(code, "%s: %s", desc, pge.Message)
	}

	return err
}

// permanent errors are not retried.
// This covers class 23, integrity constraint violations.
func permanent(err error) bool {
	pge := new(pgconn.PgError)
	return errors.As(err, &pge) && strings.HasPrefix(pge.Code, "23")
}

// DB provides high level query execution over
// a PGX connection pool.
type DB struct {
	pool *pgxpool.Pool
}

func Wrap(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

// New configures a new PGX connection pool
// with a zerolog adapter taken from context.
func New(ctx context.Context, dsn string) (*DB, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	conf.ConnConfig.Logger = zerologadapter.NewLogger(*zerolog.Ctx(ctx))

	pool, err := pgxpool.ConnectConfig(ctx, conf)
	if err != nil {
		return nil, err
	}

	return &DB{pool}, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

func (db *DB) execRetry(ctx context.Context, min, max time.Duration, sql string, args ...interface{}) error {
	var (
		logger  = zerolog.Ctx(ctx).Sample(zerolog.Often)
		backoff = timer.Backoff{Min: min, Max: max}
		errs    multiError
	)

retry:
	for {
		// fail-fast wrapper function for isolated context and cancelation.
		err := func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()

			_, err := db.pool.Exec(ctx, sql, args...)
			return err
		}(ctx)

		if err == nil {
			return nil
		}

		logger.Err(err).Msg("db exec retry")
		errs = append(errs, err)
		if permanent(err) {
			break retry
		}

		select {
		case <-ctx.Done():
			break retry
		case <-backoff.After():
			// retry
		}
	}

	if len(errs) == 1 {
		return errs[0]
	}

	// the last error determines the status code.
	if last := errs[len(errs)-1]; permanent(last) {
		return last
	}
	return errs
}
