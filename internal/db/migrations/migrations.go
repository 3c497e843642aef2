// Package migrations embeds the database schema of the BS calendar tables.
package migrations

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/cockroachdb"
	_ "github.com/golang-migrate/migrate/v4/database/pgx"
)

var (
	//go:embed *.sql
	files           embed.FS
	migrationSource source.Driver
)

func panicOnErr(err error) {
	if err == migrate.ErrNoChange {
		return
	}

	if err != nil {
		panic(fmt.Errorf("db/migrations: %w", err))
	}
}

func init() {
	var err error
	migrationSource, err = iofs.New(files, ".")
	panicOnErr(err)
}

// Up applies all migrations on the database at dsn.
// The scheme of dsn selects the migrate driver, for example "pgx://" or "cockroachdb://".
// Up is a no-op when the schema is current and panics on any other error.
func Up(dsn string) {
	m, err := migrate.NewWithSourceInstance("embed", migrationSource, dsn)
	panicOnErr(err)
	panicOnErr(m.Up())
}

// Down reverts all migrations.
func Down(dsn string) {
	m, err := migrate.NewWithSourceInstance("embed", migrationSource, dsn)
	panicOnErr(err)
	panicOnErr(m.Down())
}

// Version returns the current schema version and if the last migration left it dirty.
func Version(dsn string) (version uint, dirty bool, err error) {
	m, err := migrate.NewWithSourceInstance("embed", migrationSource, dsn)
	if err != nil {
		return 0, false, fmt.Errorf("db/migrations: %w", err)
	}
	version, dirty, err = m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	return version, dirty, err
}
