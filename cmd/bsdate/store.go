package main

import (
	"fmt"
	"strings"

	"github.com/muhlemmer/bsdate/internal/db"
	"github.com/muhlemmer/bsdate/internal/db/migrations"
	"github.com/muhlemmer/bsdate/pkg/bs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// migrationDSN rewrites the postgresql scheme of dsn to the configured migrate driver.
func (a *app) migrationDSN() (string, error) {
	dsn, err := a.dsn()
	if err != nil {
		return "", err
	}
	driver := a.v.GetString(keyMigrDriver)
	if i := strings.Index(dsn, "://"); i >= 0 {
		dsn = dsn[i:]
	}
	return driver + dsn, nil
}

// migrate calls do, converting its panic into an error.
func migrate(do func(string), dsn string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bsdate: %v", r)
		}
	}()
	do(dsn)
	return nil
}

func (a *app) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the calendar database schema",
	}

	cmd.PersistentFlags().String(keyMigrDriver, "pgx", "golang-migrate database driver, pgx or cockroachdb")
	if err := a.v.BindPFlag(keyMigrDriver, cmd.PersistentFlags().Lookup(keyMigrDriver)); err != nil {
		panic(err)
	}

	for name, do := range map[string]func(string){
		"up":   migrations.Up,
		"down": migrations.Down,
	} {
		do := do
		cmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("Migrate the schema %s", name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dsn, err := a.migrationDSN()
				if err != nil {
					return err
				}
				err = migrate(do, dsn)
				zerolog.Ctx(cmd.Context()).Err(err).Str("direction", cmd.Name()).Msg("bsdate migrate")
				return err
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := a.migrationDSN()
			if err != nil {
				return err
			}
			version, dirty, err := migrations.Version(dsn)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d dirty=%t\n", version, dirty)
			return nil
		},
	})

	return cmd
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the database table and anchor with the built-in BS 2000-2090 data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dsn, err := a.dsn()
			if err != nil {
				return err
			}
			conn, err := db.New(ctx, dsn)
			if err != nil {
				return fmt.Errorf("bsdate: %w", err)
			}
			defer conn.Close()

			return conn.Seed(ctx, bs.DefaultTable(), bs.DefaultAnchor)
		},
	}
}
