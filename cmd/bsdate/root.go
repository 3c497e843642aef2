package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/muhlemmer/bsdate/internal/db"
	"github.com/muhlemmer/bsdate/pkg/bs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Every key can also be set through
// the environment, for example BSDATE_DB_URL.
const (
	envPrefix = "BSDATE"

	keyDBURL      = "db-url"
	keyLogLevel   = "log-level"
	keyListen     = "listen"
	keyMigrDriver = "migration-driver"
)

type app struct {
	v    *viper.Viper
	opts []bs.Option
}

// newRootCmd builds the command tree, with configuration bound to v.
// The engine options are applied to every engine the commands create.
func newRootCmd(v *viper.Viper, opts ...bs.Option) *cobra.Command {
	a := &app{v: v, opts: opts}

	root := &cobra.Command{
		Use:           "bsdate",
		Short:         "Bikram Sambat calendar conversion",
		Long:          "Convert dates between Bikram Sambat (BS) and Gregorian (AD), do BS date arithmetic and serve the calendar over gRPC.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setLogger(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyDBURL, "", "PostgreSQL connection URL of the calendar database; the built-in BS 2000-2090 table is used when empty")
	flags.String(keyLogLevel, zerolog.LevelInfoValue, "log level")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.toADCmd(),
		a.toBSCmd(),
		a.todayCmd(),
		a.addCmd(),
		a.diffCmd(),
		a.rangeCmd(),
		a.spanCmd(),
		a.serveCmd(),
		a.migrateCmd(),
		a.seedCmd(),
	)

	return root
}

// setLogger attaches a console logger at the configured level to the command context.
func (a *app) setLogger(cmd *cobra.Command) error {
	level, err := zerolog.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("bsdate: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

// engine returns an engine over the database table when a database URL
// is configured, or over the built-in reference table otherwise.
func (a *app) engine(ctx context.Context) (*bs.Engine, error) {
	logger := zerolog.Ctx(ctx)
	opts := append([]bs.Option{bs.WithLogger(*logger)}, a.opts...)

	dsn := a.v.GetString(keyDBURL)
	if dsn == "" {
		return bs.Default(opts...), nil
	}

	conn, err := db.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("bsdate: %w", err)
	}
	defer conn.Close()

	e, err := conn.Engine(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("bsdate: %w", err)
	}

	min, max := e.Table().SupportedYearRange()
	logger.Debug().Int("min", min).Int("max", max).Msg("bsdate engine loaded from database")
	return e, nil
}

// dsn returns the configured database URL or an error when none is set.
func (a *app) dsn() (string, error) {
	dsn := a.v.GetString(keyDBURL)
	if dsn == "" {
		return "", fmt.Errorf("bsdate: --%s or %s_DB_URL required", keyDBURL, envPrefix)
	}
	return dsn, nil
}
