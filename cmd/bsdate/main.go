// Command bsdate converts dates between the Bikram Sambat and Gregorian calendars.
// It also serves the CalendarService over gRPC and manages the calendar database.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// run executes the command line args and returns the exit code.
// A failing command is logged to stderr.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true})
		logger.Error().Err(err).Msg("bsdate")
		return 1
	}
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	code := run(ctx, os.Args[1:], os.Stderr)
	cancel()
	os.Exit(code)
}
