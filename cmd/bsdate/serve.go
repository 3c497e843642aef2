package main

import (
	"net"

	"github.com/muhlemmer/bsdate/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the CalendarService over gRPC",
		Long:  "Serve the CalendarService over gRPC until interrupted. The calendar table is loaded once at startup.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)

			e, err := a.engine(ctx)
			if err != nil {
				return err
			}

			lis, err := net.Listen("tcp", a.v.GetString(keyListen))
			if err != nil {
				return err
			}

			server := grpc.NewServer(grpc.UnaryInterceptor(service.UnaryLogInterceptor(*logger)))
			service.NewCalendarService(server, e)

			go func() {
				<-ctx.Done()
				logger.Info().Msg("bsdate serve shutting down")
				server.GracefulStop()
			}()

			logger.Info().Str("addr", lis.Addr().String()).Msg("bsdate serve")
			return server.Serve(lis)
		},
	}

	cmd.Flags().String(keyListen, ":9090", "gRPC listen address")
	if err := a.v.BindPFlag(keyListen, cmd.Flags().Lookup(keyListen)); err != nil {
		panic(err)
	}
	return cmd
}
