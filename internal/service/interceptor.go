package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryLogInterceptor attaches logger to the context of each call,
// with the called method as field.
// The result of each call is logged on the Info level.
func UnaryLogInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		logger := logger.With().Str("method", info.FullMethod).Logger()
		begin := time.Now()

		resp, err := handler(logger.WithContext(ctx), req)
		logger.Info().Err(err).Stringer("code", status.Code(err)).Dur("duration", time.Since(begin)).Msg("calendar service call")

		return resp, err
	}
}
