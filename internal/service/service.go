package service

import (
	"context"
	"errors"

	calendarv1 "github.com/muhlemmer/bsdate/pkg/api/calendar/v1"
	"github.com/muhlemmer/bsdate/pkg/bs"
	"github.com/muhlemmer/bsdate/pkg/date"
	"github.com/muhlemmer/bsdate/pkg/datepb"
	"github.com/rs/zerolog"
	pbdate "google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/genproto/googleapis/type/interval"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// statusError maps bs errors to gRPC status errors.
func statusError(err error) error {
	if err == nil {
		return nil
	}

	var code codes.Code

	switch {
	case errors.Is(err, bs.ErrUnsupportedYear):
		code = codes.OutOfRange
	case errors.Is(err, bs.ErrInvalidMonth), errors.Is(err, bs.ErrInvalidDay):
		code = codes.InvalidArgument
	default:
		code = codes.Internal
	}

	return status.Error(code, err.Error())
}

type CalendarServer struct {
	calendarv1.UnimplementedCalendarServiceServer

	engine *bs.Engine
}

func NewCalendarService(s grpc.ServiceRegistrar, engine *bs.Engine) {
	calendarv1.RegisterCalendarServiceServer(s, &CalendarServer{
		engine: engine,
	})
}

func (s *CalendarServer) ToAD(ctx context.Context, req *pbdate.Date) (*pbdate.Date, error) {
	bsDate := datepb.ToBS(req)

	day, err := s.engine.ToEpochDay(bsDate)
	zerolog.Ctx(ctx).Debug().Err(err).Stringer("bs", bsDate).Int("epoch_day", day).Msg("calendar to AD")
	if err != nil {
		return nil, statusError(err)
	}

	return date.Proto(day), nil
}

func (s *CalendarServer) ToBS(ctx context.Context, req *pbdate.Date) (*pbdate.Date, error) {
	day, err := date.FromProto(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	bsDate, err := s.engine.FromEpochDay(day)
	zerolog.Ctx(ctx).Debug().Err(err).Int("epoch_day", day).Stringer("bs", bsDate).Msg("calendar to BS")
	if err != nil {
		return nil, statusError(err)
	}

	return datepb.FromBS(bsDate), nil
}

func (s *CalendarServer) Today(ctx context.Context, _ *emptypb.Empty) (*pbdate.Date, error) {
	return datepb.FromBS(s.engine.Today()), nil
}

func (s *CalendarServer) Range(ctx context.Context, _ *emptypb.Empty) (*interval.Interval, error) {
	r, ok := s.engine.Range()
	if !ok {
		return nil, status.Error(codes.FailedPrecondition, "calendar table is empty")
	}

	start, err := s.engine.ToEpochDay(r.Min)
	if err != nil {
		return nil, statusError(err)
	}
	end, err := s.engine.ToEpochDay(r.Max)
	if err != nil {
		return nil, statusError(err)
	}

	return &interval.Interval{
		StartTime: timestamppb.New(date.Time(start)),
		EndTime:   timestamppb.New(date.Time(end + 1)),
	}, nil
}

func (s *CalendarServer) AddDays(ctx context.Context, req *structpb.Struct) (*pbdate.Date, error) {
	d, n, err := calendarv1.ParseAddDaysRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.engine.AddDays(d, n)
	zerolog.Ctx(ctx).Debug().Err(err).Stringer("bs", d).Int("days", n).Stringer("result", res).Msg("calendar add days")
	if err != nil {
		return nil, statusError(err)
	}

	return datepb.FromBS(res), nil
}

func (s *CalendarServer) DiffDays(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	from, to, err := calendarv1.ParseDiffDaysRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	n, err := s.engine.DiffDays(from, to)
	zerolog.Ctx(ctx).Debug().Err(err).Stringer("from", from).Stringer("to", to).Int("days", n).Msg("calendar diff days")
	if err != nil {
		return nil, statusError(err)
	}

	return wrapperspb.Int64(int64(n)), nil
}
