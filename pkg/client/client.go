// Package client provides a BS calendar client for the CalendarService gRPC server.
package client

import (
	"context"
	"fmt"
	"time"

	calendarv1 "github.com/muhlemmer/bsdate/pkg/api/calendar/v1"
	"github.com/muhlemmer/bsdate/pkg/bs"
	"github.com/muhlemmer/bsdate/pkg/date"
	"github.com/muhlemmer/bsdate/pkg/datepb"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Client converts dates through a CalendarService server.
// Calls log their result on the logger from context at the Debug level.
type Client struct {
	client calendarv1.CalendarServiceClient
	opts   []grpc.CallOption
}

// New returns a Client using cc. The opts are passed to every call.
func New(cc grpc.ClientConnInterface, opts ...grpc.CallOption) *Client {
	return &Client{
		client: calendarv1.NewCalendarServiceClient(cc),
		opts:   opts,
	}
}

// ToAD converts BS date d to an ISO YYYY-MM-DD AD date.
func (c *Client) ToAD(ctx context.Context, d bs.Date) (string, error) {
	resp, err := c.client.ToAD(ctx, datepb.FromBS(d), c.opts...)
	zerolog.Ctx(ctx).Debug().Err(err).Stringer("bs", d).Msg("client to AD")
	if err != nil {
		return "", fmt.Errorf("client: %w", err)
	}

	day, err := date.FromProto(resp)
	if err != nil {
		return "", fmt.Errorf("client: %w", err)
	}
	return date.FormatISO(day), nil
}

// ToBS converts an ISO YYYY-MM-DD AD date to BS.
func (c *Client) ToBS(ctx context.Context, adISO string) (bs.Date, error) {
	day, err := date.ParseISO(adISO)
	if err != nil {
		return bs.Date{}, fmt.Errorf("client: %w", err)
	}

	resp, err := c.client.ToBS(ctx, date.Proto(day), c.opts...)
	zerolog.Ctx(ctx).Debug().Err(err).Str("ad", adISO).Msg("client to BS")
	if err != nil {
		return bs.Date{}, fmt.Errorf("client: %w", err)
	}
	return datepb.ToBS(resp), nil
}

// Today returns the current BS date according to the server.
func (c *Client) Today(ctx context.Context) (bs.Date, error) {
	resp, err := c.client.Today(ctx, &emptypb.Empty{}, c.opts...)
	if err != nil {
		return bs.Date{}, fmt.Errorf("client: %w", err)
	}
	return datepb.ToBS(resp), nil
}

// Range returns the AD interval of dates supported by the server.
// start is 00:00 UTC of the first supported day and end is 00:00 UTC
// of the day after the last supported day.
func (c *Client) Range(ctx context.Context) (start, end time.Time, err error) {
	resp, err := c.client.Range(ctx, &emptypb.Empty{}, c.opts...)
	if err != nil {
		return start, end, fmt.Errorf("client: %w", err)
	}
	return resp.GetStartTime().AsTime(), resp.GetEndTime().AsTime(), nil
}

// AddDays returns the BS date n days after d, as computed by the server.
func (c *Client) AddDays(ctx context.Context, d bs.Date, n int) (bs.Date, error) {
	resp, err := c.client.AddDays(ctx, calendarv1.AddDaysRequest(d, n), c.opts...)
	if err != nil {
		return bs.Date{}, fmt.Errorf("client: %w", err)
	}
	return datepb.ToBS(resp), nil
}

// DiffDays returns the amount of days from one BS date to another, as computed by the server.
func (c *Client) DiffDays(ctx context.Context, from, to bs.Date) (int, error) {
	resp, err := c.client.DiffDays(ctx, calendarv1.DiffDaysRequest(from, to), c.opts...)
	if err != nil {
		return 0, fmt.Errorf("client: %w", err)
	}
	return int(resp.GetValue()), nil
}
