// Package calendarv1 defines the bsdate.calendar.v1.CalendarService gRPC API.
//
// The service is built from the well-known google.type and google.protobuf messages,
// so no protobuf generation step is required.
// BS dates are carried in google.type.Date messages, with the same field semantics.
package calendarv1

import (
	"context"

	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/genproto/googleapis/type/interval"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "bsdate.calendar.v1.CalendarService"

const (
	CalendarService_ToAD_FullMethodName  = "/" + ServiceName + "/ToAD"
	CalendarService_ToBS_FullMethodName  = "/" + ServiceName + "/ToBS"
	CalendarService_Today_FullMethodName = "/" + ServiceName + "/Today"
	CalendarService_Range_FullMethodName = "/" + ServiceName + "/Range"

	CalendarService_AddDays_FullMethodName  = "/" + ServiceName + "/AddDays"
	CalendarService_DiffDays_FullMethodName = "/" + ServiceName + "/DiffDays"
)

// CalendarServiceClient is the client API for CalendarService.
type CalendarServiceClient interface {
	// ToAD converts a BS date to an AD date.
	ToAD(ctx context.Context, in *date.Date, opts ...grpc.CallOption) (*date.Date, error)
	// ToBS converts an AD date to a BS date.
	ToBS(ctx context.Context, in *date.Date, opts ...grpc.CallOption) (*date.Date, error)
	// Today returns the current BS date, clamped to the supported range.
	Today(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*date.Date, error)
	// Range returns the AD interval supported by the server's table.
	// The end time is exclusive.
	Range(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*interval.Interval, error)
	// AddDays adds days to a BS date. See AddDaysRequest for the request fields.
	AddDays(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*date.Date, error)
	// DiffDays returns the days from one BS date to another. See DiffDaysRequest for the request fields.
	DiffDays(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
}

type calendarServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCalendarServiceClient(cc grpc.ClientConnInterface) CalendarServiceClient {
	return &calendarServiceClient{cc}
}

func (c *calendarServiceClient) ToAD(ctx context.Context, in *date.Date, opts ...grpc.CallOption) (*date.Date, error) {
	out := new(date.Date)
	if err := c.cc.Invoke(ctx, CalendarService_ToAD_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ToBS(ctx context.Context, in *date.Date, opts ...grpc.CallOption) (*date.Date, error) {
	out := new(date.Date)
	if err := c.cc.Invoke(ctx, CalendarService_ToBS_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) Today(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*date.Date, error) {
	out := new(date.Date)
	if err := c.cc.Invoke(ctx, CalendarService_Today_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) Range(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*interval.Interval, error) {
	out := new(interval.Interval)
	if err := c.cc.Invoke(ctx, CalendarService_Range_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) AddDays(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*date.Date, error) {
	out := new(date.Date)
	if err := c.cc.Invoke(ctx, CalendarService_AddDays_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) DiffDays(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, CalendarService_DiffDays_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CalendarServiceServer is the server API for CalendarService.
type CalendarServiceServer interface {
	ToAD(context.Context, *date.Date) (*date.Date, error)
	ToBS(context.Context, *date.Date) (*date.Date, error)
	Today(context.Context, *emptypb.Empty) (*date.Date, error)
	Range(context.Context, *emptypb.Empty) (*interval.Interval, error)
	AddDays(context.Context, *structpb.Struct) (*date.Date, error)
	DiffDays(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
}

// UnimplementedCalendarServiceServer can be embedded to have forward compatible implementations.
type UnimplementedCalendarServiceServer struct{}

func (UnimplementedCalendarServiceServer) ToAD(context.Context, *date.Date) (*date.Date, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToAD not implemented")
}
func (UnimplementedCalendarServiceServer) ToBS(context.Context, *date.Date) (*date.Date, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToBS not implemented")
}
func (UnimplementedCalendarServiceServer) Today(context.Context, *emptypb.Empty) (*date.Date, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Today not implemented")
}
func (UnimplementedCalendarServiceServer) Range(context.Context, *emptypb.Empty) (*interval.Interval, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Range not implemented")
}
func (UnimplementedCalendarServiceServer) AddDays(context.Context, *structpb.Struct) (*date.Date, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddDays not implemented")
}
func (UnimplementedCalendarServiceServer) DiffDays(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DiffDays not implemented")
}

func RegisterCalendarServiceServer(s grpc.ServiceRegistrar, srv CalendarServiceServer) {
	s.RegisterService(&CalendarService_ServiceDesc, srv)
}

func _CalendarService_ToAD_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(date.Date)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ToAD(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ToAD_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ToAD(ctx, req.(*date.Date))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ToBS_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(date.Date)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ToBS(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ToBS_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ToBS(ctx, req.(*date.Date))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_Today_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).Today(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_Today_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).Today(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_Range_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).Range(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_Range_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).Range(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_AddDays_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).AddDays(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_AddDays_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).AddDays(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_DiffDays_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).DiffDays(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_DiffDays_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).DiffDays(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// CalendarService_ServiceDesc is the grpc.ServiceDesc for CalendarService.
var CalendarService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalendarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ToAD",
			Handler:    _CalendarService_ToAD_Handler,
		},
		{
			MethodName: "ToBS",
			Handler:    _CalendarService_ToBS_Handler,
		},
		{
			MethodName: "Today",
			Handler:    _CalendarService_Today_Handler,
		},
		{
			MethodName: "Range",
			Handler:    _CalendarService_Range_Handler,
		},
		{
			MethodName: "AddDays",
			Handler:    _CalendarService_AddDays_Handler,
		},
		{
			MethodName: "DiffDays",
			Handler:    _CalendarService_DiffDays_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
