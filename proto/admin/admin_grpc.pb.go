// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: admin.proto

package admin

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CounterAdminService_CreateCounter_FullMethodName  = "/admin.v1.CounterAdminService/CreateCounter"
	CounterAdminService_RenameCounter_FullMethodName  = "/admin.v1.CounterAdminService/RenameCounter"
	CounterAdminService_ListCounters_FullMethodName   = "/admin.v1.CounterAdminService/ListCounters"
	CounterAdminService_SearchCounters_FullMethodName = "/admin.v1.CounterAdminService/SearchCounters"
)

// CounterAdminServiceClient is the client API for CounterAdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CounterAdminService covers the administrative surface: creating, renaming
// and listing counters. All methods require a valid JWT (see AuthService).
type CounterAdminServiceClient interface {
	CreateCounter(ctx context.Context, in *CreateCounterRequest, opts ...grpc.CallOption) (*CounterResponse, error)
	RenameCounter(ctx context.Context, in *RenameCounterRequest, opts ...grpc.CallOption) (*CounterResponse, error)
	ListCounters(ctx context.Context, in *ListCountersRequest, opts ...grpc.CallOption) (*ListCountersResponse, error)
	SearchCounters(ctx context.Context, in *SearchCountersRequest, opts ...grpc.CallOption) (*ListCountersResponse, error)
}

type counterAdminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCounterAdminServiceClient(cc grpc.ClientConnInterface) CounterAdminServiceClient {
	return &counterAdminServiceClient{cc}
}

func (c *counterAdminServiceClient) CreateCounter(ctx context.Context, in *CreateCounterRequest, opts ...grpc.CallOption) (*CounterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CounterResponse)
	err := c.cc.Invoke(ctx, CounterAdminService_CreateCounter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *counterAdminServiceClient) RenameCounter(ctx context.Context, in *RenameCounterRequest, opts ...grpc.CallOption) (*CounterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CounterResponse)
	err := c.cc.Invoke(ctx, CounterAdminService_RenameCounter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *counterAdminServiceClient) ListCounters(ctx context.Context, in *ListCountersRequest, opts ...grpc.CallOption) (*ListCountersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCountersResponse)
	err := c.cc.Invoke(ctx, CounterAdminService_ListCounters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *counterAdminServiceClient) SearchCounters(ctx context.Context, in *SearchCountersRequest, opts ...grpc.CallOption) (*ListCountersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCountersResponse)
	err := c.cc.Invoke(ctx, CounterAdminService_SearchCounters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CounterAdminServiceServer is the server API for CounterAdminService service.
// All implementations must embed UnimplementedCounterAdminServiceServer
// for forward compatibility.
//
// CounterAdminService covers the administrative surface: creating, renaming
// and listing counters. All methods require a valid JWT (see AuthService).
type CounterAdminServiceServer interface {
	CreateCounter(context.Context, *CreateCounterRequest) (*CounterResponse, error)
	RenameCounter(context.Context, *RenameCounterRequest) (*CounterResponse, error)
	ListCounters(context.Context, *ListCountersRequest) (*ListCountersResponse, error)
	SearchCounters(context.Context, *SearchCountersRequest) (*ListCountersResponse, error)
	mustEmbedUnimplementedCounterAdminServiceServer()
}

// UnimplementedCounterAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCounterAdminServiceServer struct{}

func (UnimplementedCounterAdminServiceServer) CreateCounter(context.Context, *CreateCounterRequest) (*CounterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateCounter not implemented")
}
func (UnimplementedCounterAdminServiceServer) RenameCounter(context.Context, *RenameCounterRequest) (*CounterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RenameCounter not implemented")
}
func (UnimplementedCounterAdminServiceServer) ListCounters(context.Context, *ListCountersRequest) (*ListCountersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCounters not implemented")
}
func (UnimplementedCounterAdminServiceServer) SearchCounters(context.Context, *SearchCountersRequest) (*ListCountersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchCounters not implemented")
}
func (UnimplementedCounterAdminServiceServer) mustEmbedUnimplementedCounterAdminServiceServer() {}
func (UnimplementedCounterAdminServiceServer) testEmbeddedByValue()                             {}

// UnsafeCounterAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CounterAdminServiceServer will
// result in compilation errors.
type UnsafeCounterAdminServiceServer interface {
	mustEmbedUnimplementedCounterAdminServiceServer()
}

func RegisterCounterAdminServiceServer(s grpc.ServiceRegistrar, srv CounterAdminServiceServer) {
	// If the following call pancis, it indicates UnimplementedCounterAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CounterAdminService_ServiceDesc, srv)
}

func _CounterAdminService_CreateCounter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CounterAdminServiceServer).CreateCounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CounterAdminService_CreateCounter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CounterAdminServiceServer).CreateCounter(ctx, req.(*CreateCounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CounterAdminService_RenameCounter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenameCounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CounterAdminServiceServer).RenameCounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CounterAdminService_RenameCounter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CounterAdminServiceServer).RenameCounter(ctx, req.(*RenameCounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CounterAdminService_ListCounters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCountersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CounterAdminServiceServer).ListCounters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CounterAdminService_ListCounters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CounterAdminServiceServer).ListCounters(ctx, req.(*ListCountersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CounterAdminService_SearchCounters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchCountersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CounterAdminServiceServer).SearchCounters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CounterAdminService_SearchCounters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CounterAdminServiceServer).SearchCounters(ctx, req.(*SearchCountersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CounterAdminService_ServiceDesc is the grpc.ServiceDesc for CounterAdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CounterAdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "admin.v1.CounterAdminService",
	HandlerType: (*CounterAdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCounter",
			Handler:    _CounterAdminService_CreateCounter_Handler,
		},
		{
			MethodName: "RenameCounter",
			Handler:    _CounterAdminService_RenameCounter_Handler,
		},
		{
			MethodName: "ListCounters",
			Handler:    _CounterAdminService_ListCounters_Handler,
		},
		{
			MethodName: "SearchCounters",
			Handler:    _CounterAdminService_SearchCounters_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "admin.proto",
}
