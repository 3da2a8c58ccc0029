package grpchash

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// HasherServer is the server API for the Hasher gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain.
//
// Proto definition: hasher.proto.
type HasherServer interface {
	Hash64(context.Context, *wrapperspb.BytesValue) (*wrapperspb.UInt64Value, error)
	Hash128(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	Cutoff(context.Context, *wrapperspb.DoubleValue) (*wrapperspb.UInt64Value, error)
}

// UnimplementedHasherServer can be embedded to have forward compatible implementations.
type UnimplementedHasherServer struct{}

func (UnimplementedHasherServer) Hash64(context.Context, *wrapperspb.BytesValue) (*wrapperspb.UInt64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Hash64 not implemented")
}
func (UnimplementedHasherServer) Hash128(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Hash128 not implemented")
}
func (UnimplementedHasherServer) Cutoff(context.Context, *wrapperspb.DoubleValue) (*wrapperspb.UInt64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Cutoff not implemented")
}

// RegisterHasherServer registers the Hasher service on a gRPC server.
func RegisterHasherServer(s grpc.ServiceRegistrar, srv HasherServer) {
	s.RegisterService(&Hasher_ServiceDesc, srv)
}

// HasherClient is the client API for the Hasher gRPC service.
type HasherClient interface {
	Hash64(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	Hash128(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Cutoff(ctx context.Context, in *wrapperspb.DoubleValue, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
}

type hasherClient struct{ cc grpc.ClientConnInterface }

func NewHasherClient(cc grpc.ClientConnInterface) HasherClient { return &hasherClient{cc: cc} }

func (c *hasherClient) Hash64(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	err := c.cc.Invoke(ctx, "/xdao.flexhash.service.grpchash.v1.Hasher/Hash64", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hasherClient) Hash128(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/xdao.flexhash.service.grpchash.v1.Hasher/Hash128", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hasherClient) Cutoff(ctx context.Context, in *wrapperspb.DoubleValue, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	err := c.cc.Invoke(ctx, "/xdao.flexhash.service.grpchash.v1.Hasher/Cutoff", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Hasher_Hash64_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HasherServer).Hash64(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.flexhash.service.grpchash.v1.Hasher/Hash64"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HasherServer).Hash64(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Hasher_Hash128_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HasherServer).Hash128(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.flexhash.service.grpchash.v1.Hasher/Hash128"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HasherServer).Hash128(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Hasher_Cutoff_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.DoubleValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HasherServer).Cutoff(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.flexhash.service.grpchash.v1.Hasher/Cutoff"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HasherServer).Cutoff(ctx, req.(*wrapperspb.DoubleValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Hasher_ServiceDesc is the grpc.ServiceDesc for Hasher service.
var Hasher_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.flexhash.service.grpchash.v1.Hasher",
	HandlerType: (*HasherServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Hash64", Handler: _Hasher_Hash64_Handler},
		{MethodName: "Hash128", Handler: _Hasher_Hash128_Handler},
		{MethodName: "Cutoff", Handler: _Hasher_Cutoff_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hasher.proto",
}
