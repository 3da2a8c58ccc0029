package grpchash

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/flexhash/digest"
	"xdao.co/flexhash/hashes"
)

// Server exposes the digest functions over the Hasher gRPC service.
//
// The service is stateless; the zero Server is ready to register.
type Server struct {
	UnimplementedHasherServer
}

func (s *Server) Hash64(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.UInt64Value, error) {
	_ = ctx
	return wrapperspb.UInt64(digest.OfBytes64(in.GetValue())), nil
}

func (s *Server) Hash128(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	return wrapperspb.String(digest.OfBytes(in.GetValue()).String()), nil
}

func (s *Server) Cutoff(ctx context.Context, in *wrapperspb.DoubleValue) (*wrapperspb.UInt64Value, error) {
	_ = ctx
	p := in.GetValue()
	// Remote callers get a status instead of the in-process assertion panic;
	// a bad proportion from the wire must not take the daemon down.
	if !(p >= 0.0 && p <= 1.0) {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("proportion %v outside [0, 1]", p))
	}
	return wrapperspb.UInt64(hashes.ProportionCutoff(p)), nil
}
