package grpchash

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrOutOfRange reports a proportion the server rejected as outside [0, 1].
var ErrOutOfRange = errors.New("proportion outside [0, 1]")

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.InvalidArgument:
		// Server uses InvalidArgument only for out-of-range proportions.
		return ErrOutOfRange
	default:
		return err
	}
}
