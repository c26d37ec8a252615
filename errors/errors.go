package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidRoomID      = fmt.Errorf("invalid room identifier")
	ErrCounterNotFound    = fmt.Errorf("counter not found")
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrEmptyLabel         = fmt.Errorf("counter label is empty")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidPassword    = fmt.Errorf("invalid password")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrMissingOwner       = fmt.Errorf("missing authenticated owner")
)

// MapToGRPCError translates domain sentinels into gRPC status codes at the
// transport edge. Anything unrecognized is reported as Internal without
// leaking the underlying error text to the client.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrInvalidRoomID), stderrors.Is(err, ErrEmptyLabel),
		stderrors.Is(err, ErrInvalidPassword):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrCounterNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrStorageUnavailable):
		return status.Error(codes.Unavailable, "storage unavailable")
	case stderrors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case stderrors.Is(err, ErrInvalidCredentials), stderrors.Is(err, ErrMissingOwner):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
