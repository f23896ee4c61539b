package grpc

import (
	"errors"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto the small set of outward gRPC errors.
// Only validation errors carry detail.
func toStatus(err error) error {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, common.ErrorValidation.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidRefreshToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidRefreshToken.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "account already exists")
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}
