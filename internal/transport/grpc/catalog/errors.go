package catalog

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, domain.ProductNotFoundMessage)

	case errors.Is(err, domain.ErrProductsUnavailable):
		return status.Error(codes.Unavailable, "catalog is unavailable")

	case errors.Is(err, domain.ErrInvalidSortMode):
		return status.Error(codes.InvalidArgument, err.Error())

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// statusToDomainError converts a status returned by the server back to a domain error.
func statusToDomainError(err error) error {
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.NotFound:
		return domain.ErrProductNotFound
	default:
		return errors.Join(domain.ErrProductsUnavailable, err)
	}
}
