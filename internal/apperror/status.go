// Package apperror maps domain errors onto gRPC status codes.
package apperror

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/draft"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/spreadsheet"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code classifies err. Unknown errors are Internal.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	var verr *batch.ValidationError
	if errors.As(err, &verr) {
		return codes.InvalidArgument
	}
	var apiErr *catalogapi.APIError
	if errors.As(err, &apiErr) {
		return apiCode(apiErr.StatusCode)
	}

	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, draft.ErrDraftNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, catalogapi.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, product.ErrInvalidInput),
		errors.Is(err, batch.ErrRowOutOfRange),
		errors.Is(err, batch.ErrUnknownField),
		errors.Is(err, spreadsheet.ErrInvalidWorkbook),
		errors.Is(err, spreadsheet.ErrMissingColumn):
		return codes.InvalidArgument
	case errors.Is(err, draft.ErrDraftLocked),
		errors.Is(err, draft.ErrVersionConflict):
		return codes.Aborted
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return codes.Unavailable
	}
	return codes.Internal
}

func apiCode(statusCode int) codes.Code {
	switch {
	case statusCode == http.StatusUnauthorized:
		return codes.Unauthenticated
	case statusCode == http.StatusForbidden:
		return codes.PermissionDenied
	case statusCode == http.StatusConflict:
		return codes.AlreadyExists
	case statusCode == http.StatusTooManyRequests, statusCode >= 500:
		return codes.Unavailable
	case statusCode >= 400:
		return codes.InvalidArgument
	}
	return codes.Internal
}

// ToStatus converts err into a status error. Internal errors keep a generic
// message so backend details do not leak to callers.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := Code(err)
	if code == codes.Internal {
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}
