package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/draft"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{fmt.Errorf("load: %w", product.ErrProductNotFound), codes.NotFound},
		{draft.ErrDraftNotFound, codes.NotFound},
		{&batch.ValidationError{Problems: []batch.RowProblem{{Row: 1, Field: batch.FieldStock, Message: "is required"}}}, codes.InvalidArgument},
		{fmt.Errorf("%w: 9", batch.ErrRowOutOfRange), codes.InvalidArgument},
		{draft.ErrDraftLocked, codes.Aborted},
		{draft.ErrVersionConflict, codes.Aborted},
		{&catalogapi.APIError{StatusCode: 401}, codes.Unauthenticated},
		{&catalogapi.APIError{StatusCode: 403}, codes.PermissionDenied},
		{&catalogapi.APIError{StatusCode: 422}, codes.InvalidArgument},
		{fmt.Errorf("upload: %w", &catalogapi.APIError{StatusCode: 503}), codes.Unavailable},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err), "%v", tt.err)
	}
}

func TestToStatus(t *testing.T) {
	assert.NoError(t, ToStatus(nil))

	st, _ := status.FromError(ToStatus(errors.New("db password leaked")))
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())

	st, _ = status.FromError(ToStatus(product.ErrProductNotFound))
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "product not found", st.Message())

	already := status.Error(codes.Unimplemented, "nope")
	assert.Equal(t, already, ToStatus(already))
}
