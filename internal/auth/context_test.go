package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestGetToken(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"empty", context.Background(), ""},
		{"context value", WithToken(context.Background(), "tok"), "tok"},
		{"metadata bearer", metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer xyz")), "xyz"},
		{"metadata raw", metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "xyz")), "xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetToken(tt.ctx))
		})
	}
}
