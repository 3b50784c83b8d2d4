package auth

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// GetToken returns the caller's bearer token, without the scheme.
func GetToken(ctx context.Context) string {
	if val, ok := ctx.Value(middleware.TokenKey).(string); ok {
		return val
	}

	// Fallback to metadata
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get("authorization"); len(val) > 0 {
			token := strings.TrimSpace(val[0])
			if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
				return strings.TrimSpace(token[7:])
			}
			return token
		}
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if val, ok := ctx.Value(middleware.RequestIDKey).(string); ok {
		return val
	}
	return ""
}

// WithToken attaches a token for calls made outside a gRPC request, such as
// draft submission from a background job.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, middleware.TokenKey, token)
}
