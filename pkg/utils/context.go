package utils

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// NewRequestID returns a fresh id for correlating one submit across log lines.
func NewRequestID() string {
	return uuid.NewString()
}

func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	id, ok := val.(string)
	return id, ok
}

// RequestIDField returns a zap field for the request id in ctx, or a no-op field.
func RequestIDField(ctx context.Context) zap.Field {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return zap.String("request_id", id)
	}
	return zap.Skip()
}
