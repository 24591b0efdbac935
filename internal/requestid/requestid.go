package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New generates a random UUID v4 request ID.
func New() string {
	return uuid.NewString()
}

// Normalize returns id in canonical form when it is a UUID, and a fresh ID
// otherwise, so callers never log arbitrary header values.
func Normalize(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return New()
	}
	return parsed.String()
}

// WithRequestID returns a copy of ctx with the request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the request ID from ctx. Returns "" if absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
