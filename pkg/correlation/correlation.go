// Package correlation carries a per-request id through context so log lines
// of one request can be stitched together.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the header the HTTP layer reads and echoes back.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// WithID attaches id to the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the attached id, or "" when the context has none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// NewID mints a fresh id for requests that arrive without one.
func NewID() string {
	return uuid.New().String()
}
