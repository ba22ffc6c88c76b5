// Package ctxutil carries request-scoped identity and client hints through
// context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type key int

const (
	userIDKey key = iota
	requestIDKey
	timezoneKey
)

// lookup returns the value under k when it has type T and is not T's zero value.
func lookup[T comparable](ctx context.Context, k key) (T, bool) {
	var zero T
	v, ok := ctx.Value(k).(T)
	if !ok || v == zero {
		return zero, false
	}
	return v, true
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx reports the authenticated user. uuid.Nil never counts as one.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return lookup[uuid.UUID](ctx, userIDKey)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := lookup[string](ctx, requestIDKey)
	return id
}

// WithTimezone stores the client's IANA zone name unvalidated. An empty name
// returns ctx unchanged.
func WithTimezone(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, timezoneKey, name)
}

// TimezoneFromCtx returns the client zone name, or "" when none was sent.
func TimezoneFromCtx(ctx context.Context) string {
	name, _ := lookup[string](ctx, timezoneKey)
	return name
}
