// Package contexthelpers carries request-scoped values between middleware and handlers.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	traceIDKey contextKey = "traceID"
)

// SetUserID stores the authenticated user's id on the request context.
func SetUserID(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}

// UserID returns the user id stored on the context, or 0 when no user has been
// established for the request.
func UserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}

// SetTraceID stores the request trace id on the request context.
func SetTraceID(r *http.Request, traceID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), traceIDKey, traceID))
}

// TraceID returns the trace id stored on the context, or the empty string.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}
