// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's RequestID middleware would, so RequestID finds it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
