package core

import (
	"context"
	"fmt"
)

// Context keys for pipeline options
type contextKey string

const suppressProgressKey contextKey = "suppressProgress"

// WithSuppressProgress marks a context so pipeline progress lines are not
// printed. The MCP server uses this because stdout carries the protocol.
func WithSuppressProgress(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressProgressKey, true)
}

// shouldSuppressProgress returns whether progress output is suppressed.
func shouldSuppressProgress(ctx context.Context) bool {
	val := ctx.Value(suppressProgressKey)
	if val == nil {
		return false // default: show progress
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// progressf prints one progress line unless the context suppresses it.
func progressf(ctx context.Context, format string, args ...any) {
	if shouldSuppressProgress(ctx) {
		return
	}
	fmt.Printf(format, args...)
}
