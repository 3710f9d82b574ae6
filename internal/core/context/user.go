// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// UserContext contains the authenticated site owner.
// Every scoped read in the content subsystem derives its owner id from here;
// there is no implicit default identity.
type UserContext struct {
	UserID      string
	Email       string
	DisplayName string
	SessionID   string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}
