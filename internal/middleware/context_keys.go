package middleware

import (
	"context"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	portssvc "github.com/SscSPs/idea_board_app/internal/core/ports/services"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the verified user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func userIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// ContextIdentityResolver resolves the caller from the id AuthMiddleware attached to the request context.
type ContextIdentityResolver struct{}

// NewContextIdentityResolver creates a resolver reading identities placed by AuthMiddleware.
func NewContextIdentityResolver() *ContextIdentityResolver {
	return &ContextIdentityResolver{}
}

var _ portssvc.IdentityResolver = (*ContextIdentityResolver)(nil)

// ResolveCallerID returns the verified user id or apperrors.ErrUnauthenticated.
func (r *ContextIdentityResolver) ResolveCallerID(ctx context.Context) (string, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return "", apperrors.ErrUnauthenticated
	}
	return userID, nil
}
