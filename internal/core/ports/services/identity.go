package services

import "context"

// IdentityResolver returns the verified id of the user making the request.
// Implementations return apperrors.ErrUnauthenticated when no identity is attached.
type IdentityResolver interface {
	ResolveCallerID(ctx context.Context) (string, error)
}
