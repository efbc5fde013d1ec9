package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const orgIDKey contextKey = "org_id"

// ErrOrgIDNotFound is returned when no OrgID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrOrgIDNotFound = errors.New("org_id not found in context")

// OrgIDFromCtx extracts the authenticated organization ID from the request
// context. Org IDs are opaque identity-provider strings (e.g. "org_2x9…"),
// not UUIDs. Returns ErrOrgIDNotFound on an unauthenticated request.
func OrgIDFromCtx(ctx context.Context) (string, error) {
	orgID, ok := ctx.Value(orgIDKey).(string)
	if !ok || orgID == "" {
		return "", ErrOrgIDNotFound
	}
	return orgID, nil
}

// WithOrgID returns a new context with the given OrgID attached.
// Used by authentication middleware after validating the session.
func WithOrgID(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, orgIDKey, orgID)
}
