// Package authz holds the authorization policy: pure decisions over a
// principal and a record owner, with no store or framework dependency.
package authz

import (
	"context"
	"errors"
)

var ErrForbidden = errors.New("forbidden")

// Principal is an authenticated identity resolved by the auth middleware.
type Principal struct {
	UserID     string
	Privileged bool
}

// CanActOn reports whether p may read, mutate or delete a record owned by
// ownerID. Payment ownership is transitive: callers pass the parent loan's
// owner.
func CanActOn(p Principal, ownerID string) bool {
	return p.Privileged || p.UserID == ownerID
}

// ListScope returns the owner filter for list queries: the caller's own id,
// or empty (all owners) for privileged principals.
func ListScope(p Principal) string {
	if p.Privileged {
		return ""
	}
	return p.UserID
}

// ResolveOwner decides who a new record belongs to. A privileged principal
// may create on behalf of another owner; everyone else gets themselves,
// whatever they asked for.
func ResolveOwner(p Principal, requested string) string {
	if p.Privileged && requested != "" {
		return requested
	}
	return p.UserID
}

type ctxKey struct{}

// WithPrincipal stores p on ctx for the duration of a request.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom retrieves the principal stored by the auth middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}
