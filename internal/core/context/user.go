package appctx

import "context"

// UserContext identifies the authenticated operator for the request.
type UserContext struct {
	Username string
	TokenID  string
}

type userKey struct{}

// WithUser attaches the operator identity to the context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser returns the operator identity from the context, or nil.
func GetUser(ctx context.Context) *UserContext {
	if u, ok := ctx.Value(userKey{}).(*UserContext); ok {
		return u
	}
	return nil
}
