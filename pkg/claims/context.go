package claims

import "context"

// claimsCtxKey is the context key for parsed claims.
type claimsCtxKey struct{}

// WithClaims stores parsed claims in the context.
func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, c)
}

// FromContext retrieves parsed claims from the context.
func FromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey{}).(Claims)
	return c, ok
}
