package authz

import (
	"context"

	"github.com/lorekit/lorekit/pkg/session"
)

// sessionCtxKey is the context key for the resolved session.
type sessionCtxKey struct{}

// WithSession stores the resolved session in the context.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext retrieves the resolved session. A missing session
// returns nil, which every consumer treats as anonymous.
func SessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*session.Session)
	return s
}
