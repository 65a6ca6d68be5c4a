// Package session carries the authenticated identity between screens and requests.
// A Session is only a claim: consumers re-fetch the identity row by IdentityID before trusting it.
package session

import (
	"context"
	"hotelbook/shared/constant"
)

type contextKey struct{}

type Session struct {
	IdentityID string `json:"identity_id"`
	Role       string `json:"role"`
}

func New(identityID, role string) *Session {
	return &Session{IdentityID: identityID, Role: role}
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == constant.RoleAdmin
}

func (s *Session) IsUser() bool {
	return s != nil && s.Role == constant.RoleUser
}

func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session stored on ctx, or nil when the request is anonymous.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(contextKey{}).(*Session)
	if sess == nil || sess.IdentityID == "" {
		return nil
	}

	return sess
}

// Actor names who performs a write for audit columns.
func Actor(ctx context.Context) string {
	if sess := FromContext(ctx); sess != nil {
		return sess.IdentityID
	}

	return constant.ContextGuest
}
