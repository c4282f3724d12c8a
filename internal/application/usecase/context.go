// internal/application/usecase/context.go
package usecase

import (
	"context"
	"strings"

	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// Session is the signed-in caller as resolved by the auth middleware:
// verified uid/email from the ID token, role and store from the profile.
// StoreName is only meaningful for store managers.
type Session struct {
	UID       string       `json:"uid"`
	Email     string       `json:"email"`
	Role      userdom.Role `json:"role"`
	StoreName string       `json:"storeName,omitempty"`
	Approved  bool         `json:"approved"`
}

func SessionFromProfile(p userdom.Profile) Session {
	return Session{
		UID:       p.UID,
		Email:     p.Email,
		Role:      p.Role,
		StoreName: p.StoreName,
		Approved:  p.Approved,
	}
}

type ctxKey struct{ name string }

var ctxKeySession = ctxKey{name: "session"}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKeySession, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKeySession).(Session)
	if !ok || strings.TrimSpace(s.UID) == "" {
		return Session{}, false
	}
	return s, true
}

func (s Session) signedIn() error {
	if strings.TrimSpace(s.UID) == "" {
		return ErrUnauthenticated
	}
	return nil
}

// manager requires an approved store manager with a store.
func (s Session) manager() error {
	if err := s.signedIn(); err != nil {
		return err
	}
	if s.Role != userdom.RoleStoreManager {
		return ErrForbidden
	}
	if !s.Approved {
		return ErrNotApproved
	}
	if strings.TrimSpace(s.StoreName) == "" {
		return ErrForbidden
	}
	return nil
}

func (s Session) owner() error {
	if err := s.signedIn(); err != nil {
		return err
	}
	if s.Role != userdom.RoleOwner {
		return ErrForbidden
	}
	return nil
}

// IsManager reports whether s may use store manager endpoints.
func (s Session) IsManager() bool { return s.manager() == nil }

func (s Session) IsOwner() bool { return s.owner() == nil }
