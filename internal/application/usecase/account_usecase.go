// internal/application/usecase/account_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// minPasswordLength matches the identity provider's own minimum.
const minPasswordLength = 6

// AccountUsecase covers registration, the caller's own account and the
// owner's approval of store managers.
type AccountUsecase struct {
	users    userdom.Repository
	identity IdentityProvider
	notifier AccountNotifier
	clock    Clock
}

func NewAccountUsecase(users userdom.Repository, identity IdentityProvider, notifier AccountNotifier, clock Clock) *AccountUsecase {
	return &AccountUsecase{users: users, identity: identity, notifier: notifier, clock: clockOrSystem(clock)}
}

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	StoreName   string `json:"storeName"`
	ContactInfo string `json:"contactInfo"`
}

// Register creates the identity account and the profile. Owners cannot
// self-register. If the profile cannot be saved the account is removed
// again.
func (u *AccountUsecase) Register(ctx context.Context, in RegisterInput) (userdom.Profile, error) {
	if u.identity == nil {
		return userdom.Profile{}, ErrNotConfigured
	}
	role := userdom.RoleCustomer
	if strings.TrimSpace(in.Role) != "" {
		r, err := userdom.ParseRole(in.Role)
		if err != nil {
			return userdom.Profile{}, err
		}
		role = r
	}
	if role == userdom.RoleOwner {
		return userdom.Profile{}, ErrForbidden
	}
	if len(in.Password) < minPasswordLength {
		return userdom.Profile{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidArgument, minPasswordLength)
	}

	now := u.clock.Now()
	// validate before touching the identity provider
	if _, err := userdom.NewProfile("pending", in.Email, role, in.StoreName, in.ContactInfo, now); err != nil {
		return userdom.Profile{}, err
	}

	uid, err := u.identity.CreateAccount(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return userdom.Profile{}, err
	}
	p, err := userdom.NewProfile(uid, in.Email, role, in.StoreName, in.ContactInfo, now)
	if err != nil {
		return userdom.Profile{}, err
	}
	if err := u.users.Save(ctx, p); err != nil {
		if derr := u.identity.DeleteAccount(ctx, uid); derr != nil {
			log.Printf("[account_usecase] WARN: rollback delete account uid=%s err=%v", uid, derr)
		}
		return userdom.Profile{}, err
	}
	if err := u.identity.SetRoleClaims(ctx, p); err != nil {
		log.Printf("[account_usecase] WARN: set role claims uid=%s err=%v", uid, err)
	}

	log.Printf("[account_usecase] registered uid=%s role=%s approved=%t", p.UID, p.Role, p.Approved)
	return p, nil
}

// ResolveSession loads the profile behind a verified uid.
func (u *AccountUsecase) ResolveSession(ctx context.Context, uid, email string) (Session, error) {
	p, err := u.users.GetByUID(ctx, strings.TrimSpace(uid))
	if err != nil {
		return Session{}, err
	}
	s := SessionFromProfile(p)
	if e := strings.TrimSpace(email); e != "" {
		s.Email = e
	}
	return s, nil
}

func (u *AccountUsecase) Profile(ctx context.Context, s Session) (userdom.Profile, error) {
	if err := s.signedIn(); err != nil {
		return userdom.Profile{}, err
	}
	return u.users.GetByUID(ctx, s.UID)
}

// DeleteSelf removes the caller's identity account and profile.
func (u *AccountUsecase) DeleteSelf(ctx context.Context, s Session) error {
	if err := s.signedIn(); err != nil {
		return err
	}
	if u.identity == nil {
		return ErrNotConfigured
	}
	if err := u.identity.DeleteAccount(ctx, s.UID); err != nil {
		return err
	}
	if err := u.users.Delete(ctx, s.UID); err != nil && !errors.Is(err, userdom.ErrNotFound) {
		return err
	}
	log.Printf("[account_usecase] deleted uid=%s", s.UID)
	return nil
}

// SignOut revokes the caller's refresh tokens on every device.
func (u *AccountUsecase) SignOut(ctx context.Context, s Session) error {
	if err := s.signedIn(); err != nil {
		return err
	}
	if u.identity == nil {
		return ErrNotConfigured
	}
	return u.identity.RevokeSessions(ctx, s.UID)
}

func (u *AccountUsecase) ListPendingManagers(ctx context.Context, s Session) ([]userdom.Profile, error) {
	if err := s.owner(); err != nil {
		return nil, err
	}
	return u.users.ListPendingManagers(ctx)
}

// ApproveManager marks a store manager approved. Approving twice is a no-op.
func (u *AccountUsecase) ApproveManager(ctx context.Context, s Session, uid string) (userdom.Profile, error) {
	if err := s.owner(); err != nil {
		return userdom.Profile{}, err
	}
	p, err := u.users.GetByUID(ctx, strings.TrimSpace(uid))
	if err != nil {
		return userdom.Profile{}, err
	}
	if p.Role != userdom.RoleStoreManager {
		return userdom.Profile{}, fmt.Errorf("%w: %s is not a store manager", ErrInvalidArgument, p.UID)
	}
	if p.Approved {
		return p, nil
	}

	p.Approved = true
	p.UpdatedAt = u.clock.Now().UTC()
	if err := u.users.Save(ctx, p); err != nil {
		return userdom.Profile{}, err
	}
	if u.identity != nil {
		if err := u.identity.SetRoleClaims(ctx, p); err != nil {
			log.Printf("[account_usecase] WARN: set role claims uid=%s err=%v", p.UID, err)
		}
	}
	if u.notifier != nil {
		if err := u.notifier.NotifyManagerApproved(ctx, p); err != nil {
			log.Printf("[account_usecase] WARN: approval mail uid=%s err=%v", p.UID, err)
		}
	}
	log.Printf("[account_usecase] approved manager uid=%s store=%s by=%s", p.UID, p.StoreName, s.UID)
	return p, nil
}
