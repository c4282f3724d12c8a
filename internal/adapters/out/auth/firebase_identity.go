// internal/adapters/out/auth/firebase_identity.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// FirebaseIdentity manages Firebase Auth accounts on behalf of the API.
type FirebaseIdentity struct {
	Client *fbauth.Client
}

var _ usecase.IdentityProvider = (*FirebaseIdentity)(nil)

func NewFirebaseIdentity(c *fbauth.Client) *FirebaseIdentity {
	return &FirebaseIdentity{Client: c}
}

func (f *FirebaseIdentity) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if f == nil || f.Client == nil {
		return "", errors.New("firebase_identity: auth client is nil")
	}
	params := (&fbauth.UserToCreate{}).
		Email(strings.ToLower(strings.TrimSpace(email))).
		Password(password)

	rec, err := f.Client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", userdom.ErrEmailTaken
		}
		return "", fmt.Errorf("firebase_identity: create user: %w", err)
	}
	log.Printf("[firebase_identity] created uid=%s", rec.UID)
	return rec.UID, nil
}

func (f *FirebaseIdentity) DeleteAccount(ctx context.Context, uid string) error {
	if f == nil || f.Client == nil {
		return errors.New("firebase_identity: auth client is nil")
	}
	if err := f.Client.DeleteUser(ctx, uid); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil
		}
		return fmt.Errorf("firebase_identity: delete user: %w", err)
	}
	return nil
}

func (f *FirebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	if f == nil || f.Client == nil {
		return errors.New("firebase_identity: auth client is nil")
	}
	if err := f.Client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("firebase_identity: revoke tokens: %w", err)
	}
	return nil
}

// SetRoleClaims mirrors role, storeName and approval into custom claims so
// clients can route without a profile read.
func (f *FirebaseIdentity) SetRoleClaims(ctx context.Context, p userdom.Profile) error {
	if f == nil || f.Client == nil {
		return errors.New("firebase_identity: auth client is nil")
	}
	if err := f.Client.SetCustomUserClaims(ctx, p.UID, RoleClaims(p)); err != nil {
		return fmt.Errorf("firebase_identity: set claims: %w", err)
	}
	return nil
}

func RoleClaims(p userdom.Profile) map[string]interface{} {
	claims := map[string]interface{}{
		"role": string(p.Role),
	}
	if p.Role == userdom.RoleStoreManager {
		claims["storeName"] = p.StoreName
		claims["approved"] = p.Approved
	}
	return claims
}
