// internal/domain/user/entity.go
package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Role decides which screens and endpoints a user may reach.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleStoreManager Role = "storeManager"
	RoleOwner        Role = "owner"
)

var (
	ErrNotFound         = errors.New("user: not found")
	ErrInvalidUID       = errors.New("user: invalid uid")
	ErrInvalidEmail     = errors.New("user: invalid email")
	ErrInvalidRole      = errors.New("user: invalid role")
	ErrStoreNameMissing = errors.New("user: store managers need a storeName")
	ErrEmailTaken       = errors.New("user: email already registered")
)

func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	for _, r := range []Role{RoleCustomer, RoleStoreManager, RoleOwner} {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Profile is the "users" document keyed by the Firebase uid.
type Profile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	StoreName   string    `json:"storeName,omitempty"`
	ContactInfo string    `json:"contactInfo,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProfile builds a profile for a freshly registered account.
// Store managers wait for owner approval; everyone else is approved.
func NewProfile(uid, email string, role Role, storeName, contactInfo string, now time.Time) (Profile, error) {
	p := Profile{
		UID:         strings.TrimSpace(uid),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Role:        role,
		StoreName:   strings.TrimSpace(storeName),
		ContactInfo: strings.TrimSpace(contactInfo),
		Approved:    role != RoleStoreManager,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	if p.Role != RoleStoreManager {
		p.StoreName = ""
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p Profile) Validate() error {
	if p.UID == "" {
		return ErrInvalidUID
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return ErrInvalidEmail
	}
	if _, err := ParseRole(string(p.Role)); err != nil {
		return err
	}
	if p.Role == RoleStoreManager && p.StoreName == "" {
		return ErrStoreNameMissing
	}
	return nil
}

// PendingApproval is true for store managers the owner has not approved yet.
func (p Profile) PendingApproval() bool {
	return p.Role == RoleStoreManager && !p.Approved
}
