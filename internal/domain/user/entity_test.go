package user

import (
	"errors"
	"testing"
	"time"
)

func TestNewProfile_Approval(t *testing.T) {
	now := time.Now()

	c, err := NewProfile("u1", "Buyer@Example.com", RoleCustomer, "ignored", "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Approved || c.StoreName != "" || c.Email != "buyer@example.com" {
		t.Fatalf("customer profile = %+v", c)
	}

	m, err := NewProfile("u2", "shop@example.com", RoleStoreManager, " Denim Co ", "0700", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Approved || !m.PendingApproval() || m.StoreName != "Denim Co" {
		t.Fatalf("manager profile = %+v", m)
	}
}

func TestNewProfile_Invalid(t *testing.T) {
	now := time.Now()
	if _, err := NewProfile("u", "not-an-email", RoleCustomer, "", "", now); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := NewProfile("u", "a@b.co", RoleStoreManager, "", "", now); !errors.Is(err, ErrStoreNameMissing) {
		t.Fatalf("expected ErrStoreNameMissing, got %v", err)
	}
	if _, err := NewProfile("", "a@b.co", RoleCustomer, "", "", now); !errors.Is(err, ErrInvalidUID) {
		t.Fatalf("expected ErrInvalidUID, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("storemanager")
	if err != nil || r != RoleStoreManager {
		t.Fatalf("ParseRole = %q, %v", r, err)
	}
	if _, err := ParseRole("admin"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
