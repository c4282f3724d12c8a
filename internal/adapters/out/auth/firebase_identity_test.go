package auth

import (
	"context"
	"testing"

	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

func TestRoleClaims(t *testing.T) {
	c := RoleClaims(userdom.Profile{UID: "u1", Role: userdom.RoleCustomer, StoreName: "ignored"})
	if c["role"] != "customer" {
		t.Fatalf("role = %v", c["role"])
	}
	if _, ok := c["storeName"]; ok {
		t.Fatalf("customer claims carry storeName")
	}

	m := RoleClaims(userdom.Profile{UID: "u2", Role: userdom.RoleStoreManager, StoreName: "A", Approved: true})
	if m["storeName"] != "A" || m["approved"] != true {
		t.Fatalf("manager claims = %v", m)
	}
}

func TestNilClientErrors(t *testing.T) {
	f := NewFirebaseIdentity(nil)
	if _, err := f.CreateAccount(context.Background(), "a@b.c", "secret1"); err == nil {
		t.Fatalf("expected error")
	}
	if err := f.RevokeSessions(context.Background(), "u1"); err == nil {
		t.Fatalf("expected error")
	}
}
