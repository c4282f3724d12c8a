package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/memory"
	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

type recordingNotifier struct{ approved []string }

func (n *recordingNotifier) NotifyManagerApproved(_ context.Context, p userdom.Profile) error {
	n.approved = append(n.approved, p.UID)
	return nil
}

func newAccounts() (*usecase.AccountUsecase, *memory.Store, *recordingNotifier) {
	st := memory.NewStore()
	n := &recordingNotifier{}
	return usecase.NewAccountUsecase(st.Users(), st.Identity(), n, fixedClock{testNow}), st, n
}

func TestRegisterAndApproveManager(t *testing.T) {
	uc, st, n := newAccounts()
	ctx := context.Background()

	p, err := uc.Register(ctx, usecase.RegisterInput{
		Email: "shop@example.com", Password: "secret1", Role: "storeManager", StoreName: "Denim Co",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.Approved || p.Role != userdom.RoleStoreManager {
		t.Fatalf("profile = %+v", p)
	}

	owner := usecase.Session{UID: "owner-1", Role: userdom.RoleOwner, Approved: true}
	pending, err := uc.ListPendingManagers(ctx, owner)
	if err != nil || len(pending) != 1 || pending[0].UID != p.UID {
		t.Fatalf("pending = %+v, %v", pending, err)
	}
	if _, err := uc.ListPendingManagers(ctx, customer("u1")); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	approved, err := uc.ApproveManager(ctx, owner, p.UID)
	if err != nil || !approved.Approved {
		t.Fatalf("ApproveManager = %+v, %v", approved, err)
	}
	if len(n.approved) != 1 {
		t.Fatalf("approval notification not sent")
	}
	if claims := st.Identity().Claims(p.UID); claims["approved"] != true || claims["storeName"] != "Denim Co" {
		t.Fatalf("claims = %+v", claims)
	}

	s, err := uc.ResolveSession(ctx, p.UID, "")
	if err != nil || !s.IsManager() || s.StoreName != "Denim Co" {
		t.Fatalf("session = %+v, %v", s, err)
	}
	if pending, _ := uc.ListPendingManagers(ctx, owner); len(pending) != 0 {
		t.Fatalf("still pending: %+v", pending)
	}
}

func TestRegister_Rejects(t *testing.T) {
	uc, _, _ := newAccounts()
	ctx := context.Background()

	if _, err := uc.Register(ctx, usecase.RegisterInput{Email: "o@example.com", Password: "secret1", Role: "owner"}); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("owner self-registration: %v", err)
	}
	if _, err := uc.Register(ctx, usecase.RegisterInput{Email: "c@example.com", Password: "123"}); !errors.Is(err, usecase.ErrInvalidArgument) {
		t.Fatalf("short password: %v", err)
	}
	if _, err := uc.Register(ctx, usecase.RegisterInput{Email: "m@example.com", Password: "secret1", Role: "storeManager"}); !errors.Is(err, userdom.ErrStoreNameMissing) {
		t.Fatalf("manager without store: %v", err)
	}
	if _, err := uc.Register(ctx, usecase.RegisterInput{Email: "c@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("customer: %v", err)
	}
	if _, err := uc.Register(ctx, usecase.RegisterInput{Email: "C@example.com", Password: "secret1"}); !errors.Is(err, userdom.ErrEmailTaken) {
		t.Fatalf("duplicate email: %v", err)
	}
}

func TestDeleteSelf(t *testing.T) {
	uc, st, _ := newAccounts()
	ctx := context.Background()

	p, err := uc.Register(ctx, usecase.RegisterInput{Email: "c@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	s := usecase.SessionFromProfile(p)
	if err := uc.DeleteSelf(ctx, s); err != nil {
		t.Fatalf("DeleteSelf: %v", err)
	}
	if _, err := st.Users().GetByUID(ctx, p.UID); !errors.Is(err, userdom.ErrNotFound) {
		t.Fatalf("profile still present: %v", err)
	}
	if _, err := st.Identity().VerifyIDToken(ctx, p.UID); err == nil {
		t.Fatalf("account still verifies")
	}
}
