package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/memory"
	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
)

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return "id" + strings.Repeat("x", g.n)
}

func newInventory() (*usecase.InventoryUsecase, *memory.Store) {
	st := memory.NewStore()
	return usecase.NewInventoryUsecase(st.Inventory(), st.Images(), fixedClock{testNow}, &seqIDs{}), st
}

func TestInventoryUsecase_CRUDScopedToStore(t *testing.T) {
	uc, _ := newInventory()
	ctx := context.Background()
	a := manager("ma", "A")

	it, err := uc.Create(ctx, a, usecase.ItemInput{
		Name: "Jeans", Category: "Jeans", Price: 60,
		Sizes: []invdom.SizeStock{{Size: "30", Quantity: 2}, {Size: "32", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if it.StoreName != "A" || it.Stock != 5 || !it.SizesTracked {
		t.Fatalf("created = %+v", it)
	}

	if _, err := uc.Update(ctx, manager("mb", "B"), it.ID, usecase.ItemInput{Name: "x", Category: "y"}); !errors.Is(err, invdom.ErrNotFound) {
		t.Fatalf("other store update: %v", err)
	}
	if err := uc.Delete(ctx, manager("mb", "B"), it.ID); !errors.Is(err, invdom.ErrNotFound) {
		t.Fatalf("other store delete: %v", err)
	}

	upd, err := uc.Update(ctx, a, it.ID, usecase.ItemInput{Name: "Slim Jeans", Category: "Jeans", Price: 55, Stock: 7})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.SizesTracked || upd.Stock != 7 || upd.Price != 55 {
		t.Fatalf("updated = %+v", upd)
	}

	own, _ := uc.ListOwn(ctx, a)
	if len(own) != 1 {
		t.Fatalf("ListOwn = %+v", own)
	}
	if other, _ := uc.ListOwn(ctx, manager("mb", "B")); len(other) != 0 {
		t.Fatalf("B sees A's items: %+v", other)
	}

	if _, err := uc.Create(ctx, customer("u1"), usecase.ItemInput{Name: "x", Category: "y"}); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("customer create: %v", err)
	}
	if _, err := uc.Create(ctx, a, usecase.ItemInput{Name: "x", Category: "y", Price: -1}); !errors.Is(err, invdom.ErrInvalidItem) {
		t.Fatalf("invalid create: %v", err)
	}

	if err := uc.Delete(ctx, a, it.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestInventoryUsecase_UploadImage(t *testing.T) {
	uc, st := newInventory()
	ctx := context.Background()
	a := manager("ma", "A")

	it, err := uc.Create(ctx, a, usecase.ItemInput{Name: "Tee", Category: "Shirts", Price: 10, Stock: 1, Images: []string{"old.jpg"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := uc.UploadImage(ctx, a, it.ID, "image/png", strings.NewReader("PNGDATA"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	imgs := got.ImageList()
	if len(imgs) != 2 || imgs[0] != "old.jpg" || !strings.HasPrefix(imgs[1], "memory://images/inventory/"+it.ID+"/") {
		t.Fatalf("images = %v", imgs)
	}
	obj := strings.TrimPrefix(imgs[1], "memory://images/")
	if b, ok := st.Images().Object(obj); !ok || string(b) != "PNGDATA" {
		t.Fatalf("object %s not stored", obj)
	}

	if _, err := uc.UploadImage(ctx, a, it.ID, "application/pdf", strings.NewReader("x")); !errors.Is(err, usecase.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
