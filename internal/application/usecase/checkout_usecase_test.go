package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/memory"
	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

var addr = orderdom.DeliveryAddress{Street: "1 Main St", City: "Cluj", PostalCode: "400000"}

type checkoutFixture struct {
	st       *memory.Store
	cart     *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
	events   *recordingPublisher
}

func newCheckout(t *testing.T) checkoutFixture {
	st := memory.NewStore()
	twoStoreCatalog(t, st)
	ev := &recordingPublisher{}
	return checkoutFixture{
		st:       st,
		cart:     usecase.NewCartUsecaseWithClock(st.Carts(), st.Inventory(), fixedClock{testNow}),
		checkout: usecase.NewCheckoutUsecase(st, st.Ledger(), ev, fixedClock{testNow}, nil),
		events:   ev,
	}
}

func (f checkoutFixture) add(t *testing.T, uid, product, size string, qty int) {
	t.Helper()
	if _, err := f.cart.AddLine(context.Background(), customer(uid), product, size, qty); err != nil {
		t.Fatalf("AddLine %s: %v", product, err)
	}
}

func TestCheckout_SplitsByStore(t *testing.T) {
	f := newCheckout(t)
	ctx := context.Background()
	f.add(t, "u1", "tee", "M", 2)
	f.add(t, "u1", "cap", "One", 1)

	o, err := f.checkout.Checkout(ctx, customer("u1"), addr)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if o.TotalAmount != 25 || len(o.SubOrders) != 2 {
		t.Fatalf("order total=%v subOrders=%d", o.TotalAmount, len(o.SubOrders))
	}
	byStore := map[string]orderdom.SubOrder{}
	for _, so := range o.SubOrders {
		byStore[so.StoreName] = so
	}
	if byStore["A"].TotalAmount != 20 || byStore["B"].TotalAmount != 5 {
		t.Fatalf("sub-order totals: %+v", byStore)
	}
	if byStore["A"].Items[0].Image != "tee1.jpg,tee2.jpg" {
		t.Fatalf("image snapshot = %q", byStore["A"].Items[0].Image)
	}
	if byStore["A"].ID == byStore["B"].ID {
		t.Fatalf("sub-order ids must differ")
	}

	stored, err := f.st.Orders().GetByID(ctx, o.ID)
	if err != nil || stored.CustomerID != "u1" || stored.Status != orderdom.StatusProcessing {
		t.Fatalf("stored order = %+v, %v", stored, err)
	}

	if lines, _ := f.st.Carts().ListByUser(ctx, "u1"); len(lines) != 0 {
		t.Fatalf("cart not cleared: %+v", lines)
	}

	tee, _ := f.st.Inventory().GetByID(ctx, "tee")
	capItem, _ := f.st.Inventory().GetByID(ctx, "cap")
	if tee.Sizes[0].Quantity != 3 || tee.Stock != 3 || capItem.Stock != 2 {
		t.Fatalf("stock after checkout tee=%+v cap=%d", tee.Sizes, capItem.Stock)
	}

	if len(f.events.events) != 1 || f.events.events[0].Kind != usecase.OrderPlaced {
		t.Fatalf("events = %+v", f.events.events)
	}

	rows, _ := f.st.Ledger().StoreSales(ctx, "A", common.TimeRange{})
	if len(rows) != 1 || rows[0].TotalAmount != 20 {
		t.Fatalf("ledger rows = %+v", rows)
	}
}

func TestCheckout_FailureLeavesEverythingUntouched(t *testing.T) {
	f := newCheckout(t)
	ctx := context.Background()
	f.add(t, "u1", "tee", "M", 1)
	f.add(t, "u1", "cap", "One", 4) // only 3 in stock

	_, err := f.checkout.Checkout(ctx, customer("u1"), addr)
	if !errors.Is(err, invdom.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if lines, _ := f.st.Carts().ListByUser(ctx, "u1"); len(lines) != 2 {
		t.Fatalf("cart changed: %+v", lines)
	}
	if orders, _ := f.st.Orders().List(ctx, orderdom.Filter{}); len(orders) != 0 {
		t.Fatalf("order written: %+v", orders)
	}
	tee, _ := f.st.Inventory().GetByID(ctx, "tee")
	if tee.Sizes[0].Quantity != 5 {
		t.Fatalf("tee stock changed: %+v", tee.Sizes)
	}
	if len(f.events.events) != 0 {
		t.Fatalf("events published on failure")
	}
}

func TestCheckout_MissingInventoryAborts(t *testing.T) {
	f := newCheckout(t)
	ctx := context.Background()
	f.add(t, "u1", "tee", "M", 1)
	f.add(t, "u1", "cap", "One", 1)
	if err := f.st.Inventory().Delete(ctx, "cap"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.checkout.Checkout(ctx, customer("u1"), addr); !errors.Is(err, invdom.ErrNotFound) {
		t.Fatalf("expected inventory ErrNotFound, got %v", err)
	}
	if lines, _ := f.st.Carts().ListByUser(ctx, "u1"); len(lines) != 2 {
		t.Fatalf("cart changed: %+v", lines)
	}
}

func TestCheckout_Rejects(t *testing.T) {
	f := newCheckout(t)
	ctx := context.Background()

	if _, err := f.checkout.Checkout(ctx, customer("u1"), addr); !errors.Is(err, orderdom.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	f.add(t, "u1", "tee", "M", 1)
	if _, err := f.checkout.Checkout(ctx, customer("u1"), orderdom.DeliveryAddress{City: "Cluj"}); !errors.Is(err, orderdom.ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
	if _, err := f.checkout.Checkout(ctx, usecase.Session{}, addr); !errors.Is(err, usecase.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
