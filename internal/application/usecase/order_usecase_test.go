package usecase_test

import (
	"context"
	"errors"
	"testing"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

func placedOrder(t *testing.T) (checkoutFixture, *usecase.OrderUsecase, orderdom.Order) {
	f := newCheckout(t)
	f.add(t, "u1", "tee", "M", 2)
	f.add(t, "u1", "cap", "One", 1)
	o, err := f.checkout.Checkout(context.Background(), customer("u1"), addr)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	uc := usecase.NewOrderUsecase(f.st.Orders(), f.st.Ledger(), f.events, fixedClock{testNow})
	return f, uc, o
}

func subFor(o orderdom.Order, store string) orderdom.SubOrder {
	for _, s := range o.SubOrders {
		if s.StoreName == store {
			return s
		}
	}
	return orderdom.SubOrder{}
}

func TestUpdateSubOrderStatus_ParentFollowsAgreement(t *testing.T) {
	f, uc, o := placedOrder(t)
	ctx := context.Background()

	got, err := uc.UpdateSubOrderStatus(ctx, manager("ma", "A"), o.ID, subFor(o, "A").ID, "Shipped")
	if err != nil {
		t.Fatalf("update A: %v", err)
	}
	if got.Status != orderdom.StatusProcessing {
		t.Fatalf("parent changed while sub-orders differ: %q", got.Status)
	}
	if subFor(got, "B").Status != orderdom.StatusProcessing {
		t.Fatalf("B sub-order touched: %+v", subFor(got, "B"))
	}

	got, err = uc.UpdateSubOrderStatus(ctx, manager("mb", "B"), o.ID, subFor(o, "B").ID, "shipped")
	if err != nil {
		t.Fatalf("update B: %v", err)
	}
	if got.Status != orderdom.StatusShipped {
		t.Fatalf("parent = %q, want Shipped", got.Status)
	}

	stored, _ := f.st.Orders().GetByID(ctx, o.ID)
	if stored.Status != orderdom.StatusShipped || subFor(stored, "A").Status != orderdom.StatusShipped {
		t.Fatalf("stored order = %+v", stored)
	}
	if n := len(f.events.events); n != 3 || f.events.events[2].Kind != usecase.SubOrderStatusChanged {
		t.Fatalf("events = %+v", f.events.events)
	}
}

func TestUpdateSubOrderStatus_Authorization(t *testing.T) {
	_, uc, o := placedOrder(t)
	ctx := context.Background()
	subB := subFor(o, "B").ID

	if _, err := uc.UpdateSubOrderStatus(ctx, manager("ma", "A"), o.ID, subB, "Shipped"); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other store, got %v", err)
	}
	pending := manager("mb", "B")
	pending.Approved = false
	if _, err := uc.UpdateSubOrderStatus(ctx, pending, o.ID, subB, "Shipped"); !errors.Is(err, usecase.ErrNotApproved) {
		t.Fatalf("expected ErrNotApproved, got %v", err)
	}
	if _, err := uc.UpdateSubOrderStatus(ctx, customer("u1"), o.ID, subB, "Shipped"); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for customer, got %v", err)
	}
	if _, err := uc.UpdateSubOrderStatus(ctx, manager("mb", "B"), o.ID, subB, "Lost"); !errors.Is(err, orderdom.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := uc.UpdateSubOrderStatus(ctx, manager("mb", "B"), o.ID, "nope", "Shipped"); !errors.Is(err, orderdom.ErrSubOrderNotFound) {
		t.Fatalf("expected ErrSubOrderNotFound, got %v", err)
	}
	if _, err := uc.UpdateSubOrderStatus(ctx, manager("mb", "B"), "missing", subB, "Shipped"); !errors.Is(err, orderdom.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderListings(t *testing.T) {
	_, uc, o := placedOrder(t)
	ctx := context.Background()

	mine, err := uc.ListForCustomer(ctx, customer("u1"), "")
	if err != nil || len(mine) != 1 || mine[0].ID != o.ID {
		t.Fatalf("ListForCustomer = %+v, %v", mine, err)
	}
	if none, _ := uc.ListForCustomer(ctx, customer("u1"), "Delivered"); len(none) != 0 {
		t.Fatalf("status filter ignored: %+v", none)
	}
	if other, _ := uc.ListForCustomer(ctx, customer("u2"), "all"); len(other) != 0 {
		t.Fatalf("other customer sees orders: %+v", other)
	}
	if _, err := uc.ListForCustomer(ctx, customer("u1"), "bogus"); !errors.Is(err, usecase.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	views, err := uc.ListForStore(ctx, manager("ma", "A"), "Processing")
	if err != nil || len(views) != 1 || views[0].StoreName != "A" || views[0].CustomerID != "u1" {
		t.Fatalf("ListForStore = %+v, %v", views, err)
	}
	if views[0].DeliveryAddress.City != "Cluj" {
		t.Fatalf("missing parent context: %+v", views[0])
	}

	if _, err := uc.Get(ctx, manager("mc", "C"), o.ID); !errors.Is(err, orderdom.ErrNotFound) {
		t.Fatalf("unrelated manager should not see order, got %v", err)
	}
	if _, err := uc.Get(ctx, manager("mb", "B"), o.ID); err != nil {
		t.Fatalf("store manager Get: %v", err)
	}
}
