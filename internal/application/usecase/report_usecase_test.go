package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
)

func TestReportUsecase_Sales(t *testing.T) {
	f := newCheckout(t)
	ctx := context.Background()
	f.add(t, "u1", "tee", "M", 2)
	f.add(t, "u1", "cap", "One", 1)
	if _, err := f.checkout.Checkout(ctx, customer("u1"), addr); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	f.add(t, "u2", "tee", "M", 1)
	if _, err := f.checkout.Checkout(ctx, customer("u2"), addr); err != nil {
		t.Fatalf("Checkout 2: %v", err)
	}

	uc := usecase.NewReportUsecase(f.st.Ledger(), f.st.Inventory(), fixedClock{testNow.Add(time.Hour)})

	rep, err := uc.Sales(ctx, manager("ma", "A"), common.TimeRange{From: testNow.Add(-time.Hour)})
	if err != nil {
		t.Fatalf("Sales: %v", err)
	}
	if rep.SubOrders != 2 || rep.Revenue != 30 {
		t.Fatalf("report A = %+v", rep)
	}

	empty, err := uc.Sales(ctx, manager("ma", "A"), common.TimeRange{From: testNow.Add(time.Minute)})
	if err != nil || empty.SubOrders != 0 || empty.Revenue != 0 {
		t.Fatalf("out-of-range report = %+v, %v", empty, err)
	}

	if _, err := uc.Sales(ctx, manager("ma", "A"), common.TimeRange{From: testNow, To: testNow.Add(-time.Hour)}); !errors.Is(err, common.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestReportUsecase_Inventory(t *testing.T) {
	f := newCheckout(t)
	uc := usecase.NewReportUsecase(f.st.Ledger(), f.st.Inventory(), fixedClock{testNow})

	rep, err := uc.Inventory(context.Background(), manager("ma", "A"))
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	if len(rep.Items) != 1 || rep.TotalUnits != 5 || rep.StockValue != 50 {
		t.Fatalf("inventory report = %+v", rep)
	}
}
