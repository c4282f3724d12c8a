package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/tealeg/xlsx"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrUnauthenticated, http.StatusUnauthorized},
		{usecase.ErrNotApproved, http.StatusForbidden},
		{fmt.Errorf("wrap: %w", orderdom.ErrSubOrderNotFound), http.StatusNotFound},
		{cartdom.ErrDuplicateLine, http.StatusConflict},
		{invdom.ErrInsufficientStock, http.StatusConflict},
		{orderdom.ErrEmptyCart, http.StatusUnprocessableEntity},
		{errors.Join(invdom.ErrInvalidItem, errors.New("name is required")), http.StatusBadRequest},
		{usecase.ErrNotConfigured, http.StatusServiceUnavailable},
		{errors.New("datastore exploded"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := errorStatus(c.err); got != c.want {
			t.Fatalf("errorStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestParseTimeParam(t *testing.T) {
	got, err := parseTimeParam("2024-03-10", true)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := time.Date(2024, 3, 10, 23, 59, 59, 999999999, time.UTC); !got.Equal(want) {
		t.Fatalf("end of day = %v", got)
	}
	if got, _ := parseTimeParam("", false); !got.IsZero() {
		t.Fatalf("empty should be zero")
	}
	if _, err := parseTimeParam("10/03/2024", false); err == nil {
		t.Fatalf("bad date accepted")
	}
}

func TestPathSegments(t *testing.T) {
	segs := pathSegments("/manager/orders/o1/sub-orders/s1", "/manager/orders")
	if len(segs) != 3 || segs[0] != "o1" || segs[2] != "s1" {
		t.Fatalf("segs = %v", segs)
	}
	if pathSegments("/manager/orders", "/manager/orders") != nil {
		t.Fatalf("root should have no segments")
	}
}

func TestInventoryReportXLSX(t *testing.T) {
	b, err := InventoryReportXLSX(usecase.InventoryReport{
		StoreName: "A",
		Items: []usecase.InventoryReportRow{
			{ID: "tee", Name: "Tee", Category: "Shirts", Price: 10, Stock: 5, Sizes: []string{"S", "M"}},
		},
		TotalUnits: 5,
		StockValue: 50,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := xlsx.OpenBinary(b)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rows := f.Sheets[0].Rows
	if rows[0].Cells[0].Value != "ID" || rows[1].Cells[1].Value != "Tee" || rows[1].Cells[5].Value != "S,M" {
		t.Fatalf("unexpected cells")
	}
}
