package inventory

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecrement_TrackedSizes(t *testing.T) {
	it := Item{
		ID:           "p1",
		SizesTracked: true,
		Sizes:        []SizeStock{{Size: "S", Quantity: 2}, {Size: "M", Quantity: 5}},
		Stock:        7,
	}
	if err := it.Decrement("m", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Sizes[1].Quantity != 2 || it.Stock != 4 {
		t.Fatalf("after decrement sizes=%v stock=%d", it.Sizes, it.Stock)
	}

	before := it
	if err := it.Decrement("S", 3); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if !reflect.DeepEqual(before, it) {
		t.Fatalf("item changed on failed decrement")
	}

	if err := it.Decrement("XL", 1); !errors.Is(err, ErrSizeNotFound) {
		t.Fatalf("expected ErrSizeNotFound, got %v", err)
	}
}

func TestDecrement_LegacySizesUseStock(t *testing.T) {
	it := Item{ID: "p2", Sizes: ParseLegacySizes("S, M ,L"), Stock: 3}
	if got := it.SizeNames(); !reflect.DeepEqual(got, []string{"S", "M", "L"}) {
		t.Fatalf("sizes = %v", got)
	}
	if err := it.Decrement("M", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Stock != 1 {
		t.Fatalf("stock = %d, want 1", it.Stock)
	}
	if err := it.Decrement("L", 2); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestNormalize_RecomputesStock(t *testing.T) {
	it := Item{
		Name:         " Jeans ",
		Images:       "a.jpg, ,b.jpg",
		SizesTracked: true,
		Sizes:        []SizeStock{{Size: "30", Quantity: 4}, {Size: " ", Quantity: 9}, {Size: "32", Quantity: 1}},
	}
	it.Normalize()
	if it.Name != "Jeans" || it.Stock != 5 || len(it.Sizes) != 2 {
		t.Fatalf("normalized = %+v", it)
	}
	if it.Images != "a.jpg,b.jpg" || it.FirstImage() != "a.jpg" {
		t.Fatalf("images = %q", it.Images)
	}
}

func TestValidate(t *testing.T) {
	ok := Item{Name: "Tee", Category: "Shirts", StoreName: "A", Price: 10}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := ok
	bad.Price = -1
	if err := bad.Validate(); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}
