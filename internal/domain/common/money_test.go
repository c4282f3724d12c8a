package common

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLineTotal_AvoidsFloatDrift(t *testing.T) {
	sum := decimal.Zero
	for i := 0; i < 10; i++ {
		sum = sum.Add(LineTotal(0.1, 1))
	}
	if got := ToAmount(sum); got != 1.0 {
		t.Fatalf("sum = %v, want 1.0", got)
	}
	if got := ToAmount(LineTotal(19.99, 3)); got != 59.97 {
		t.Fatalf("19.99*3 = %v, want 59.97", got)
	}
}

func TestParseSortOrder(t *testing.T) {
	cases := map[string]SortOrder{
		"":           SortNone,
		"price_asc":  SortAsc,
		"DESC":       SortDesc,
		"price_desc": SortDesc,
		"random":     SortNone,
	}
	for in, want := range cases {
		if got := ParseSortOrder(in); got != want {
			t.Fatalf("ParseSortOrder(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTimeRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	r := TimeRange{From: from, To: to}
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(from) || !r.Contains(to) {
		t.Fatalf("bounds should be inclusive")
	}
	if r.Contains(to.Add(time.Second)) {
		t.Fatalf("time after To should be excluded")
	}
	if err := (TimeRange{From: to, To: from}).Validate(); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if !(TimeRange{}).Contains(from) {
		t.Fatalf("zero range should be unbounded")
	}
}
