package catalog

import (
	"testing"

	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
)

func sample() []invdom.Item {
	return []invdom.Item{
		{ID: "1", Category: "Pants", Price: 40, Sizes: []invdom.SizeStock{{Size: "M"}}},
		{ID: "2", Category: "Sweatpants", Price: 25, Sizes: []invdom.SizeStock{{Size: "L"}}},
		{ID: "3", Category: "Jeans", Price: 60, Sizes: []invdom.SizeStock{{Size: "M"}, {Size: "L"}}},
		{ID: "4", Category: "Shirts", Price: 15, Sizes: []invdom.SizeStock{{Size: "M"}}},
		{ID: "5", Category: "Shorts", Price: 20},
	}
}

func ids(items []invdom.Item) string {
	s := ""
	for _, it := range items {
		s += it.ID
	}
	return s
}

func TestApply_PantsAbsorbsSweatpantsAndJeans(t *testing.T) {
	got := Apply(sample(), Filter{Category: "Pants"})
	if ids(got) != "123" {
		t.Fatalf("Pants => %s, want 123", ids(got))
	}
	if got := Apply(sample(), Filter{Category: "jeans"}); ids(got) != "3" {
		t.Fatalf("Jeans => %s, want 3", ids(got))
	}
	if got := Apply(sample(), Filter{Category: "All"}); len(got) != 5 {
		t.Fatalf("All => %d items, want 5", len(got))
	}
}

func TestApply_SizeAndPrice(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want string
	}{
		{"size M", Filter{Size: "m"}, "134"},
		{"range", Filter{MinPrice: 20, MaxPrice: 40}, "125"},
		{"min only", Filter{MinPrice: 41}, "3"},
		{"pants in range", Filter{Category: "Pants", MaxPrice: 30}, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(Apply(sample(), tt.f)); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestApply_Sort(t *testing.T) {
	if got := ids(Apply(sample(), Filter{Sort: common.SortAsc})); got != "45213" {
		t.Fatalf("asc = %s", got)
	}
	if got := ids(Apply(sample(), Filter{Sort: common.SortDesc})); got != "31254" {
		t.Fatalf("desc = %s", got)
	}
	in := sample()
	_ = Apply(in, Filter{Sort: common.SortDesc})
	if ids(in) != "12345" {
		t.Fatalf("input reordered: %s", ids(in))
	}
}
