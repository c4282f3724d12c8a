// internal/application/query/catalog/filter.go
package catalog

import (
	"math"
	"sort"
	"strings"

	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
)

// categoryAliases lists the categories a selected category also covers.
var categoryAliases = map[string][]string{
	"pants": {"pants", "sweatpants", "jeans"},
}

// Filter is the catalog screen's filter bar. Zero values mean "any".
type Filter struct {
	Category  string
	Size      string
	StoreName string
	MinPrice  float64
	// MaxPrice <= 0 means unbounded.
	MaxPrice float64
	Sort     common.SortOrder
}

// CategoryMatches reports whether an item category is shown when
// selected is chosen. "Pants" also shows "Sweatpants" and "Jeans".
func CategoryMatches(selected, itemCategory string) bool {
	selected = strings.ToLower(strings.TrimSpace(selected))
	if selected == "" || selected == "all" {
		return true
	}
	cat := strings.ToLower(strings.TrimSpace(itemCategory))
	if aliases, ok := categoryAliases[selected]; ok {
		for _, a := range aliases {
			if a == cat {
				return true
			}
		}
		return false
	}
	return cat == selected
}

func (f Filter) maxPrice() float64 {
	if f.MaxPrice <= 0 {
		return math.Inf(1)
	}
	return f.MaxPrice
}

func (f Filter) match(it invdom.Item) bool {
	if !CategoryMatches(f.Category, it.Category) {
		return false
	}
	if s := strings.TrimSpace(f.StoreName); s != "" && !strings.EqualFold(s, it.StoreName) {
		return false
	}
	if s := strings.TrimSpace(f.Size); s != "" && !it.HasSize(s) {
		return false
	}
	return it.Price >= f.MinPrice && it.Price <= f.maxPrice()
}

// Apply filters and sorts items without modifying the input. Without a
// sort order the input order is kept.
func Apply(items []invdom.Item, f Filter) []invdom.Item {
	out := make([]invdom.Item, 0, len(items))
	for _, it := range items {
		if f.match(it) {
			out = append(out, it)
		}
	}
	switch f.Sort {
	case common.SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case common.SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}
