// internal/domain/inventory/entity.go
package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound          = errors.New("inventory: item not found")
	ErrInvalidItem       = errors.New("inventory: invalid item")
	ErrSizeNotFound      = errors.New("inventory: size not offered")
	ErrInsufficientStock = errors.New("inventory: insufficient stock")
)

// SizeStock is one entry of the tracked sizes array.
type SizeStock struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Item is a product in the "inventory" collection.
//
// Sizes come in two shapes in stored documents:
//   - array of {size, quantity} maps (SizesTracked == true)
//   - a comma-joined string such as "S,M,L" written by older screens
//     (SizesTracked == false, every Quantity is 0 and Stock is authoritative)
//
// Images is a comma-joined list of URLs.
type Item struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Price        float64     `json:"price"`
	Stock        int         `json:"stock"`
	Images       string      `json:"images"`
	Sizes        []SizeStock `json:"sizes"`
	SizesTracked bool        `json:"sizesTracked"`
	StoreName    string      `json:"storeName"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ParseLegacySizes splits the comma-joined sizes string.
func ParseLegacySizes(s string) []SizeStock {
	var out []SizeStock
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, SizeStock{Size: p})
	}
	return out
}

// SplitImages splits a comma-joined image list, dropping blanks.
func SplitImages(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func JoinImages(urls []string) string {
	clean := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			clean = append(clean, u)
		}
	}
	return strings.Join(clean, ",")
}

func (it Item) ImageList() []string { return SplitImages(it.Images) }

// FirstImage is what the cart shows as the line thumbnail.
func (it Item) FirstImage() string {
	imgs := it.ImageList()
	if len(imgs) == 0 {
		return ""
	}
	return imgs[0]
}

// HasSize reports whether the size is offered, case-insensitively.
func (it Item) HasSize(size string) bool {
	return it.sizeIndex(size) >= 0
}

func (it Item) sizeIndex(size string) int {
	size = strings.TrimSpace(size)
	for i, s := range it.Sizes {
		if strings.EqualFold(s.Size, size) {
			return i
		}
	}
	return -1
}

// SizeNames returns offered sizes in stored order.
func (it Item) SizeNames() []string {
	out := make([]string, 0, len(it.Sizes))
	for _, s := range it.Sizes {
		out = append(out, s.Size)
	}
	return out
}

// Available returns the sellable quantity for size.
func (it Item) Available(size string) int {
	if !it.SizesTracked {
		return it.Stock
	}
	i := it.sizeIndex(size)
	if i < 0 {
		return 0
	}
	return it.Sizes[i].Quantity
}

// Decrement removes qty units of size. Tracked sizes are decremented in
// place (and Stock with them); untracked items only carry Stock.
// The receiver is left unchanged on error.
func (it *Item) Decrement(size string, qty int) error {
	if qty <= 0 {
		return nil
	}
	i := it.sizeIndex(size)
	if i < 0 && (it.SizesTracked || len(it.Sizes) > 0) {
		return fmt.Errorf("%w: %s size %q", ErrSizeNotFound, it.ID, size)
	}

	if it.SizesTracked {
		if it.Sizes[i].Quantity < qty {
			return fmt.Errorf("%w: %s size %s has %d, need %d", ErrInsufficientStock, it.ID, size, it.Sizes[i].Quantity, qty)
		}
		sizes := make([]SizeStock, len(it.Sizes))
		copy(sizes, it.Sizes)
		sizes[i].Quantity -= qty
		it.Sizes = sizes
		if it.Stock >= qty {
			it.Stock -= qty
		} else {
			it.Stock = 0
		}
		return nil
	}

	if it.Stock < qty {
		return fmt.Errorf("%w: %s has %d, need %d", ErrInsufficientStock, it.ID, it.Stock, qty)
	}
	it.Stock -= qty
	return nil
}

// Normalize trims text fields and recomputes Stock from tracked sizes.
func (it *Item) Normalize() {
	it.ID = strings.TrimSpace(it.ID)
	it.Name = strings.TrimSpace(it.Name)
	it.Description = strings.TrimSpace(it.Description)
	it.Category = strings.TrimSpace(it.Category)
	it.StoreName = strings.TrimSpace(it.StoreName)
	it.Images = JoinImages(SplitImages(it.Images))

	sizes := make([]SizeStock, 0, len(it.Sizes))
	for _, s := range it.Sizes {
		s.Size = strings.TrimSpace(s.Size)
		if s.Size == "" {
			continue
		}
		sizes = append(sizes, s)
	}
	it.Sizes = sizes

	if it.SizesTracked {
		total := 0
		for _, s := range it.Sizes {
			total += s.Quantity
		}
		it.Stock = total
	}
}

func (it Item) Validate() error {
	switch {
	case it.Name == "":
		return errors.Join(ErrInvalidItem, errors.New("name is required"))
	case it.Category == "":
		return errors.Join(ErrInvalidItem, errors.New("category is required"))
	case it.StoreName == "":
		return errors.Join(ErrInvalidItem, errors.New("storeName is required"))
	case it.Price < 0:
		return errors.Join(ErrInvalidItem, errors.New("price must not be negative"))
	case it.Stock < 0:
		return errors.Join(ErrInvalidItem, errors.New("stock must not be negative"))
	}
	for _, s := range it.Sizes {
		if s.Quantity < 0 {
			return errors.Join(ErrInvalidItem, fmt.Errorf("size %s has negative quantity", s.Size))
		}
	}
	return nil
}
