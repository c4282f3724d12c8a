// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
)

var (
	ErrInvalidLine   = errors.New("cart: invalid line")
	ErrDuplicateLine = errors.New("cart: product with this size is already in the cart")
	ErrLineNotFound  = errors.New("cart: line not found")
)

// Line is one (user, product, size) entry of a user's cart.
//
// Firestore:
//   - collection: cart
//   - docId: userId-productId-size (see LineID)
//
// Name, Price, Image and StoreName are copied from the catalog when the
// line is added; checkout reads them back from here.
type Line struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	StoreName string    `json:"storeName"`
	CreatedAt time.Time `json:"createdAt"`
}

// LineID is the deterministic document id for a cart key.
func LineID(userID, productID, size string) string {
	return strings.TrimSpace(userID) + "-" + strings.TrimSpace(productID) + "-" + strings.TrimSpace(size)
}

// NewLine normalizes and validates a line. Quantity defaults to 1.
func NewLine(userID, productID, size string, quantity int, price float64, name, image, storeName string, now time.Time) (Line, error) {
	if quantity == 0 {
		quantity = 1
	}
	l := Line{
		UserID:    strings.TrimSpace(userID),
		ProductID: strings.TrimSpace(productID),
		Size:      strings.TrimSpace(size),
		Quantity:  quantity,
		Price:     price,
		Name:      strings.TrimSpace(name),
		Image:     strings.TrimSpace(image),
		StoreName: strings.TrimSpace(storeName),
		CreatedAt: now.UTC(),
	}
	l.ID = LineID(l.UserID, l.ProductID, l.Size)
	if err := l.Validate(); err != nil {
		return Line{}, err
	}
	return l, nil
}

func (l Line) Validate() error {
	switch {
	case l.UserID == "":
		return errors.Join(ErrInvalidLine, errors.New("userId is required"))
	case l.ProductID == "":
		return errors.Join(ErrInvalidLine, errors.New("productId is required"))
	case l.Size == "":
		return errors.Join(ErrInvalidLine, errors.New("size is required"))
	case l.Quantity < 1:
		return errors.Join(ErrInvalidLine, errors.New("quantity must be at least 1"))
	case l.Price < 0:
		return errors.Join(ErrInvalidLine, errors.New("price must not be negative"))
	}
	return nil
}

func (l Line) Subtotal() decimal.Decimal {
	return common.LineTotal(l.Price, l.Quantity)
}

type Lines []Line

// Total is the sum of price * quantity over all lines.
func (ls Lines) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range ls {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}
