package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
)

// Draft carries everything needed to turn a cart into an order.
type Draft struct {
	OrderID       string
	CustomerID    string
	CustomerEmail string
	Address       DeliveryAddress
	Lines         []cartdom.Line

	// Images maps productId to the catalog image list (comma-joined) at
	// checkout time. Lines without an entry keep their own image.
	Images map[string]string

	// NewSubOrderID must return a globally unique id per call.
	NewSubOrderID func() string

	Now time.Time
}

// NewOrderID builds the timestamp-based order id; suffix disambiguates
// checkouts within the same millisecond.
func NewOrderID(now time.Time, suffix string) string {
	return fmt.Sprintf("order-%d-%s", now.UnixMilli(), strings.TrimSpace(suffix))
}

// Build validates the cart lines and fans them out into one sub-order per
// store. The order total is summed over the cart lines before grouping;
// sub-order totals are summed over their own items. Both use the same
// lines, so the sub-order totals always add up to the order total.
func Build(d Draft) (Order, error) {
	customerID := strings.TrimSpace(d.CustomerID)
	if customerID == "" {
		return Order{}, ErrInvalidCustomerID
	}
	addr := d.Address.Normalize()
	if err := addr.Validate(); err != nil {
		return Order{}, err
	}
	if len(d.Lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	for _, l := range d.Lines {
		if err := checkLine(l); err != nil {
			return Order{}, err
		}
	}
	if strings.TrimSpace(d.OrderID) == "" || d.NewSubOrderID == nil {
		return Order{}, errors.New("order: id generation not configured")
	}

	now := d.Now.UTC()
	total := cartdom.Lines(d.Lines).Total()

	var (
		storeOrder []string
		groups     = map[string][]cartdom.Line{}
	)
	for _, l := range d.Lines {
		store := strings.TrimSpace(l.StoreName)
		if store == "" {
			store = UnknownStore
		}
		if _, ok := groups[store]; !ok {
			storeOrder = append(storeOrder, store)
		}
		groups[store] = append(groups[store], l)
	}

	o := Order{
		ID:              strings.TrimSpace(d.OrderID),
		CustomerID:      customerID,
		CustomerEmail:   strings.TrimSpace(d.CustomerEmail),
		DeliveryAddress: addr,
		TotalAmount:     common.ToAmount(total),
		Status:          StatusProcessing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, store := range storeOrder {
		sub := SubOrder{
			ID:        d.NewSubOrderID(),
			OrderID:   o.ID,
			StoreName: store,
			Status:    StatusProcessing,
			UpdatedAt: now,
		}
		subTotal := decimal.Zero
		for _, l := range groups[store] {
			img := strings.TrimSpace(l.Image)
			if imgs, ok := d.Images[l.ProductID]; ok && strings.TrimSpace(imgs) != "" {
				img = strings.TrimSpace(imgs)
			}
			sub.Items = append(sub.Items, Item{
				ProductID: l.ProductID,
				Name:      l.Name,
				Size:      l.Size,
				Quantity:  l.Quantity,
				Price:     l.Price,
				Image:     img,
			})
			subTotal = subTotal.Add(l.Subtotal())
		}
		sub.TotalAmount = common.ToAmount(subTotal)
		o.SubOrders = append(o.SubOrders, sub)
		o.StoreNames = append(o.StoreNames, store)
	}

	return o, nil
}

func checkLine(l cartdom.Line) error {
	var missing []string
	if strings.TrimSpace(l.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(l.ProductID) == "" {
		missing = append(missing, "productId")
	}
	if strings.TrimSpace(l.Size) == "" {
		missing = append(missing, "size")
	}
	if l.Quantity < 1 {
		missing = append(missing, "quantity")
	}
	if l.Price < 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: line %q: %s", ErrIncompleteLine, l.ID, strings.Join(missing, ", "))
	}
	return nil
}
