// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

// UnknownStore groups cart lines that carry no storeName.
const UnknownStore = "Unknown Store"

var (
	ErrNotFound          = errors.New("order: not found")
	ErrSubOrderNotFound  = errors.New("order: sub-order not found")
	ErrEmptyCart         = errors.New("order: cart is empty")
	ErrIncompleteLine    = errors.New("order: cart line is missing required fields")
	ErrInvalidAddress    = errors.New("order: invalid delivery address")
	ErrInvalidCustomerID = errors.New("order: invalid customerId")
)

type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

func (a DeliveryAddress) Normalize() DeliveryAddress {
	return DeliveryAddress{
		Street:     strings.TrimSpace(a.Street),
		City:       strings.TrimSpace(a.City),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

func (a DeliveryAddress) Validate() error {
	if a.Street == "" || a.City == "" {
		return ErrInvalidAddress
	}
	return nil
}

// Item is the product snapshot taken at checkout. It is not updated
// when the catalog changes afterwards.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// SubOrder is the portion of an order fulfilled by one store.
// ID is unique across all orders; OrderID points at the parent.
type SubOrder struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	StoreName   string    `json:"storeName"`
	Items       []Item    `json:"items"`
	TotalAmount float64   `json:"totalAmount"`
	Status      Status    `json:"status"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Order is the customer-facing record of a checkout.
//
// Firestore:
//   - collection: orders
//   - docId: ID
//   - storeNames mirrors SubOrders[].StoreName for array-contains queries
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerEmail   string          `json:"customerEmail"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	TotalAmount     float64         `json:"totalAmount"`
	Status          Status          `json:"status"`
	SubOrders       []SubOrder      `json:"subOrders"`
	StoreNames      []string        `json:"storeNames"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// SubOrder returns the sub-order with the given id.
func (o Order) SubOrder(id string) (SubOrder, bool) {
	id = strings.TrimSpace(id)
	for _, s := range o.SubOrders {
		if s.ID == id {
			return s, true
		}
	}
	return SubOrder{}, false
}

// SetSubOrderStatus changes exactly one sub-order. When every sub-order
// then shares the same status the parent takes it; otherwise the parent
// status is left alone. Returns whether the parent status changed.
func (o *Order) SetSubOrderStatus(subOrderID string, st Status, now time.Time) (bool, error) {
	if !st.Valid() {
		return false, ErrInvalidStatus
	}
	subOrderID = strings.TrimSpace(subOrderID)
	idx := -1
	for i := range o.SubOrders {
		if o.SubOrders[i].ID == subOrderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, ErrSubOrderNotFound
	}

	now = now.UTC()
	subs := make([]SubOrder, len(o.SubOrders))
	copy(subs, o.SubOrders)
	subs[idx].Status = st
	subs[idx].UpdatedAt = now
	o.SubOrders = subs
	o.UpdatedAt = now

	agreed, ok := o.commonStatus()
	if !ok || agreed == o.Status {
		return false, nil
	}
	o.Status = agreed
	return true, nil
}

func (o Order) commonStatus() (Status, bool) {
	if len(o.SubOrders) == 0 {
		return "", false
	}
	first := o.SubOrders[0].Status
	for _, s := range o.SubOrders[1:] {
		if s.Status != first {
			return "", false
		}
	}
	return first, true
}

// SubOrderView flattens a sub-order with the parent fields a store
// manager needs to fulfil it.
type SubOrderView struct {
	SubOrder
	CustomerID      string          `json:"customerId"`
	CustomerEmail   string          `json:"customerEmail"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	OrderStatus     Status          `json:"orderStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ViewsForStore returns the store's sub-orders of o, optionally filtered by status.
func (o Order) ViewsForStore(storeName string, status Status) []SubOrderView {
	var out []SubOrderView
	for _, s := range o.SubOrders {
		if s.StoreName != storeName {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, SubOrderView{
			SubOrder:        s,
			CustomerID:      o.CustomerID,
			CustomerEmail:   o.CustomerEmail,
			DeliveryAddress: o.DeliveryAddress,
			OrderStatus:     o.Status,
			CreatedAt:       o.CreatedAt,
		})
	}
	return out
}
