package usecase

import (
	"context"
	"io"
	"time"

	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// ============================================================
// Checkout transaction
// ============================================================

// CheckoutTx is the view of the datastore inside one checkout
// transaction. All reads must happen before the first write.
type CheckoutTx interface {
	CartLines(userID string) ([]cartdom.Line, error)
	// InventoryItem returns invdom.ErrNotFound when missing.
	InventoryItem(id string) (invdom.Item, error)

	CreateOrder(o orderdom.Order) error
	DeleteCartLine(id string) error
	// SaveStock writes only the sizes and stock fields of the item.
	SaveStock(it invdom.Item) error
}

// CheckoutStore runs fn atomically. If fn returns an error, none of its
// writes are applied. fn may be invoked again on contention.
type CheckoutStore interface {
	RunCheckout(ctx context.Context, fn func(ctx context.Context, tx CheckoutTx) error) error
}

// ============================================================
// Outbound side effects (best-effort, after commit)
// ============================================================

type OrderEventKind string

const (
	OrderPlaced           OrderEventKind = "order.placed"
	SubOrderStatusChanged OrderEventKind = "suborder.status_changed"
)

// OrderEvent is published after an order write commits. StoreNames lists
// the stores concerned by the event.
type OrderEvent struct {
	Kind          OrderEventKind  `json:"kind"`
	OrderID       string          `json:"orderId"`
	SubOrderID    string          `json:"subOrderId,omitempty"`
	StoreNames    []string        `json:"storeNames"`
	Status        orderdom.Status `json:"status,omitempty"`
	OrderStatus   orderdom.Status `json:"orderStatus"`
	TotalAmount   float64         `json:"totalAmount"`
	CustomerID    string          `json:"customerId"`
	CustomerEmail string          `json:"-"`
	At            time.Time       `json:"at"`
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev OrderEvent)
}

// Publishers fans an event out to several publishers.
type Publishers []OrderEventPublisher

func (ps Publishers) PublishOrderEvent(ctx context.Context, ev OrderEvent) {
	for _, p := range ps {
		if p != nil {
			p.PublishOrderEvent(ctx, ev)
		}
	}
}

type AccountNotifier interface {
	NotifyManagerApproved(ctx context.Context, p userdom.Profile) error
}

// ============================================================
// Sales ledger (reporting projection)
// ============================================================

// SalesRow is one sub-order as seen by a store's sales report.
type SalesRow struct {
	OrderID     string          `json:"orderId"`
	SubOrderID  string          `json:"subOrderId"`
	StoreName   string          `json:"storeName"`
	CustomerID  string          `json:"customerId"`
	TotalAmount float64         `json:"totalAmount"`
	Status      orderdom.Status `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type SalesLedger interface {
	RecordOrder(ctx context.Context, o orderdom.Order) error
	RecordStatus(ctx context.Context, subOrderID string, st orderdom.Status, at time.Time) error
	StoreSales(ctx context.Context, storeName string, r common.TimeRange) ([]SalesRow, error)
}

// ============================================================
// Identity provider and object storage
// ============================================================

type IdentityProvider interface {
	// CreateAccount returns userdom.ErrEmailTaken when the email is in use.
	CreateAccount(ctx context.Context, email, password string) (uid string, err error)
	DeleteAccount(ctx context.Context, uid string) error
	RevokeSessions(ctx context.Context, uid string) error
	SetRoleClaims(ctx context.Context, p userdom.Profile) error
}

type ImageStore interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}
