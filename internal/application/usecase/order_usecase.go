// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

// OrderUsecase serves order tracking for customers and the sub-order
// status workflow for store managers.
type OrderUsecase struct {
	repo   orderdom.Repository
	ledger SalesLedger
	events OrderEventPublisher
	clock  Clock
}

func NewOrderUsecase(repo orderdom.Repository, ledger SalesLedger, events OrderEventPublisher, clock Clock) *OrderUsecase {
	return &OrderUsecase{repo: repo, ledger: ledger, events: events, clock: clockOrSystem(clock)}
}

func parseStatusFilter(s string) (orderdom.Status, error) {
	if strings.TrimSpace(s) == "" || strings.EqualFold(strings.TrimSpace(s), "all") {
		return "", nil
	}
	st, err := orderdom.ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return st, nil
}

// ListForCustomer returns the caller's orders, newest first, optionally
// filtered by parent order status ("" or "all" for every order).
func (u *OrderUsecase) ListForCustomer(ctx context.Context, s Session, status string) ([]orderdom.Order, error) {
	if err := s.signedIn(); err != nil {
		return nil, err
	}
	st, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx, orderdom.Filter{CustomerID: s.UID})
	if err != nil {
		return nil, err
	}
	out := make([]orderdom.Order, 0, len(all))
	for _, o := range all {
		if st != "" && o.Status != st {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// ListForStore returns the manager's sub-orders flattened with parent
// context, optionally filtered by sub-order status.
func (u *OrderUsecase) ListForStore(ctx context.Context, s Session, status string) ([]orderdom.SubOrderView, error) {
	if err := s.manager(); err != nil {
		return nil, err
	}
	st, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx, orderdom.Filter{StoreName: s.StoreName})
	if err != nil {
		return nil, err
	}
	out := []orderdom.SubOrderView{}
	for _, o := range all {
		out = append(out, o.ViewsForStore(s.StoreName, st)...)
	}
	return out, nil
}

// Get returns one order to its customer, to a manager with a sub-order
// in it, or to the owner.
func (u *OrderUsecase) Get(ctx context.Context, s Session, orderID string) (orderdom.Order, error) {
	if err := s.signedIn(); err != nil {
		return orderdom.Order{}, err
	}
	o, err := u.repo.GetByID(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return orderdom.Order{}, err
	}
	switch {
	case o.CustomerID == s.UID, s.IsOwner():
		return o, nil
	case s.IsManager():
		for _, name := range o.StoreNames {
			if name == s.StoreName {
				return o, nil
			}
		}
	}
	return orderdom.Order{}, orderdom.ErrNotFound
}

// UpdateSubOrderStatus sets the status of one sub-order owned by the
// manager's store, then aligns the parent status when all sub-orders
// agree. The read-modify-write happens in one transaction so concurrent
// managers of different stores do not overwrite each other.
func (u *OrderUsecase) UpdateSubOrderStatus(ctx context.Context, s Session, orderID, subOrderID, status string) (orderdom.Order, error) {
	if err := s.manager(); err != nil {
		return orderdom.Order{}, err
	}
	st, err := orderdom.ParseStatus(status)
	if err != nil {
		return orderdom.Order{}, err
	}
	orderID = strings.TrimSpace(orderID)
	subOrderID = strings.TrimSpace(subOrderID)
	if orderID == "" || subOrderID == "" {
		return orderdom.Order{}, fmt.Errorf("%w: order and sub-order ids are required", ErrInvalidArgument)
	}

	now := u.clock.Now().UTC()
	parentChanged := false
	updated, err := u.repo.Mutate(ctx, orderID, func(o *orderdom.Order) error {
		sub, ok := o.SubOrder(subOrderID)
		if !ok {
			return orderdom.ErrSubOrderNotFound
		}
		if sub.StoreName != s.StoreName {
			return ErrForbidden
		}
		changed, err := o.SetSubOrderStatus(subOrderID, st, now)
		parentChanged = changed
		return err
	})
	if err != nil {
		return orderdom.Order{}, err
	}

	log.Printf("[order_usecase] sub-order status orderId=%s subOrderId=%s store=%s status=%s parent=%s parentChanged=%t",
		orderID, subOrderID, s.StoreName, st, updated.Status, parentChanged,
	)

	if u.ledger != nil {
		if err := u.ledger.RecordStatus(ctx, subOrderID, st, now); err != nil {
			log.Printf("[order_usecase] WARN: sales ledger status failed subOrderId=%s err=%v", subOrderID, err)
		}
	}
	if u.events != nil {
		u.events.PublishOrderEvent(ctx, OrderEvent{
			Kind:          SubOrderStatusChanged,
			OrderID:       updated.ID,
			SubOrderID:    subOrderID,
			StoreNames:    []string{s.StoreName},
			Status:        st,
			OrderStatus:   updated.Status,
			TotalAmount:   updated.TotalAmount,
			CustomerID:    updated.CustomerID,
			CustomerEmail: updated.CustomerEmail,
			At:            now,
		})
	}
	return updated, nil
}
