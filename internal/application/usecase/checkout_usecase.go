// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"fmt"
	"log"

	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

// CheckoutUsecase turns the caller's cart into one order with a
// sub-order per store. Cart deletion, order creation and stock
// decrements commit together or not at all.
type CheckoutUsecase struct {
	store  CheckoutStore
	ledger SalesLedger
	events OrderEventPublisher
	clock  Clock
	ids    IDGenerator
}

func NewCheckoutUsecase(store CheckoutStore, ledger SalesLedger, events OrderEventPublisher, clock Clock, ids IDGenerator) *CheckoutUsecase {
	return &CheckoutUsecase{
		store:  store,
		ledger: ledger,
		events: events,
		clock:  clockOrSystem(clock),
		ids:    idsOrUUID(ids),
	}
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, s Session, addr orderdom.DeliveryAddress) (orderdom.Order, error) {
	if err := s.signedIn(); err != nil {
		return orderdom.Order{}, err
	}
	if u.store == nil {
		return orderdom.Order{}, ErrNotConfigured
	}
	addr = addr.Normalize()
	if err := addr.Validate(); err != nil {
		return orderdom.Order{}, err
	}

	now := u.clock.Now().UTC()
	orderID := orderdom.NewOrderID(now, shortID(u.ids))

	var placed orderdom.Order
	err := u.store.RunCheckout(ctx, func(ctx context.Context, tx CheckoutTx) error {
		// reads
		lines, err := tx.CartLines(s.UID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return orderdom.ErrEmptyCart
		}

		items := map[string]*invdom.Item{}
		var itemOrder []string
		for _, l := range lines {
			if _, ok := items[l.ProductID]; ok || l.ProductID == "" {
				continue
			}
			it, err := tx.InventoryItem(l.ProductID)
			if err != nil {
				return fmt.Errorf("checkout: product %s: %w", l.ProductID, err)
			}
			items[l.ProductID] = &it
			itemOrder = append(itemOrder, l.ProductID)
		}

		images := make(map[string]string, len(items))
		for id, it := range items {
			images[id] = it.Images
		}

		o, err := orderdom.Build(orderdom.Draft{
			OrderID:       orderID,
			CustomerID:    s.UID,
			CustomerEmail: s.Email,
			Address:       addr,
			Lines:         lines,
			Images:        images,
			NewSubOrderID: u.ids.NewID,
			Now:           now,
		})
		if err != nil {
			return err
		}

		for _, l := range lines {
			if err := items[l.ProductID].Decrement(l.Size, l.Quantity); err != nil {
				return err
			}
		}

		// writes
		if err := tx.CreateOrder(o); err != nil {
			return err
		}
		for _, l := range lines {
			if err := tx.DeleteCartLine(l.ID); err != nil {
				return err
			}
		}
		for _, id := range itemOrder {
			if err := tx.SaveStock(*items[id]); err != nil {
				return err
			}
		}

		placed = o
		return nil
	})
	if err != nil {
		log.Printf("[checkout_usecase] checkout failed uid=%s orderId=%s err=%v", s.UID, orderID, err)
		return orderdom.Order{}, err
	}

	log.Printf("[checkout_usecase] order placed uid=%s orderId=%s subOrders=%d total=%.2f",
		s.UID, placed.ID, len(placed.SubOrders), placed.TotalAmount,
	)

	if u.ledger != nil {
		if err := u.ledger.RecordOrder(ctx, placed); err != nil {
			log.Printf("[checkout_usecase] WARN: sales ledger record failed orderId=%s err=%v", placed.ID, err)
		}
	}
	if u.events != nil {
		u.events.PublishOrderEvent(ctx, OrderEvent{
			Kind:          OrderPlaced,
			OrderID:       placed.ID,
			StoreNames:    placed.StoreNames,
			OrderStatus:   placed.Status,
			TotalAmount:   placed.TotalAmount,
			CustomerID:    placed.CustomerID,
			CustomerEmail: placed.CustomerEmail,
			At:            now,
		})
	}

	return placed, nil
}
