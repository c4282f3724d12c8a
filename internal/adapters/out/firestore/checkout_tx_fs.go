// internal/adapters/out/firestore/checkout_tx_fs.go
package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

// CheckoutStoreFS runs checkout as one Firestore transaction over the
// cart, inventory and orders collections.
type CheckoutStoreFS struct {
	Client *firestore.Client
}

var _ usecase.CheckoutStore = (*CheckoutStoreFS)(nil)

func NewCheckoutStoreFS(client *firestore.Client) *CheckoutStoreFS {
	return &CheckoutStoreFS{Client: client}
}

func (s *CheckoutStoreFS) RunCheckout(ctx context.Context, fn func(ctx context.Context, tx usecase.CheckoutTx) error) error {
	if s == nil || s.Client == nil {
		return errors.New("checkout store: firestore client is nil")
	}
	return s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(ctx, &checkoutTxFS{client: s.Client, tx: tx})
	})
}

type checkoutTxFS struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (t *checkoutTxFS) CartLines(userID string) ([]cartdom.Line, error) {
	q := t.client.Collection(cartCollection).Where("userId", "==", userID)
	snaps, err := t.tx.Documents(q).GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]cartdom.Line, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, cartLineFromSnapshot(snap))
	}
	sortCartLines(out)
	return out, nil
}

func (t *checkoutTxFS) InventoryItem(id string) (invdom.Item, error) {
	snap, err := t.tx.Get(t.client.Collection(inventoryCollection).Doc(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return invdom.Item{}, invdom.ErrNotFound
		}
		return invdom.Item{}, err
	}
	return inventoryFromSnapshot(snap), nil
}

func (t *checkoutTxFS) CreateOrder(o orderdom.Order) error {
	return t.tx.Create(t.client.Collection(ordersCollection).Doc(o.ID), orderToDoc(o))
}

func (t *checkoutTxFS) DeleteCartLine(id string) error {
	return t.tx.Delete(t.client.Collection(cartCollection).Doc(id))
}

// SaveStock touches only stock and, for tracked items, sizes; legacy
// comma-joined sizes are left as stored.
func (t *checkoutTxFS) SaveStock(it invdom.Item) error {
	updates := []firestore.Update{
		{Path: "stock", Value: it.Stock},
		{Path: "updatedAt", Value: time.Now().UTC()},
	}
	if it.SizesTracked {
		updates = append(updates, firestore.Update{Path: "sizes", Value: encodeSizes(it)})
	}
	return t.tx.Update(t.client.Collection(inventoryCollection).Doc(it.ID), updates)
}
