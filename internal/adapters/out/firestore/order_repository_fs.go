// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

const ordersCollection = "orders"

// OrderRepositoryFS implements order.Repository on "orders".
type OrderRepositoryFS struct {
	Client *firestore.Client
}

var _ orderdom.Repository = (*OrderRepositoryFS)(nil)

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) ordersCol() *firestore.CollectionRef {
	return r.Client.Collection(ordersCollection)
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order repo: firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	snap, err := r.ordersCol().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}
	return orderFromSnapshot(snap), nil
}

// List narrows by customer at the datastore. The store filter is applied
// on decoded sub-orders so documents written before storeNames existed
// still match.
func (r *OrderRepositoryFS) List(ctx context.Context, f orderdom.Filter) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order repo: firestore client is nil")
	}
	q := r.ordersCol().Query
	if cid := strings.TrimSpace(f.CustomerID); cid != "" {
		q = q.Where("customerId", "==", cid)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	store := strings.TrimSpace(f.StoreName)
	var out []orderdom.Order
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		o := orderFromSnapshot(snap)
		if store != "" && !hasStore(o, store) {
			continue
		}
		out = append(out, o)
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func hasStore(o orderdom.Order, store string) bool {
	for _, s := range o.SubOrders {
		if s.StoreName == store {
			return true
		}
	}
	return false
}

func sortOrdersNewestFirst(os []orderdom.Order) {
	sort.SliceStable(os, func(i, j int) bool {
		if os[i].CreatedAt.Equal(os[j].CreatedAt) {
			return os[i].ID > os[j].ID
		}
		return os[i].CreatedAt.After(os[j].CreatedAt)
	})
}

// Mutate is a read-modify-write on one order document inside a Firestore
// transaction; Firestore retries fn when the document changes underneath.
func (r *OrderRepositoryFS) Mutate(ctx context.Context, id string, fn func(o *orderdom.Order) error) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order repo: firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	ref := r.ordersCol().Doc(id)

	var result orderdom.Order
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return orderdom.ErrNotFound
			}
			return err
		}
		o := orderFromSnapshot(snap)
		if err := fn(&o); err != nil {
			return err
		}
		result = o
		return tx.Set(ref, orderToDoc(o))
	})
	if err != nil {
		return orderdom.Order{}, err
	}
	return result, nil
}
