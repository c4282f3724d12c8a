// Package memory keeps every collection in process memory. It backs
// STORE_BACKEND=memory for local development and the usecase tests, and
// honours the same transaction contracts as the Firestore adapters.
package memory

import (
	"sort"
	"sync"

	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
	reviewdom "github.com/daniuniv/Efficient-Clothing/internal/domain/review"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

type Store struct {
	mu sync.Mutex

	cart    map[string]cartdom.Line
	items   map[string]invdom.Item
	orders  map[string]orderdom.Order
	reviews map[string]reviewdom.Review
	users   map[string]userdom.Profile

	// identity
	accounts map[string]string // email -> uid
	revoked  map[string]int
	claims   map[string]map[string]any
	objects  map[string][]byte
	seq      int
}

func NewStore() *Store {
	return &Store{
		cart:     map[string]cartdom.Line{},
		items:    map[string]invdom.Item{},
		orders:   map[string]orderdom.Order{},
		reviews:  map[string]reviewdom.Review{},
		users:    map[string]userdom.Profile{},
		accounts: map[string]string{},
		revoked:  map[string]int{},
		claims:   map[string]map[string]any{},
		objects:  map[string][]byte{},
	}
}

func (s *Store) Carts() *CartRepository { return &CartRepository{s: s} }
func (s *Store) Inventory() *InventoryRepository { return &InventoryRepository{s: s} }
func (s *Store) Orders() *OrderRepository { return &OrderRepository{s: s} }
func (s *Store) Reviews() *ReviewRepository { return &ReviewRepository{s: s} }
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }
func (s *Store) Ledger() *SalesLedger { return &SalesLedger{s: s} }
func (s *Store) Identity() *Identity { return &Identity{s: s} }
func (s *Store) Images() *ImageStore { return &ImageStore{s: s} }

// ------------------------------------------------------------
// copies (callers must not share slices with stored values)
// ------------------------------------------------------------

func cloneItem(it invdom.Item) invdom.Item {
	it.Sizes = append([]invdom.SizeStock(nil), it.Sizes...)
	return it
}

func cloneOrder(o orderdom.Order) orderdom.Order {
	o.StoreNames = append([]string(nil), o.StoreNames...)
	subs := make([]orderdom.SubOrder, len(o.SubOrders))
	for i, so := range o.SubOrders {
		so.Items = append([]orderdom.Item(nil), so.Items...)
		subs[i] = so
	}
	o.SubOrders = subs
	return o
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
