package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
	reviewdom "github.com/daniuniv/Efficient-Clothing/internal/domain/review"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// ========================================
// cart
// ========================================

type CartRepository struct{ s *Store }

var _ cartdom.Repository = (*CartRepository)(nil)

func (r *CartRepository) ListByUser(_ context.Context, userID string) ([]cartdom.Line, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.cartLinesLocked(userID), nil
}

func (s *Store) cartLinesLocked(userID string) []cartdom.Line {
	var out []cartdom.Line
	for _, k := range sortedKeys(s.cart) {
		if l := s.cart[k]; l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r *CartRepository) Create(_ context.Context, l cartdom.Line) (cartdom.Line, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l.ID == "" {
		l.ID = cartdom.LineID(l.UserID, l.ProductID, l.Size)
	}
	if _, ok := r.s.cart[l.ID]; ok {
		return cartdom.Line{}, cartdom.ErrDuplicateLine
	}
	r.s.cart[l.ID] = l
	return l, nil
}

func (r *CartRepository) GetByID(_ context.Context, id string) (cartdom.Line, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.cart[strings.TrimSpace(id)]
	if !ok {
		return cartdom.Line{}, cartdom.ErrLineNotFound
	}
	return l, nil
}

func (r *CartRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.cart, strings.TrimSpace(id))
	return nil
}

// ========================================
// inventory
// ========================================

type InventoryRepository struct{ s *Store }

var _ invdom.Repository = (*InventoryRepository)(nil)

func (r *InventoryRepository) List(_ context.Context, f invdom.Filter) ([]invdom.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []invdom.Item
	for _, k := range sortedKeys(r.s.items) {
		it := r.s.items[k]
		if f.StoreName != "" && it.StoreName != f.StoreName {
			continue
		}
		out = append(out, cloneItem(it))
	}
	return out, nil
}

func (r *InventoryRepository) GetByID(_ context.Context, id string) (invdom.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[strings.TrimSpace(id)]
	if !ok {
		return invdom.Item{}, invdom.ErrNotFound
	}
	return cloneItem(it), nil
}

func (r *InventoryRepository) Create(_ context.Context, it invdom.Item) (invdom.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if strings.TrimSpace(it.ID) == "" {
		r.s.seq++
		it.ID = fmt.Sprintf("item-%d", r.s.seq)
	}
	if _, ok := r.s.items[it.ID]; ok {
		return invdom.Item{}, fmt.Errorf("memory: inventory %s already exists", it.ID)
	}
	r.s.items[it.ID] = cloneItem(it)
	return cloneItem(it), nil
}

func (r *InventoryRepository) Update(_ context.Context, it invdom.Item) (invdom.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID]; !ok {
		return invdom.Item{}, invdom.ErrNotFound
	}
	r.s.items[it.ID] = cloneItem(it)
	return cloneItem(it), nil
}

func (r *InventoryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return invdom.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

// ========================================
// orders
// ========================================

type OrderRepository struct{ s *Store }

var _ orderdom.Repository = (*OrderRepository)(nil)

func (r *OrderRepository) GetByID(_ context.Context, id string) (orderdom.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[strings.TrimSpace(id)]
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) List(_ context.Context, f orderdom.Filter) ([]orderdom.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.listOrdersLocked(f), nil
}

func (s *Store) listOrdersLocked(f orderdom.Filter) []orderdom.Order {
	var out []orderdom.Order
	for _, o := range s.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.StoreName != "" && !containsString(o.StoreNames, f.StoreName) {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *OrderRepository) Mutate(_ context.Context, id string, fn func(o *orderdom.Order) error) (orderdom.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.orders[strings.TrimSpace(id)]
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	next := cloneOrder(cur)
	if err := fn(&next); err != nil {
		return orderdom.Order{}, err
	}
	r.s.orders[next.ID] = cloneOrder(next)
	return next, nil
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// ========================================
// reviews
// ========================================

type ReviewRepository struct{ s *Store }

var _ reviewdom.Repository = (*ReviewRepository)(nil)

func (r *ReviewRepository) Upsert(_ context.Context, rv reviewdom.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reviews[rv.ID] = rv
	return nil
}

func (r *ReviewRepository) ListByItem(_ context.Context, itemID string) ([]reviewdom.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []reviewdom.Review
	for _, k := range sortedKeys(r.s.reviews) {
		if rv := r.s.reviews[k]; rv.ItemID == itemID {
			out = append(out, rv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ========================================
// users
// ========================================

type UserRepository struct{ s *Store }

var _ userdom.Repository = (*UserRepository)(nil)

func (r *UserRepository) GetByUID(_ context.Context, uid string) (userdom.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.users[strings.TrimSpace(uid)]
	if !ok {
		return userdom.Profile{}, userdom.ErrNotFound
	}
	return p, nil
}

func (r *UserRepository) Save(_ context.Context, p userdom.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[p.UID] = p
	return nil
}

func (r *UserRepository) ListPendingManagers(_ context.Context) ([]userdom.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []userdom.Profile
	for _, k := range sortedKeys(r.s.users) {
		if p := r.s.users[k]; p.PendingApproval() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *UserRepository) Delete(_ context.Context, uid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[uid]; !ok {
		return userdom.ErrNotFound
	}
	delete(r.s.users, uid)
	return nil
}
