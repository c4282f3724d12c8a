package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// ========================================
// checkout transaction
// ========================================

var errReadAfterWrite = errors.New("memory: transaction read after write")

var _ usecase.CheckoutStore = (*Store)(nil)

// RunCheckout holds the store lock for the whole of fn and applies the
// staged writes only when fn succeeds.
func (s *Store) RunCheckout(ctx context.Context, fn func(ctx context.Context, tx usecase.CheckoutTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &checkoutTx{s: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	for _, o := range tx.orders {
		if _, ok := s.orders[o.ID]; ok {
			return fmt.Errorf("memory: order %s already exists", o.ID)
		}
	}
	for _, o := range tx.orders {
		s.orders[o.ID] = cloneOrder(o)
	}
	for _, id := range tx.deletes {
		delete(s.cart, id)
	}
	for _, it := range tx.stock {
		cur := s.items[it.ID]
		cur.Sizes = append([]invdom.SizeStock(nil), it.Sizes...)
		cur.Stock = it.Stock
		s.items[it.ID] = cur
	}
	return nil
}

type checkoutTx struct {
	s       *Store
	wrote   bool
	orders  []orderdom.Order
	deletes []string
	stock   []invdom.Item
}

func (tx *checkoutTx) CartLines(userID string) ([]cartdom.Line, error) {
	if tx.wrote {
		return nil, errReadAfterWrite
	}
	return tx.s.cartLinesLocked(userID), nil
}

func (tx *checkoutTx) InventoryItem(id string) (invdom.Item, error) {
	if tx.wrote {
		return invdom.Item{}, errReadAfterWrite
	}
	it, ok := tx.s.items[id]
	if !ok {
		return invdom.Item{}, invdom.ErrNotFound
	}
	return cloneItem(it), nil
}

func (tx *checkoutTx) CreateOrder(o orderdom.Order) error {
	tx.wrote = true
	tx.orders = append(tx.orders, cloneOrder(o))
	return nil
}

func (tx *checkoutTx) DeleteCartLine(id string) error {
	tx.wrote = true
	tx.deletes = append(tx.deletes, id)
	return nil
}

func (tx *checkoutTx) SaveStock(it invdom.Item) error {
	tx.wrote = true
	if _, ok := tx.s.items[it.ID]; !ok {
		return invdom.ErrNotFound
	}
	tx.stock = append(tx.stock, cloneItem(it))
	return nil
}

// ========================================
// sales ledger (computed from the orders map)
// ========================================

type SalesLedger struct{ s *Store }

var _ usecase.SalesLedger = (*SalesLedger)(nil)

func (l *SalesLedger) RecordOrder(context.Context, orderdom.Order) error { return nil }

func (l *SalesLedger) RecordStatus(context.Context, string, orderdom.Status, time.Time) error {
	return nil
}

func (l *SalesLedger) StoreSales(_ context.Context, storeName string, r common.TimeRange) ([]usecase.SalesRow, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	var rows []usecase.SalesRow
	for _, o := range l.s.listOrdersLocked(orderdom.Filter{StoreName: storeName}) {
		if !r.Contains(o.CreatedAt) {
			continue
		}
		for _, so := range o.SubOrders {
			if so.StoreName != storeName {
				continue
			}
			rows = append(rows, usecase.SalesRow{
				OrderID:     o.ID,
				SubOrderID:  so.ID,
				StoreName:   so.StoreName,
				CustomerID:  o.CustomerID,
				TotalAmount: so.TotalAmount,
				Status:      so.Status,
				CreatedAt:   o.CreatedAt,
			})
		}
	}
	return rows, nil
}

// ========================================
// identity (local development only)
// ========================================

// Identity stands in for Firebase Auth. Its ID tokens are simply uids of
// accounts it created, so it must never face real traffic.
type Identity struct{ s *Store }

var _ usecase.IdentityProvider = (*Identity)(nil)

func (id *Identity) CreateAccount(_ context.Context, email, _ string) (string, error) {
	id.s.mu.Lock()
	defer id.s.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(email))
	if _, ok := id.s.accounts[key]; ok {
		return "", userdom.ErrEmailTaken
	}
	id.s.seq++
	uid := fmt.Sprintf("uid-%d", id.s.seq)
	id.s.accounts[key] = uid
	return uid, nil
}

func (id *Identity) DeleteAccount(_ context.Context, uid string) error {
	id.s.mu.Lock()
	defer id.s.mu.Unlock()
	for email, u := range id.s.accounts {
		if u == uid {
			delete(id.s.accounts, email)
			delete(id.s.claims, uid)
			return nil
		}
	}
	return userdom.ErrNotFound
}

func (id *Identity) RevokeSessions(_ context.Context, uid string) error {
	id.s.mu.Lock()
	defer id.s.mu.Unlock()
	id.s.revoked[uid]++
	return nil
}

func (id *Identity) SetRoleClaims(_ context.Context, p userdom.Profile) error {
	id.s.mu.Lock()
	defer id.s.mu.Unlock()
	id.s.claims[p.UID] = map[string]any{
		"role":      string(p.Role),
		"storeName": p.StoreName,
		"approved":  p.Approved,
	}
	return nil
}

// Claims returns the custom claims last set for uid.
func (id *Identity) Claims(uid string) map[string]any {
	id.s.mu.Lock()
	defer id.s.mu.Unlock()
	return id.s.claims[uid]
}

// VerifyIDToken accepts the uid of an existing account as its token.
func (id *Identity) VerifyIDToken(_ context.Context, token string) (*fbauth.Token, error) {
	id.s.mu.Lock()
	defer id.s.mu.Unlock()
	token = strings.TrimSpace(token)
	for email, uid := range id.s.accounts {
		if uid == token {
			return &fbauth.Token{UID: uid, Claims: map[string]interface{}{"email": email}}, nil
		}
	}
	return nil, errors.New("memory: unknown token")
}

// ========================================
// images
// ========================================

type ImageStore struct{ s *Store }

var _ usecase.ImageStore = (*ImageStore)(nil)

func (is *ImageStore) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	is.s.mu.Lock()
	defer is.s.mu.Unlock()
	is.s.objects[objectPath] = b
	return "memory://images/" + objectPath, nil
}

// Object returns an uploaded object's bytes.
func (is *ImageStore) Object(objectPath string) ([]byte, bool) {
	is.s.mu.Lock()
	defer is.s.mu.Unlock()
	b, ok := is.s.objects[objectPath]
	return b, ok
}
