// internal/adapters/out/firestore/cart_repository_fs.go
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

	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
)

const cartCollection = "cart"

// CartRepositoryFS stores one document per cart line in "cart".
// docId = userId-productId-size.
type CartRepositoryFS struct {
	Client *firestore.Client
}

var _ cartdom.Repository = (*CartRepositoryFS)(nil)

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cartCollection)
}

func (r *CartRepositoryFS) ListByUser(ctx context.Context, userID string) ([]cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart repo: firestore client is nil")
	}
	it := r.col().Where("userId", "==", strings.TrimSpace(userID)).Documents(ctx)
	defer it.Stop()

	var out []cartdom.Line
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, cartLineFromSnapshot(snap))
	}
	sortCartLines(out)
	return out, nil
}

func sortCartLines(ls []cartdom.Line) {
	sort.SliceStable(ls, func(i, j int) bool {
		if ls[i].CreatedAt.Equal(ls[j].CreatedAt) {
			return ls[i].ID < ls[j].ID
		}
		return ls[i].CreatedAt.Before(ls[j].CreatedAt)
	})
}

// Create relies on Firestore's create-if-absent so two concurrent adds of
// the same key cannot both succeed.
func (r *CartRepositoryFS) Create(ctx context.Context, l cartdom.Line) (cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return cartdom.Line{}, errors.New("cart repo: firestore client is nil")
	}
	if l.ID == "" {
		l.ID = cartdom.LineID(l.UserID, l.ProductID, l.Size)
	}
	if _, err := r.col().Doc(l.ID).Create(ctx, cartLineToDoc(l)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return cartdom.Line{}, cartdom.ErrDuplicateLine
		}
		return cartdom.Line{}, err
	}
	return l, nil
}

func (r *CartRepositoryFS) GetByID(ctx context.Context, id string) (cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return cartdom.Line{}, errors.New("cart repo: firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return cartdom.Line{}, cartdom.ErrLineNotFound
	}
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.Line{}, cartdom.ErrLineNotFound
		}
		return cartdom.Line{}, err
	}
	return cartLineFromSnapshot(snap), nil
}

func (r *CartRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart repo: firestore client is nil")
	}
	_, err := r.col().Doc(strings.TrimSpace(id)).Delete(ctx)
	return err
}

// ------------------------------------------------------------
// mapping
// ------------------------------------------------------------

func cartLineToDoc(l cartdom.Line) map[string]any {
	return map[string]any{
		"userId":    l.UserID,
		"productId": l.ProductID,
		"size":      l.Size,
		"quantity":  l.Quantity,
		"price":     l.Price,
		"name":      l.Name,
		"image":     l.Image,
		"storeName": l.StoreName,
		"createdAt": l.CreatedAt,
	}
}

func cartLineFromSnapshot(snap *firestore.DocumentSnapshot) cartdom.Line {
	raw := snap.Data()
	l := cartdom.Line{
		ID:        snap.Ref.ID,
		UserID:    asString(raw["userId"]),
		ProductID: asString(raw["productId"]),
		Size:      asString(raw["size"]),
		Quantity:  asInt(raw["quantity"]),
		Price:     asFloat(raw["price"]),
		Name:      asString(raw["name"]),
		Image:     asString(raw["image"]),
		StoreName: asString(raw["storeName"]),
	}
	if l.Image == "" {
		// older lines stored the product's images field as is
		l.Image = asString(raw["images"])
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		l.CreatedAt = t
	}
	return l
}
