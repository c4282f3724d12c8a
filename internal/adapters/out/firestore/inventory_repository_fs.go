// internal/adapters/out/firestore/inventory_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
)

const inventoryCollection = "inventory"

// InventoryRepositoryFS implements inventory.Repository on "inventory".
type InventoryRepositoryFS struct {
	Client *firestore.Client
}

var _ invdom.Repository = (*InventoryRepositoryFS)(nil)

func NewInventoryRepositoryFS(client *firestore.Client) *InventoryRepositoryFS {
	return &InventoryRepositoryFS{Client: client}
}

func (r *InventoryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(inventoryCollection)
}

func (r *InventoryRepositoryFS) List(ctx context.Context, f invdom.Filter) ([]invdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("inventory repo: firestore client is nil")
	}
	q := r.col().Query
	if s := strings.TrimSpace(f.StoreName); s != "" {
		q = q.Where("storeName", "==", s)
	}
	it := q.Documents(ctx)
	defer it.Stop()

	var out []invdom.Item
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, inventoryFromSnapshot(snap))
	}
	return out, nil
}

func (r *InventoryRepositoryFS) GetByID(ctx context.Context, id string) (invdom.Item, error) {
	if r == nil || r.Client == nil {
		return invdom.Item{}, errors.New("inventory repo: firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return invdom.Item{}, invdom.ErrNotFound
	}
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return invdom.Item{}, invdom.ErrNotFound
		}
		return invdom.Item{}, err
	}
	return inventoryFromSnapshot(snap), nil
}

func (r *InventoryRepositoryFS) Create(ctx context.Context, it invdom.Item) (invdom.Item, error) {
	if r == nil || r.Client == nil {
		return invdom.Item{}, errors.New("inventory repo: firestore client is nil")
	}
	var ref *firestore.DocumentRef
	if id := strings.TrimSpace(it.ID); id != "" {
		ref = r.col().Doc(id)
	} else {
		ref = r.col().NewDoc()
		it.ID = ref.ID
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	if _, err := ref.Create(ctx, inventoryToDoc(it)); err != nil {
		return invdom.Item{}, err
	}
	return it, nil
}

func (r *InventoryRepositoryFS) Update(ctx context.Context, it invdom.Item) (invdom.Item, error) {
	if r == nil || r.Client == nil {
		return invdom.Item{}, errors.New("inventory repo: firestore client is nil")
	}
	ref := r.col().Doc(strings.TrimSpace(it.ID))
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return invdom.ErrNotFound
			}
			return err
		}
		return tx.Set(ref, inventoryToDoc(it))
	})
	if err != nil {
		return invdom.Item{}, err
	}
	return it, nil
}

func (r *InventoryRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("inventory repo: firestore client is nil")
	}
	_, err := r.col().Doc(strings.TrimSpace(id)).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return invdom.ErrNotFound
	}
	return err
}

// SeedBatch upserts items in one batch (MergeAll). Items need an ID.
func (r *InventoryRepositoryFS) SeedBatch(ctx context.Context, items []invdom.Item) error {
	if len(items) == 0 {
		return nil
	}
	batch := r.Client.Batch()
	for _, it := range items {
		it.Normalize()
		if strings.TrimSpace(it.ID) == "" {
			return errors.Join(invdom.ErrInvalidItem, errors.New("seed item without id"))
		}
		if err := it.Validate(); err != nil {
			return err
		}
		batch.Set(r.col().Doc(it.ID), inventoryToDoc(it), firestore.MergeAll)
	}
	_, err := batch.Commit(ctx)
	return err
}

// ------------------------------------------------------------
// mapping
// ------------------------------------------------------------

// encodeSizes keeps the stored shape: tracked sizes as an array of
// {size, quantity}, legacy items as the comma-joined string.
func encodeSizes(it invdom.Item) any {
	if !it.SizesTracked {
		return strings.Join(it.SizeNames(), ",")
	}
	out := make([]map[string]any, 0, len(it.Sizes))
	for _, s := range it.Sizes {
		out = append(out, map[string]any{"size": s.Size, "quantity": s.Quantity})
	}
	return out
}

func inventoryToDoc(it invdom.Item) map[string]any {
	doc := map[string]any{
		"name":        it.Name,
		"description": it.Description,
		"category":    it.Category,
		"price":       it.Price,
		"stock":       it.Stock,
		"images":      it.Images,
		"sizes":       encodeSizes(it),
		"storeName":   it.StoreName,
		"createdAt":   it.CreatedAt,
	}
	if !it.UpdatedAt.IsZero() {
		doc["updatedAt"] = it.UpdatedAt
	}
	return doc
}

// decodeSizes accepts both the array and the comma-joined string shape.
func decodeSizes(v any) ([]invdom.SizeStock, bool) {
	switch t := v.(type) {
	case string:
		return invdom.ParseLegacySizes(t), false
	case []any:
		var out []invdom.SizeStock
		for _, e := range t {
			switch x := e.(type) {
			case map[string]any:
				if s := asString(x["size"]); s != "" {
					out = append(out, invdom.SizeStock{Size: s, Quantity: asInt(x["quantity"])})
				}
			case string:
				// array of plain size names carries no quantities
				if s := strings.TrimSpace(x); s != "" {
					out = append(out, invdom.SizeStock{Size: s})
				}
			}
		}
		tracked := len(out) > 0
		for _, e := range t {
			if _, ok := e.(map[string]any); !ok {
				tracked = false
			}
		}
		return out, tracked
	default:
		return nil, false
	}
}

func inventoryFromSnapshot(snap *firestore.DocumentSnapshot) invdom.Item {
	raw := snap.Data()
	it := invdom.Item{
		ID:          snap.Ref.ID,
		Name:        asString(raw["name"]),
		Description: asString(raw["description"]),
		Category:    asString(raw["category"]),
		Price:       asFloat(raw["price"]),
		Stock:       asInt(raw["stock"]),
		StoreName:   asString(raw["storeName"]),
	}
	switch imgs := raw["images"].(type) {
	case []any:
		it.Images = invdom.JoinImages(asStrings(imgs))
	default:
		it.Images = invdom.JoinImages(invdom.SplitImages(asString(imgs)))
	}
	it.Sizes, it.SizesTracked = decodeSizes(raw["sizes"])
	if t, ok := asTime(raw["createdAt"]); ok {
		it.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		it.UpdatedAt = t
	}
	return it
}
