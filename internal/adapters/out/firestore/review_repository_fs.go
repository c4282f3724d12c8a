package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	reviewdom "github.com/daniuniv/Efficient-Clothing/internal/domain/review"
)

// ReviewRepositoryFS stores reviews in "reviews" keyed customerId-productId.
type ReviewRepositoryFS struct {
	Client *firestore.Client
}

var _ reviewdom.Repository = (*ReviewRepositoryFS)(nil)

func NewReviewRepositoryFS(client *firestore.Client) *ReviewRepositoryFS {
	return &ReviewRepositoryFS{Client: client}
}

func (r *ReviewRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("reviews")
}

func (r *ReviewRepositoryFS) Upsert(ctx context.Context, rv reviewdom.Review) error {
	if r == nil || r.Client == nil {
		return errors.New("review repo: firestore client is nil")
	}
	_, err := r.col().Doc(rv.ID).Set(ctx, map[string]any{
		"reviewId":     rv.ID,
		"itemId":       rv.ItemID,
		"customerId":   rv.CustomerID,
		"customerName": rv.CustomerName,
		"rating":       rv.Rating,
		"comment":      rv.Comment,
		"createdAt":    rv.CreatedAt,
	})
	return err
}

func (r *ReviewRepositoryFS) ListByItem(ctx context.Context, itemID string) ([]reviewdom.Review, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("review repo: firestore client is nil")
	}
	it := r.col().Where("itemId", "==", strings.TrimSpace(itemID)).Documents(ctx)
	defer it.Stop()

	var out []reviewdom.Review
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		raw := snap.Data()
		rv := reviewdom.Review{
			ID:           snap.Ref.ID,
			ItemID:       asString(raw["itemId"]),
			CustomerID:   asString(raw["customerId"]),
			CustomerName: asString(raw["customerName"]),
			Rating:       asFloat(raw["rating"]),
			Comment:      asString(raw["comment"]),
		}
		if t, ok := asTime(raw["createdAt"]); ok {
			rv.CreatedAt = t
		}
		out = append(out, rv)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
