// internal/domain/review/entity.go
package review

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidRating = errors.New("review: rating must be between 0.5 and 5 in half steps")
	ErrInvalidReview = errors.New("review: invalid")
)

// Review is one customer's opinion of one product. ID is
// customerId-productId, so a second submission replaces the first.
type Review struct {
	ID           string    `json:"reviewId"`
	ItemID       string    `json:"itemId"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ReviewID(customerID, itemID string) string {
	return strings.TrimSpace(customerID) + "-" + strings.TrimSpace(itemID)
}

func New(customerID, customerName, itemID string, rating float64, comment string, now time.Time) (Review, error) {
	r := Review{
		ItemID:       strings.TrimSpace(itemID),
		CustomerID:   strings.TrimSpace(customerID),
		CustomerName: strings.TrimSpace(customerName),
		Rating:       rating,
		Comment:      strings.TrimSpace(comment),
		CreatedAt:    now.UTC(),
	}
	r.ID = ReviewID(r.CustomerID, r.ItemID)
	if r.ItemID == "" || r.CustomerID == "" {
		return Review{}, ErrInvalidReview
	}
	if rating < 0.5 || rating > 5 || math.Mod(rating*2, 1) != 0 {
		return Review{}, ErrInvalidRating
	}
	return r, nil
}

// Average is the mean rating, 0 for no reviews.
func Average(rs []Review) float64 {
	if len(rs) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range rs {
		sum += r.Rating
	}
	return math.Round(sum/float64(len(rs))*100) / 100
}

// Repository is the persistence port for the "reviews" collection.
type Repository interface {
	// Upsert writes the review under its ID (last write wins).
	Upsert(ctx context.Context, r Review) error
	ListByItem(ctx context.Context, itemID string) ([]Review, error)
}
