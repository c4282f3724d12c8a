package usecase

import (
	"context"
	"log"
	"strings"

	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	reviewdom "github.com/daniuniv/Efficient-Clothing/internal/domain/review"
)

type ReviewUsecase struct {
	repo  reviewdom.Repository
	items invdom.Repository
	clock Clock
}

func NewReviewUsecase(repo reviewdom.Repository, items invdom.Repository, clock Clock) *ReviewUsecase {
	return &ReviewUsecase{repo: repo, items: items, clock: clockOrSystem(clock)}
}

// Submit writes the caller's review of a product, replacing any earlier one.
func (u *ReviewUsecase) Submit(ctx context.Context, s Session, productID string, rating float64, comment string) (reviewdom.Review, error) {
	if err := s.signedIn(); err != nil {
		return reviewdom.Review{}, err
	}
	productID = strings.TrimSpace(productID)
	if _, err := u.items.GetByID(ctx, productID); err != nil {
		return reviewdom.Review{}, err
	}
	r, err := reviewdom.New(s.UID, s.Email, productID, rating, comment, u.clock.Now())
	if err != nil {
		return reviewdom.Review{}, err
	}
	if err := u.repo.Upsert(ctx, r); err != nil {
		return reviewdom.Review{}, err
	}
	log.Printf("[review_usecase] upsert reviewId=%s rating=%.1f", r.ID, r.Rating)
	return r, nil
}

func (u *ReviewUsecase) ListForProduct(ctx context.Context, productID string) ([]reviewdom.Review, error) {
	return u.repo.ListByItem(ctx, strings.TrimSpace(productID))
}
