// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
)

// CartUsecase handles the signed-in user's cart lines.
type CartUsecase struct {
	repo  cartdom.Repository
	items invdom.Repository
	clock Clock
}

func NewCartUsecase(repo cartdom.Repository, items invdom.Repository) *CartUsecase {
	return NewCartUsecaseWithClock(repo, items, nil)
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, items invdom.Repository, clock Clock) *CartUsecase {
	return &CartUsecase{repo: repo, items: items, clock: clockOrSystem(clock)}
}

// CartView is the cart screen: lines plus the running total.
type CartView struct {
	Lines []cartdom.Line `json:"lines"`
	Total float64        `json:"total"`
}

func (u *CartUsecase) Get(ctx context.Context, s Session) (CartView, error) {
	if err := s.signedIn(); err != nil {
		return CartView{}, err
	}
	lines, err := u.repo.ListByUser(ctx, s.UID)
	if err != nil {
		return CartView{}, err
	}
	if lines == nil {
		lines = []cartdom.Line{}
	}
	return CartView{Lines: lines, Total: common.ToAmount(cartdom.Lines(lines).Total())}, nil
}

// AddLine copies name, price, image and store from the catalog item and
// creates the (user, product, size) line. An existing line for the same
// key is not merged: cartdom.ErrDuplicateLine is returned.
func (u *CartUsecase) AddLine(ctx context.Context, s Session, productID, size string, quantity int) (cartdom.Line, error) {
	if err := s.signedIn(); err != nil {
		return cartdom.Line{}, err
	}
	productID = strings.TrimSpace(productID)
	size = strings.TrimSpace(size)
	if productID == "" {
		return cartdom.Line{}, fmt.Errorf("%w: productId is required", ErrInvalidArgument)
	}
	if size == "" {
		return cartdom.Line{}, fmt.Errorf("%w: please select a size", ErrInvalidArgument)
	}
	if quantity < 0 {
		return cartdom.Line{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}

	item, err := u.items.GetByID(ctx, productID)
	if err != nil {
		return cartdom.Line{}, err
	}
	if len(item.Sizes) > 0 {
		canonical := ""
		for _, n := range item.SizeNames() {
			if strings.EqualFold(n, size) {
				canonical = n
				break
			}
		}
		if canonical == "" {
			return cartdom.Line{}, fmt.Errorf("%w: %q", invdom.ErrSizeNotFound, size)
		}
		size = canonical
	}

	line, err := cartdom.NewLine(s.UID, item.ID, size, quantity, item.Price, item.Name, item.FirstImage(), item.StoreName, u.clock.Now())
	if err != nil {
		return cartdom.Line{}, err
	}

	created, err := u.repo.Create(ctx, line)
	if err != nil {
		if errors.Is(err, cartdom.ErrDuplicateLine) {
			log.Printf("[cart_usecase] duplicate line uid=%s product=%s size=%s", s.UID, item.ID, size)
		}
		return cartdom.Line{}, err
	}
	return created, nil
}

// RemoveLine deletes one of the caller's lines. Lines of other users are
// reported as not found.
func (u *CartUsecase) RemoveLine(ctx context.Context, s Session, lineID string) error {
	if err := s.signedIn(); err != nil {
		return err
	}
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return fmt.Errorf("%w: line id is required", ErrInvalidArgument)
	}
	l, err := u.repo.GetByID(ctx, lineID)
	if err != nil {
		return err
	}
	if l.UserID != s.UID {
		return cartdom.ErrLineNotFound
	}
	return u.repo.Delete(ctx, lineID)
}
