// internal/application/usecase/inventory_usecase.go
package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
)

// InventoryUsecase lets a store manager maintain their own store's items.
type InventoryUsecase struct {
	repo   invdom.Repository
	images ImageStore
	clock  Clock
	ids    IDGenerator
}

func NewInventoryUsecase(repo invdom.Repository, images ImageStore, clock Clock, ids IDGenerator) *InventoryUsecase {
	return &InventoryUsecase{repo: repo, images: images, clock: clockOrSystem(clock), ids: idsOrUUID(ids)}
}

// ItemInput is the editable part of an item. With Sizes set, stock is
// tracked per size and Stock is ignored; otherwise Stock applies to
// the item as a whole. A nil Images keeps the current images.
type ItemInput struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Price       float64            `json:"price"`
	Stock       int                `json:"stock"`
	Sizes       []invdom.SizeStock `json:"sizes"`
	Images      []string           `json:"images"`
}

func (in ItemInput) apply(it *invdom.Item) {
	it.Name = in.Name
	it.Description = in.Description
	it.Category = in.Category
	it.Price = in.Price
	if in.Images != nil {
		it.Images = invdom.JoinImages(in.Images)
	}
	if len(in.Sizes) > 0 {
		it.Sizes = append([]invdom.SizeStock(nil), in.Sizes...)
		it.SizesTracked = true
	} else {
		it.Sizes = nil
		it.SizesTracked = false
		it.Stock = in.Stock
	}
}

func (u *InventoryUsecase) ListOwn(ctx context.Context, s Session) ([]invdom.Item, error) {
	if err := s.manager(); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, invdom.Filter{StoreName: s.StoreName})
}

func (u *InventoryUsecase) Create(ctx context.Context, s Session, in ItemInput) (invdom.Item, error) {
	if err := s.manager(); err != nil {
		return invdom.Item{}, err
	}
	now := u.clock.Now().UTC()
	it := invdom.Item{ID: u.ids.NewID(), StoreName: s.StoreName, CreatedAt: now, UpdatedAt: now}
	in.apply(&it)
	it.Normalize()
	if err := it.Validate(); err != nil {
		return invdom.Item{}, err
	}
	created, err := u.repo.Create(ctx, it)
	if err != nil {
		return invdom.Item{}, err
	}
	log.Printf("[inventory_usecase] created id=%s store=%s", created.ID, s.StoreName)
	return created, nil
}

// own loads the item and hides items of other stores.
func (u *InventoryUsecase) own(ctx context.Context, s Session, id string) (invdom.Item, error) {
	it, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return invdom.Item{}, err
	}
	if it.StoreName != s.StoreName {
		return invdom.Item{}, invdom.ErrNotFound
	}
	return it, nil
}

func (u *InventoryUsecase) Update(ctx context.Context, s Session, id string, in ItemInput) (invdom.Item, error) {
	if err := s.manager(); err != nil {
		return invdom.Item{}, err
	}
	it, err := u.own(ctx, s, id)
	if err != nil {
		return invdom.Item{}, err
	}
	in.apply(&it)
	it.StoreName = s.StoreName
	it.UpdatedAt = u.clock.Now().UTC()
	it.Normalize()
	if err := it.Validate(); err != nil {
		return invdom.Item{}, err
	}
	return u.repo.Update(ctx, it)
}

func (u *InventoryUsecase) Delete(ctx context.Context, s Session, id string) error {
	if err := s.manager(); err != nil {
		return err
	}
	it, err := u.own(ctx, s, id)
	if err != nil {
		return err
	}
	log.Printf("[inventory_usecase] delete id=%s store=%s", it.ID, s.StoreName)
	return u.repo.Delete(ctx, it.ID)
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadImage stores the image under inventory/<itemId>/ and appends its
// URL to the item's image list. The extension follows the content type.
func (u *InventoryUsecase) UploadImage(ctx context.Context, s Session, id, contentType string, r io.Reader) (invdom.Item, error) {
	if err := s.manager(); err != nil {
		return invdom.Item{}, err
	}
	if u.images == nil {
		return invdom.Item{}, ErrNotConfigured
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return invdom.Item{}, fmt.Errorf("%w: unsupported image type %q", ErrInvalidArgument, contentType)
	}

	it, err := u.own(ctx, s, id)
	if err != nil {
		return invdom.Item{}, err
	}

	object := path.Join("inventory", it.ID, u.ids.NewID()+ext)
	url, err := u.images.Upload(ctx, object, contentType, r)
	if err != nil {
		return invdom.Item{}, fmt.Errorf("inventory: upload image: %w", err)
	}

	it.Images = invdom.JoinImages(append(it.ImageList(), url))
	it.UpdatedAt = u.clock.Now().UTC()
	return u.repo.Update(ctx, it)
}
