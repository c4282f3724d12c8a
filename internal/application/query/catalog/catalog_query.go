// internal/application/query/catalog/catalog_query.go
package catalog

import (
	"context"
	"errors"
	"strings"

	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	reviewdom "github.com/daniuniv/Efficient-Clothing/internal/domain/review"
)

// CatalogQuery is the public read side of the storefront. The item
// collection is read whole and filtered in memory.
type CatalogQuery struct {
	Items   invdom.Repository
	Reviews reviewdom.Repository
}

func NewCatalogQuery(items invdom.Repository, reviews reviewdom.Repository) *CatalogQuery {
	return &CatalogQuery{Items: items, Reviews: reviews}
}

// ProductDetail is the product page: item, its reviews and the average.
type ProductDetail struct {
	Item          invdom.Item        `json:"item"`
	Images        []string           `json:"images"`
	Reviews       []reviewdom.Review `json:"reviews"`
	AverageRating float64            `json:"averageRating"`
	ReviewCount   int                `json:"reviewCount"`
}

func (q *CatalogQuery) List(ctx context.Context, f Filter) ([]invdom.Item, error) {
	if q == nil || q.Items == nil {
		return nil, errors.New("catalog: query not configured")
	}
	all, err := q.Items.List(ctx, invdom.Filter{})
	if err != nil {
		return nil, err
	}
	return Apply(all, f), nil
}

func (q *CatalogQuery) Detail(ctx context.Context, id string) (ProductDetail, error) {
	if q == nil || q.Items == nil {
		return ProductDetail{}, errors.New("catalog: query not configured")
	}
	it, err := q.Items.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return ProductDetail{}, err
	}
	d := ProductDetail{Item: it, Images: it.ImageList(), Reviews: []reviewdom.Review{}}
	if d.Images == nil {
		d.Images = []string{}
	}
	if q.Reviews != nil {
		rs, err := q.Reviews.ListByItem(ctx, it.ID)
		if err != nil {
			return ProductDetail{}, err
		}
		if rs != nil {
			d.Reviews = rs
		}
	}
	d.AverageRating = reviewdom.Average(d.Reviews)
	d.ReviewCount = len(d.Reviews)
	return d, nil
}
