// internal/adapters/in/http/handlers/catalog_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	catalog "github.com/daniuniv/Efficient-Clothing/internal/application/query/catalog"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
)

// CatalogHandler serves the public storefront:
//
//	GET /catalog?category=&size=&store=&minPrice=&maxPrice=&sort=price_asc|price_desc
//	GET /catalog/{id}
type CatalogHandler struct {
	Q *catalog.CatalogQuery
}

func NewCatalogHandler(q *catalog.CatalogQuery) *CatalogHandler {
	return &CatalogHandler{Q: q}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	path := strings.TrimSuffix(r.URL.Path, "/")

	switch segs := pathSegments(path, "/catalog"); len(segs) {
	case 0:
		h.list(w, r)
	case 1:
		h.detail(w, r, segs[0])
	default:
		notFound(w)
	}
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := catalog.Filter{
		Category:  q.Get("category"),
		Size:      q.Get("size"),
		StoreName: q.Get("store"),
		MinPrice:  parseFloatDefault(q.Get("minPrice"), 0),
		MaxPrice:  parseFloatDefault(q.Get("maxPrice"), 0),
		Sort:      common.ParseSortOrder(q.Get("sort")),
	}

	items, err := h.Q.List(r.Context(), f)
	if err != nil {
		writeDomainError(w, "catalog_handler", err)
		return
	}
	log.Printf("[catalog_handler] list category=%q size=%q store=%q -> %d", f.Category, f.Size, f.StoreName, len(items))
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *CatalogHandler) detail(w http.ResponseWriter, r *http.Request, id string) {
	d, err := h.Q.Detail(r.Context(), id)
	if err != nil {
		writeDomainError(w, "catalog_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
