// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// CartHandler:
//
//	GET    /me/cart
//	POST   /me/cart/items           {"productId","size","quantity"}
//	DELETE /me/cart/items/{lineId}
type CartHandler struct {
	UC *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{UC: uc}
}

type addCartLineRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	path := strings.TrimSuffix(r.URL.Path, "/")
	segs := pathSegments(path, "/me/cart")

	switch {
	case len(segs) == 0 && r.Method == http.MethodGet:
		view, err := h.UC.Get(r.Context(), s)
		if err != nil {
			writeDomainError(w, "cart_handler", err)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case len(segs) == 1 && segs[0] == "items" && r.Method == http.MethodPost:
		var req addCartLineRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		line, err := h.UC.AddLine(r.Context(), s, req.ProductID, req.Size, req.Quantity)
		if err != nil {
			writeDomainError(w, "cart_handler", err)
			return
		}
		log.Printf("[cart_handler] added line=%s uid=%s", line.ID, s.UID)
		writeJSON(w, http.StatusCreated, line)

	case len(segs) == 2 && segs[0] == "items" && r.Method == http.MethodDelete:
		if err := h.UC.RemoveLine(r.Context(), s, segs[1]); err != nil {
			writeDomainError(w, "cart_handler", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	case len(segs) == 0 || (segs[0] == "items" && len(segs) <= 2):
		methodNotAllowed(w)
	default:
		notFound(w)
	}
}
