// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// OrderHandler is the customer's order history:
//
//	GET /me/orders?status=Processing|Shipped|...|all
//	GET /me/orders/{orderId}
type OrderHandler struct {
	UC *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{UC: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	segs := pathSegments(strings.TrimSuffix(r.URL.Path, "/"), "/me/orders")
	switch len(segs) {
	case 0:
		orders, err := h.UC.ListForCustomer(r.Context(), s, r.URL.Query().Get("status"))
		if err != nil {
			writeDomainError(w, "order_handler", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
	case 1:
		o, err := h.UC.Get(r.Context(), s, segs[0])
		if err != nil {
			writeDomainError(w, "order_handler", err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	default:
		notFound(w)
	}
}
