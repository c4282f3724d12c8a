// internal/adapters/in/http/handlers/manager_order_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// ManagerOrderHandler is a store's order queue:
//
//	GET   /manager/orders?status=
//	PATCH /manager/orders/{orderId}/sub-orders/{subOrderId}  {"status":"Shipped"}
type ManagerOrderHandler struct {
	UC *usecase.OrderUsecase
}

func NewManagerOrderHandler(uc *usecase.OrderUsecase) *ManagerOrderHandler {
	return &ManagerOrderHandler{UC: uc}
}

type updateSubOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *ManagerOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	segs := pathSegments(strings.TrimSuffix(r.URL.Path, "/"), "/manager/orders")

	switch {
	case len(segs) == 0:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		views, err := h.UC.ListForStore(r.Context(), s, r.URL.Query().Get("status"))
		if err != nil {
			writeDomainError(w, "manager_order_handler", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"subOrders": views})

	case len(segs) == 3 && segs[1] == "sub-orders":
		if r.Method != http.MethodPatch {
			methodNotAllowed(w)
			return
		}
		var req updateSubOrderStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		o, err := h.UC.UpdateSubOrderStatus(r.Context(), s, segs[0], segs[2], req.Status)
		if err != nil {
			writeDomainError(w, "manager_order_handler", err)
			return
		}
		log.Printf("[manager_order_handler] order=%s subOrder=%s status=%s store=%s", segs[0], segs[2], req.Status, s.StoreName)
		writeJSON(w, http.StatusOK, o)

	default:
		notFound(w)
	}
}
