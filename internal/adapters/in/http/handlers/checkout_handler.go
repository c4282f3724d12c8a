// internal/adapters/in/http/handlers/checkout_handler.go
package handlers

import (
	"net/http"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

// CheckoutHandler: POST /me/checkout {"deliveryAddress":{...}}
type CheckoutHandler struct {
	UC *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{UC: uc}
}

type checkoutRequest struct {
	DeliveryAddress orderdom.DeliveryAddress `json:"deliveryAddress"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.UC.Checkout(r.Context(), s, req.DeliveryAddress)
	if err != nil {
		writeDomainError(w, "checkout_handler", err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
