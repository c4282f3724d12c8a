// internal/adapters/in/http/handlers/review_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// ReviewHandler: PUT /me/reviews/{productId} {"rating":4.5,"comment":"..."}
type ReviewHandler struct {
	UC *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{UC: uc}
}

type submitReviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (h *ReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segs := pathSegments(strings.TrimSuffix(r.URL.Path, "/"), "/me/reviews")
	if len(segs) != 1 {
		notFound(w)
		return
	}
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req submitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rv, err := h.UC.Submit(r.Context(), s, segs[0], req.Rating, req.Comment)
	if err != nil {
		writeDomainError(w, "review_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}
