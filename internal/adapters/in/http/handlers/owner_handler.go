// internal/adapters/in/http/handlers/owner_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// OwnerHandler:
//
//	GET  /owner/managers/pending
//	POST /owner/managers/{uid}/approve
type OwnerHandler struct {
	UC *usecase.AccountUsecase
}

func NewOwnerHandler(uc *usecase.AccountUsecase) *OwnerHandler {
	return &OwnerHandler{UC: uc}
}

func (h *OwnerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	segs := pathSegments(strings.TrimSuffix(r.URL.Path, "/"), "/owner/managers")

	switch {
	case len(segs) == 1 && segs[0] == "pending":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		ps, err := h.UC.ListPendingManagers(r.Context(), s)
		if err != nil {
			writeDomainError(w, "owner_handler", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"managers": ps})

	case len(segs) == 2 && segs[1] == "approve":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		p, err := h.UC.ApproveManager(r.Context(), s, segs[0])
		if err != nil {
			writeDomainError(w, "owner_handler", err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		notFound(w)
	}
}
