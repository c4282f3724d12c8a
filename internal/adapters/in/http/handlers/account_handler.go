// internal/adapters/in/http/handlers/account_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// AccountHandler:
//
//	POST   /accounts          (public registration)
//	GET    /me/profile
//	DELETE /me/account
//	POST   /me/sign-out
type AccountHandler struct {
	UC *usecase.AccountUsecase
}

func NewAccountHandler(uc *usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{UC: uc}
}

func (h *AccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")

	switch path {
	case "/accounts":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h.register(w, r)
	case "/me/profile":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		h.profile(w, r)
	case "/me/account":
		if r.Method != http.MethodDelete {
			methodNotAllowed(w)
			return
		}
		h.deleteSelf(w, r)
	case "/me/sign-out":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h.signOut(w, r)
	default:
		notFound(w)
	}
}

func (h *AccountHandler) register(w http.ResponseWriter, r *http.Request) {
	var in usecase.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.UC.Register(r.Context(), in)
	if err != nil {
		writeDomainError(w, "account_handler", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *AccountHandler) profile(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	p, err := h.UC.Profile(r.Context(), s)
	if err != nil {
		writeDomainError(w, "account_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *AccountHandler) deleteSelf(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	if err := h.UC.DeleteSelf(r.Context(), s); err != nil {
		writeDomainError(w, "account_handler", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) signOut(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	if err := h.UC.SignOut(r.Context(), s); err != nil {
		writeDomainError(w, "account_handler", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
