// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
	reviewdom "github.com/daniuniv/Efficient-Clothing/internal/domain/review"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

// writeDomainError maps usecase and domain sentinels to HTTP statuses.
// Anything unknown is logged and answered with a generic 500.
func writeDomainError(w http.ResponseWriter, component string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[%s] internal error: %v", component, err)
		writeError(w, status, "internal error")
		return
	}
	log.Printf("[%s] RESP_ERROR status=%d err=%v", component, status, err)
	writeError(w, status, err.Error())
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, usecase.ErrForbidden),
		errors.Is(err, usecase.ErrNotApproved):
		return http.StatusForbidden

	case errors.Is(err, invdom.ErrNotFound),
		errors.Is(err, orderdom.ErrNotFound),
		errors.Is(err, orderdom.ErrSubOrderNotFound),
		errors.Is(err, cartdom.ErrLineNotFound),
		errors.Is(err, userdom.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, cartdom.ErrDuplicateLine),
		errors.Is(err, userdom.ErrEmailTaken),
		errors.Is(err, invdom.ErrInsufficientStock):
		return http.StatusConflict

	case errors.Is(err, orderdom.ErrEmptyCart),
		errors.Is(err, orderdom.ErrIncompleteLine):
		return http.StatusUnprocessableEntity

	case errors.Is(err, usecase.ErrInvalidArgument),
		errors.Is(err, cartdom.ErrInvalidLine),
		errors.Is(err, invdom.ErrInvalidItem),
		errors.Is(err, invdom.ErrSizeNotFound),
		errors.Is(err, orderdom.ErrInvalidAddress),
		errors.Is(err, orderdom.ErrInvalidStatus),
		errors.Is(err, orderdom.ErrInvalidCustomerID),
		errors.Is(err, userdom.ErrInvalidUID),
		errors.Is(err, userdom.ErrInvalidEmail),
		errors.Is(err, userdom.ErrInvalidRole),
		errors.Is(err, userdom.ErrStoreNameMissing),
		errors.Is(err, reviewdom.ErrInvalidRating),
		errors.Is(err, reviewdom.ErrInvalidReview),
		errors.Is(err, common.ErrInvalidRange):
		return http.StatusBadRequest

	case errors.Is(err, usecase.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// currentSession writes 401 when the request carries no session.
func currentSession(w http.ResponseWriter, r *http.Request) (usecase.Session, bool) {
	s, ok := usecase.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return usecase.Session{}, false
	}
	return s, true
}

// pathSegments splits the path after prefix into non-empty segments.
func pathSegments(path, prefix string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

func parseFloatDefault(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// parseTimeParam accepts RFC3339 or a plain date. A plain "to" date
// covers the whole day.
func parseTimeParam(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", common.ErrInvalidRange, s)
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Nanosecond)
	}
	return d.UTC(), nil
}
