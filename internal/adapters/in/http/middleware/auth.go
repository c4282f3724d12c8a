// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// TokenVerifier is satisfied by *auth.Client from the Firebase Admin SDK.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// SessionResolver turns a verified uid into the server-side session.
type SessionResolver interface {
	ResolveSession(ctx context.Context, uid, email string) (usecase.Session, error)
}

// AuthMiddleware verifies
//
//   - Authorization: Bearer <ID_TOKEN>
//
// loads the caller's profile and stores the resulting usecase.Session in
// the request context. Role and store come from the profile, never from
// the token or the request.
type AuthMiddleware struct {
	Verifier TokenVerifier
	Sessions SessionResolver
}

// Handler rejects requests without a valid token and profile.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.Verifier == nil || m.Sessions == nil {
			writeAuthError(w, http.StatusServiceUnavailable, "auth middleware not initialized")
			return
		}

		idToken := bearerToken(r)
		if idToken == "" {
			writeAuthError(w, http.StatusUnauthorized, "unauthorized: missing bearer token")
			return
		}

		s, status, msg := m.resolve(r.Context(), idToken)
		if status != 0 {
			log.Printf("[auth] %s %s rejected status=%d msg=%s", r.Method, r.URL.Path, status, msg)
			writeAuthError(w, status, msg)
			return
		}

		next.ServeHTTP(w, r.WithContext(usecase.WithSession(r.Context(), s)))
	})
}

// Optional attaches a session when a valid token is present and passes
// anonymous requests through unchanged.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idToken := bearerToken(r)
		if idToken == "" || m == nil || m.Verifier == nil || m.Sessions == nil {
			next.ServeHTTP(w, r)
			return
		}
		if s, status, _ := m.resolve(r.Context(), idToken); status == 0 {
			r = r.WithContext(usecase.WithSession(r.Context(), s))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) resolve(ctx context.Context, idToken string) (usecase.Session, int, string) {
	token, err := m.Verifier.VerifyIDToken(ctx, idToken)
	if err != nil || token == nil {
		return usecase.Session{}, http.StatusUnauthorized, "invalid token"
	}

	uid := strings.TrimSpace(token.UID)
	if uid == "" {
		return usecase.Session{}, http.StatusUnauthorized, "invalid uid in token"
	}

	email := ""
	if raw, ok := token.Claims["email"]; ok {
		if e, ok2 := raw.(string); ok2 {
			email = strings.TrimSpace(e)
		}
	}

	s, err := m.Sessions.ResolveSession(ctx, uid, email)
	if err != nil {
		if errors.Is(err, userdom.ErrNotFound) {
			return usecase.Session{}, http.StatusForbidden, "profile not found"
		}
		log.Printf("[auth] resolve session uid=%s err=%v", uid, err)
		return usecase.Session{}, http.StatusInternalServerError, "session lookup failed"
	}
	return s, 0, ""
}

// bearerToken reads the Authorization header. Browsers cannot set headers
// on a websocket handshake, so upgrades may pass ?access_token= instead.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		return strings.TrimSpace(r.URL.Query().Get("access_token"))
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
