package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Manojmaturi07/voteanalytics/auth"
	"github.com/Manojmaturi07/voteanalytics/models"
)

type contextKey int

const identityKey contextKey = iota

// WithIdentity resolves the caller's identity from a Bearer token and
// stores it in the request context. Requests without an Authorization
// header proceed as anonymous; a present-but-invalid token is rejected
// so a stale session never silently degrades to anonymous.
func WithIdentity(secret []byte, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next(w, r)
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization header must be a Bearer token")
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}

		ident := models.Identity{
			UserID:   claims.Subject,
			Username: claims.Username,
			Name:     claims.Name,
			Role:     claims.Role,
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, ident)))
	}
}

// IdentityFrom returns the caller's identity, or the anonymous zero
// value when none was resolved.
func IdentityFrom(r *http.Request) models.Identity {
	ident, _ := r.Context().Value(identityKey).(models.Identity)
	return ident
}

// RequireUser rejects callers without a user role context.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := IdentityFrom(r)
		if ident.IsAnonymous() {
			ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
			return
		}
		if !ident.IsUser() {
			ErrorResponse(w, http.StatusForbidden, "User access required")
			return
		}
		next(w, r)
	}
}

// RequireAuthenticated rejects anonymous callers but accepts any role.
func RequireAuthenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if IdentityFrom(r).IsAnonymous() {
			ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
			return
		}
		next(w, r)
	}
}

// RequireAdmin rejects callers without an admin role context.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := IdentityFrom(r)
		if ident.IsAnonymous() {
			ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
			return
		}
		if !ident.IsAdmin() {
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	}
}
