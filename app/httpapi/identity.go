package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Identity headers set by the gateway.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Roles known to the API.
const (
	RoleStudent   = "student"
	RoleLibrarian = "librarian"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

type identityKey struct{}

// IdentityFrom returns the caller identity stored by the authentication middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

func withIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// authenticated rejects requests without a valid identity with 401.
func authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get(HeaderUserID))
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid caller identity")
			return
		}

		role := r.Header.Get(HeaderUserRole)
		if role != RoleStudent && role != RoleLibrarian {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid caller role")
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), Identity{UserID: userID, Role: role})))
	})
}

// requireRole must run behind authenticated, it rejects other roles with 403.
func requireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "missing caller identity")
			return
		}

		if identity.Role != role {
			writeMessage(w, http.StatusForbidden, "forbidden: requires role "+role)
			return
		}

		next.ServeHTTP(w, r)
	})
}
