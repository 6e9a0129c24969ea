// Package middleware holds the HTTP middleware of the API: authentication,
// admin gating, request logging, and metrics.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// userIDHeader carries the authenticated user ID, set by the auth gateway in
// front of this service.
const userIDHeader = "X-User-ID"

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"
)

// StaffReader is the slice of staff storage the admin gate needs.
type StaffReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
}

// Logger is the logging interface of the middleware.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth requires a valid X-User-ID header and puts the user ID in the context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid user identity")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuth builds on Auth: the authenticated user must be a staff member
// with the admin role. The admin flag is stored in the context for handlers
// that relax ownership checks for admins.
func AdminAuth(staff StaffReader, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
				return
			}

			member, err := staff.GetByID(r.Context(), userID)
			if err != nil || !member.IsAdmin() {
				if err != nil {
					log.Warn("middleware: AdminAuth - staff lookup failed for user=%s: %v", userID, err)
				}
				handlers.RespondForbidden(w, "admin access required")
				return
			}

			ctx := context.WithValue(r.Context(), isAdminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user ID.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// IsAdminFromContext reports whether the request passed the admin gate.
func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}
