package middleware

import (
	"net/http"

	"github.com/agrisense-io/agrisense-backend/api/responses"
	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	"github.com/agrisense-io/agrisense-backend/pkg/logger"
)

// RequireRoles allows the request through only when the caller's role is in
// the allowed set. Runs after Auth.
func RequireRoles(logg *logger.Logger, roles ...enums.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[string(role)] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowed[RoleFromContext(r.Context())]; !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "Access denied: insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
