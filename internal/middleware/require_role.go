package middleware

import (
	"net/http"

	"helping-hands/volunteerhub/internal/auth"
	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
)

// RequireRole lets a request through only when its identity has one of roles.
// Anonymous callers and other roles get 403.
func RequireRole(roles ...constants.Role) func(http.Handler) http.Handler {
	allowed := make(map[constants.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.GetIdentity(r.Context())
			if !ok {
				common.RespondPermissionDenied(w)
				return
			}
			if _, permitted := allowed[id.Role]; !permitted {
				common.RespondPermissionDenied(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
