// middleware/logging.go
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"helping-hands/volunteerhub/internal/common"
	reqctx "helping-hands/volunteerhub/internal/context"
	"helping-hands/volunteerhub/internal/logging"
)

// Recoverer turns a handler panic into a logged 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logging.Error("Handler panic",
				"request_id", reqctx.GetRequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()),
			)
			common.RespondErrorStatus(w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
