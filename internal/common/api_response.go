package common

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"sync/atomic"

	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/logging"
)

var production atomic.Bool

// SetProduction switches error bodies to production mode: no stack, and
// internal error messages replaced by a generic one.
func SetProduction(on bool) {
	production.Store(on)
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// RespondJSON sends data as JSON with the given status.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, data)
}

// RespondError answers with the status mapped from err and an ErrorBody.
func RespondError(w http.ResponseWriter, err error) {
	RespondErrorStatus(w, StatusFor(err), err)
}

// RespondErrorStatus answers with an explicit status code.
func RespondErrorStatus(w http.ResponseWriter, statusCode int, err error) {
	body := ErrorBody{Message: constants.MsgInternal}
	if err != nil {
		body.Message = err.Error()
	}

	if statusCode >= http.StatusInternalServerError {
		logging.Error("Request failed", "status_code", statusCode, "error", body.Message)
		if production.Load() && !IsUserFacing(err) {
			body.Message = constants.MsgInternal
		}
	}
	if !production.Load() {
		body.Stack = string(debug.Stack())
	}

	writeJSON(w, statusCode, body)
}

// RespondPermissionDenied is used by role gates.
func RespondPermissionDenied(w http.ResponseWriter) {
	RespondErrorStatus(w, http.StatusForbidden, Forbidden(constants.MsgForbidden))
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
