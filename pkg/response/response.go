// Package response writes the storefront's JSON bodies.
//
// Successful responses are the bare resource (object or array). Handled
// errors use {"detail": "..."}; faults caught by the recovery middleware use
// {"error": true, "message": "...", "status_code": 500}.
package response

import (
	"encoding/json"
	"net/http"
)

type detail struct {
	Detail string `json:"detail"`
}

type fault struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK sends a 200 with v as the body.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Error sends {"detail": message} with status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, detail{Detail: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}

// Fault sends the catch-all 500 body used for unhandled failures.
func Fault(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, fault{
		Error:      true,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	})
}
