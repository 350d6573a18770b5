package httpx

import (
	"fmt"
	"net/http"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the uniform client-facing error body: a human message plus a
// stable machine code.
type APIError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func NewError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// WriteError writes e as JSON with its status code.
func WriteError(w http.ResponseWriter, e *APIError) {
	WriteJSON(w, e.Status, e)
}

// NotFoundHandler answers every request with a JSON 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, NewError(http.StatusNotFound, "route_not_found", "Route not found"))
	})
}
