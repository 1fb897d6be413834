package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every infrastructure failure. It carries no detail.
type ErrorResponse struct {
	Error string `json:"error"`
}

const serverErrorMessage = "server error"

// JSON writes v as a JSON document with the given status.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// Text writes a plain-text message with the given status.
func Text(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(message))
}

// ServerError writes the generic 500 body.
func ServerError(w http.ResponseWriter) {
	JSON(w, http.StatusInternalServerError, ErrorResponse{Error: serverErrorMessage})
}

// TooManyRequests writes the 429 body used by the rate limiter.
func TooManyRequests(w http.ResponseWriter) {
	JSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
}
