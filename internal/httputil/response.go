package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrInvalidBody is returned by DecodeJSON for a body that is not valid JSON.
var ErrInvalidBody = errors.New("invalid request body")

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError writes an error response in JSON format
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		code = http.StatusInternalServerError
		response = []byte(`{"error":"Internal Server Error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// NotFound is the fallback handler for unmatched routes and methods.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	RespondWithError(w, http.StatusNotFound, "Not Found")
}

// DecodeJSON decodes the request body into dst. An empty body decodes as {}
// and leaves dst untouched.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return ErrInvalidBody
	}
	return nil
}
