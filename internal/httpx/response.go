// Package httpx holds the JSON request/response plumbing shared by the HTTP
// handlers: body decoding, success rendering, and the error envelope.
//
// Every error response carries a single descriptive message field; mapping
// domain errors to status codes stays in the handler packages.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrInvalidBody is returned by Decode when the request body is not valid
// JSON for the target structure.
var ErrInvalidBody = errors.New("invalid request body")

// maxBodySize caps request bodies well above any legitimate payload.
const maxBodySize = 1 << 20

type errorResponse struct {
	Message string `json:"message"`
}

// messageResponse is the confirmation body for operations with no entity to
// return, e.g. delete.
type messageResponse struct {
	Message string `json:"message"`
}

// Decode reads the request body as JSON into v.
func Decode(r *http.Request, v any) error {
	// Drain the remainder so keep-alive connections can be reused.
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	return nil
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error envelope with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorResponse{Message: message})
}

// Message writes a confirmation envelope with status 200.
func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, messageResponse{Message: message})
}
