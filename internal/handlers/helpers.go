package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/piczmar/pure-go-rest-api/internal/apperr"
)

// ErrorResponse is the wire form of a translated failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeJSON serialises v as JSON and writes it to the response with the
// given HTTP status code. An encode or write failure at this point is
// logged and swallowed; the status line is already on the wire and the
// serving loop must not be disturbed.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// RespondError is the single point where failures become HTTP responses.
// It logs the failure, picks the status from the error's kind (plain
// errors fall through to 500) and writes a {code,message} body. The
// application code mirrors the HTTP status.
func RespondError(w http.ResponseWriter, err error) {
	status := apperr.KindOf(err).HTTPStatus()
	log.Printf("request failed (%d): %v", status, err)
	writeJSON(w, status, ErrorResponse{Code: status, Message: err.Error()})
}
