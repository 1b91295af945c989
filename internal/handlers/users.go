package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piczmar/pure-go-rest-api/internal/apperr"
	"github.com/piczmar/pure-go-rest-api/internal/users"
)

// UserService is the part of the user service the registration endpoint
// needs.
type UserService interface {
	Create(nu users.NewUser) (string, error)
}

// UsersHandler provides the registration endpoint.
type UsersHandler struct {
	service UserService
	encoder users.PasswordEncoder
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(service UserService, encoder users.PasswordEncoder) *UsersHandler {
	return &UsersHandler{service: service, encoder: encoder}
}

// Routes registers the user routes on the given chi router. Unsupported
// methods get a translated 405 JSON error.
func (h *UsersHandler) Routes(r chi.Router) {
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, apperr.NewMethodNotAllowed(fmt.Sprintf("method %s is not allowed", r.Method)))
	})
	r.Post("/register", h.Register)
}

// registrationRequest is the wire input. Unknown fields are rejected.
type registrationRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// registrationResponse is the wire output.
type registrationResponse struct {
	ID string `json:"id"`
}

// Register handles POST /api/users/register: it decodes the body under the
// strict schema, encodes the password, persists the user and answers 201
// with the generated id. Any failure is terminal for the request and goes
// straight to the error translator.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRegistration(r)
	if err != nil {
		RespondError(w, apperr.NewInvalidRequest(err))
		return
	}

	encoded, err := h.encoder.Encode(req.Password)
	if err != nil {
		RespondError(w, fmt.Errorf("encode password: %w", err))
		return
	}

	id, err := h.service.Create(users.NewUser{Login: req.Login, Password: encoded})
	if err != nil {
		if errors.Is(err, users.ErrDuplicateLogin) {
			RespondError(w, apperr.NewInvalidRequest(err))
			return
		}
		RespondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registrationResponse{ID: id})
}

// decodeRegistration parses the body under the strict schema: unknown
// fields, trailing data and malformed JSON are all rejected.
func decodeRegistration(r *http.Request) (registrationRequest, error) {
	var req registrationRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return registrationRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return registrationRequest{}, errors.New("unexpected data after JSON body")
	}
	return req, nil
}
