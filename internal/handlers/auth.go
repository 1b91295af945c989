package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piczmar/pure-go-rest-api/internal/apperr"
	"github.com/piczmar/pure-go-rest-api/internal/middleware"
)

// AuthHandler issues bearer tokens for verified credentials.
type AuthHandler struct {
	verifier middleware.CredentialVerifier
	secret   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(verifier middleware.CredentialVerifier, secret string) *AuthHandler {
	return &AuthHandler{verifier: verifier, secret: secret}
}

// Routes registers auth routes on the given chi router.
func (h *AuthHandler) Routes(r chi.Router) {
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, apperr.NewMethodNotAllowed(fmt.Sprintf("method %s is not allowed", r.Method)))
	})
	r.Post("/token", h.Token)
}

type tokenRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token handles POST /api/auth/token: it verifies the credential pair and
// answers with a signed bearer token for use against bearer-gated routes.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, apperr.NewInvalidRequest(err))
		return
	}

	if !h.verifier.Verify(req.Login, req.Password) {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
		return
	}

	token, err := middleware.GenerateToken(h.secret, req.Login)
	if err != nil {
		RespondError(w, fmt.Errorf("generate token: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
