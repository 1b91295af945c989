package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piczmar/pure-go-rest-api/internal/query"
)

// defaultName is greeted when the request carries no name parameter.
const defaultName = "Anonymous"

// HelloHandler provides the greeting endpoint.
type HelloHandler struct{}

// NewHelloHandler creates a new HelloHandler.
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// Routes registers the greeting route on the given chi router. Any method
// other than GET gets a bare 405 with an empty body.
func (h *HelloHandler) Routes(r chi.Router) {
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	r.Get("/", h.Hello)
}

// Hello greets the first "name" query parameter, or Anonymous without one.
func (h *HelloHandler) Hello(w http.ResponseWriter, r *http.Request) {
	params, err := query.Parse(r.URL.RawQuery)
	if err != nil {
		RespondError(w, err)
		return
	}

	name := params.First("name", defaultName)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, fmt.Sprintf("Hello %s!", name)); err != nil {
		log.Printf("write response: %v", err)
	}
}
