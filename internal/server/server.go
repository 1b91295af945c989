package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/piczmar/pure-go-rest-api/internal/apperr"
	"github.com/piczmar/pure-go-rest-api/internal/config"
	"github.com/piczmar/pure-go-rest-api/internal/handlers"
	"github.com/piczmar/pure-go-rest-api/internal/middleware"
	"github.com/piczmar/pure-go-rest-api/internal/users"
)

// New creates a fully-configured chi router with all routes, middleware,
// and handlers wired together. The user service doubles as the credential
// verifier for the token endpoint, so registered users can obtain bearer
// tokens.
func New(cfg *config.Config, svc *users.Service, encoder users.PasswordEncoder) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondError(w, apperr.NewNotFound(fmt.Sprintf("no resource at %s", req.URL.Path)))
	})

	helloH := handlers.NewHelloHandler()
	usersH := handlers.NewUsersHandler(svc, encoder)
	authH := handlers.NewAuthHandler(svc, cfg.JWTSecret)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/hello", func(r chi.Router) {
			if gate := helloGate(cfg); gate != nil {
				r.Use(gate)
			}
			helloH.Routes(r)
		})
		r.Route("/users", usersH.Routes)
		r.Route("/auth", authH.Routes)
	})

	return r
}

// helloGate picks the auth middleware protecting the greeting endpoint, or
// nil when auth is disabled.
func helloGate(cfg *config.Config) func(http.Handler) http.Handler {
	switch cfg.AuthMode {
	case config.AuthModeBasic:
		verifier := middleware.StaticCredentials{Login: cfg.BasicUser, Password: cfg.BasicPass}
		return middleware.BasicAuth(cfg.BasicRealm, verifier)
	case config.AuthModeBearer:
		return middleware.BearerAuth(cfg.JWTSecret)
	default:
		return nil
	}
}

// requestLogger is a simple middleware that logs each HTTP request with
// method, path, status code, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %d %s",
			r.Method,
			r.URL.Path,
			status,
			time.Since(start).Round(time.Millisecond),
		)
	})
}
