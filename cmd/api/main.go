package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piczmar/pure-go-rest-api/internal/config"
	"github.com/piczmar/pure-go-rest-api/internal/server"
	"github.com/piczmar/pure-go-rest-api/internal/users"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// 1. Load configuration from the environment.
	cfg := config.Load()
	log.Printf("config: listen=%s auth=%s unique_logins=%t",
		cfg.ListenAddr, cfg.AuthMode, cfg.UniqueLogins)

	// 2. Build the user store and service. All state is in-process and is
	// lost on restart.
	var opts []users.StoreOption
	if cfg.UniqueLogins {
		opts = append(opts, users.WithUniqueLogins())
	}
	store := users.NewStore(opts...)
	encoder := users.NewBcryptEncoder(cfg.BcryptCost)
	svc := users.NewService(store, encoder)

	// 3. Set up the chi router with all handlers.
	handler := server.New(cfg, svc, encoder)

	// 4. Start the HTTP server.
	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}

	log.Println("server stopped")
}
