package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Auth modes for the greeting endpoint.
const (
	AuthModeBasic  = "basic"
	AuthModeBearer = "bearer"
	AuthModeNone   = "none"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	ListenAddr   string // HTTP listen address
	AuthMode     string // auth mode for /api/hello: basic, bearer or none
	BasicRealm   string // Basic auth realm
	BasicUser    string // Basic auth login
	BasicPass    string // Basic auth password
	JWTSecret    string // HMAC secret for bearer tokens
	UniqueLogins bool   // reject duplicate logins instead of overwriting
	BcryptCost   int    // bcrypt cost for password encoding
}

// Load reads configuration from environment variables, falling back to
// defaults. A .env file in the working directory is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:   envOrDefault("LISTEN_ADDR", ":8000"),
		AuthMode:     envOrDefault("AUTH_MODE", AuthModeBasic),
		BasicRealm:   envOrDefault("BASIC_AUTH_REALM", "myrealm"),
		BasicUser:    envOrDefault("BASIC_AUTH_USER", "admin"),
		BasicPass:    envOrDefault("BASIC_AUTH_PASS", "admin"),
		JWTSecret:    envOrDefault("JWT_SECRET", "dev-only-secret"),
		UniqueLogins: envOrDefaultBool("UNIQUE_LOGINS", false),
		BcryptCost:   envOrDefaultInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
