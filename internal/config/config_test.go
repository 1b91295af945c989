package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/piczmar/pure-go-rest-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "AUTH_MODE", "BASIC_AUTH_REALM", "BASIC_AUTH_USER",
		"BASIC_AUTH_PASS", "JWT_SECRET", "UNIQUE_LOGINS", "BCRYPT_COST",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, config.AuthModeBasic, cfg.AuthMode)
	assert.Equal(t, "myrealm", cfg.BasicRealm)
	assert.Equal(t, "admin", cfg.BasicUser)
	assert.Equal(t, "admin", cfg.BasicPass)
	assert.False(t, cfg.UniqueLogins)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("AUTH_MODE", config.AuthModeNone)
	t.Setenv("BASIC_AUTH_USER", "root")
	t.Setenv("UNIQUE_LOGINS", "true")
	t.Setenv("BCRYPT_COST", "12")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, config.AuthModeNone, cfg.AuthMode)
	assert.Equal(t, "root", cfg.BasicUser)
	assert.True(t, cfg.UniqueLogins)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_IgnoresUnparsableValues(t *testing.T) {
	t.Setenv("UNIQUE_LOGINS", "definitely")
	t.Setenv("BCRYPT_COST", "many")

	cfg := config.Load()

	assert.False(t, cfg.UniqueLogins)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}
