package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("API_URL", "")
		t.Setenv("HTTP_PORT", "")
		t.Setenv("CHECKOUT_CONCURRENCY", "")

		cfg := Load()
		assert.Equal(t, DefaultAPIURL, cfg.APIURL)
		assert.Equal(t, 8090, cfg.HTTPPort)
		assert.Equal(t, 4, cfg.CheckoutConcurrency)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("API_URL", "https://api.bazinga.test")
		t.Setenv("HTTP_PORT", "9000")

		cfg := Load()
		assert.Equal(t, "https://api.bazinga.test", cfg.APIURL)
		assert.Equal(t, 9000, cfg.HTTPPort)
	})

	t.Run("bad int falls back", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "not-a-port")
		assert.Equal(t, 8090, Load().HTTPPort)
	})
}
