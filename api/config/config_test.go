package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_abc")
	t.Setenv("GOOGLE_SCRIPT_URL", "https://script.google.com/macros/s/abc/exec")
	t.Setenv("GOOGLE_SCRIPT_TOKEN", "token-abc")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)
	// Clear optional overrides that may leak in from the host environment.
	for _, v := range []string{"DOMAIN", "ALLOWED_ORIGINS", "PORT", "APP_ENV"} {
		t.Setenv(v, "")
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "https://nexuscopier.com", cfg.Domain)
	assert.Equal(t, "4242", cfg.HTTPPort)
	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, []string{"https://nexuscopier.com", "https://www.nexuscopier.com"}, cfg.Origins())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Stripe Webhook Secret")
}

func TestOrigins_TrimsAndSkipsEmpty(t *testing.T) {
	cfg := &Config{AllowedOrigins: " https://nexuscopier.com , http://localhost:3000 ,,"}
	assert.Equal(t, []string{"https://nexuscopier.com", "http://localhost:3000"}, cfg.Origins())
}
