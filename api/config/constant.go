package config

import (
	"log"
	"strings"
)

const (
	// LiveKeyPrefix identifies live-mode Stripe secret keys
	LiveKeyPrefix = "sk_live_"

	// MaxSessionPageSize bounds the page size of admin session listings
	MaxSessionPageSize = 100
)

// CheckNotLiveStripe aborts immediately if the configured Stripe key is a live-mode key.
// This should be called at the start of any test that interacts with the Stripe API.
func CheckNotLiveStripe() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.StripeSecretKey == "" {
		log.Fatal("StripeSecretKey is not configured")
	}
	if strings.HasPrefix(cfg.StripeSecretKey, LiveKeyPrefix) {
		log.Fatalf("Tests aborted: StripeSecretKey is a live key (%s prefix)", LiveKeyPrefix)
	}
}
