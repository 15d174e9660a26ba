package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nexuscopier/payments-api/api/config"
)

// Remote HTTP integration tests against a deployed backend. They run only when
// INTEGRATION_BASE_URL is configured and are skipped in -short mode.

func remoteBaseURL(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	if config.AppConfig == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			t.Skipf("skipping: config not available: %v", err)
		}
		config.AppConfig = cfg
	}
	if config.AppConfig.IntegrationBaseURL == "" {
		t.Skip("skipping: INTEGRATION_BASE_URL not set")
	}
	return config.AppConfig.IntegrationBaseURL
}

func TestHealthHTTP_Remote_Integration(t *testing.T) {
	base := remoteBaseURL(t)

	resp, err := http.Get(base + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from health probe, got %d", resp.StatusCode)
	}
}

func TestCreateCheckoutSessionHTTP_Remote_Integration(t *testing.T) {
	base := remoteBaseURL(t)

	// Send an invalid plan to assert the endpoint responds (non-200)
	payload := map[string]any{"plan": "not-a-plan"}
	b, _ := json.Marshal(payload)
	resp, err := http.Post(base+"/create-checkout-session", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid plan, got %d", resp.StatusCode)
	}
}

func TestWebhookHTTP_Remote_Integration(t *testing.T) {
	base := remoteBaseURL(t)

	// Intentionally omit Stripe-Signature header to get an error response
	req, _ := http.NewRequest(http.MethodPost, base+"/webhook", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatalf("expected non-200 when missing Stripe-Signature, got %d", resp.StatusCode)
	}
}
