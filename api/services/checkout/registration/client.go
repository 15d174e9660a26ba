package registration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Apps Script deployments cold-start slowly, so the register call gets a
// generous budget while the connectivity probe stays short.
const (
	registerTimeout = 30 * time.Second
	probeTimeout    = 10 * time.Second
)

// Sale is the record forwarded to the spreadsheet registration script.
type Sale struct {
	Email     string
	Name      string
	Licenses  int64
	SessionID string
	Amount    int64
	PlanName  string
	Affiliate string
}

// ProbeResult reports the outcome of a connectivity check against the script.
type ProbeResult struct {
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// Client talks to the Google Apps Script registration endpoint.
type Client struct {
	scriptURL string
	token     string
	http      *http.Client
}

// New returns a Client for the given script deployment URL and shared token.
func New(scriptURL, token string) *Client {
	return &Client{
		scriptURL: scriptURL,
		token:     token,
		http:      &http.Client{Timeout: registerTimeout},
	}
}

// scriptResponse is the JSON body the script returns.
type scriptResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterSale forwards one sale to the script. Best effort: callers treat any
// returned error as non-fatal and must not retry.
func (c *Client) RegisterSale(ctx context.Context, sale Sale) error {
	u, err := url.Parse(c.scriptURL)
	if err != nil {
		return fmt.Errorf("invalid script URL: %w", err)
	}
	q := u.Query()
	q.Set("action", "register_sale")
	q.Set("token", c.token)
	q.Set("email", sale.Email)
	q.Set("name", sale.Name)
	q.Set("licenses", strconv.FormatInt(sale.Licenses, 10))
	q.Set("session_id", sale.SessionID)
	q.Set("amount", strconv.FormatInt(sale.Amount, 10))
	q.Set("plan", sale.PlanName)
	if sale.Affiliate != "" {
		q.Set("affiliate", sale.Affiliate)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("registration request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading registration response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("registration returned status %d", resp.StatusCode)
	}

	var parsed scriptResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Success {
			return nil
		}
		return fmt.Errorf("registration rejected: %s", parsed.Message)
	}
	// Apps Script sometimes answers with an HTML interstitial; accept any body
	// that still mentions success.
	if strings.Contains(strings.ToLower(string(body)), "success") {
		return nil
	}
	return fmt.Errorf("unexpected registration response: %s", snippet(string(body)))
}

// Ping checks that the script deployment answers at all.
func (c *Client) Ping(ctx context.Context) (ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scriptURL, nil)
	if err != nil {
		return ProbeResult{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return ProbeResult{}, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return ProbeResult{Reachable: true, StatusCode: resp.StatusCode, Body: snippet(string(body))}, nil
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 200 {
		return s
	}
	cut := 200
	// Back up to a rune boundary so the cut never splits a multi-byte rune.
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
