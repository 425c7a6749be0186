// Package amadeus is the outbound client for the flight-offer aggregator:
// OAuth2 token lifecycle, retry with backoff, and the three endpoints the
// service consumes (offer search, airport lookup, seat maps).
package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrUnavailable marks upstream failures that persisted through retries.
var ErrUnavailable = errors.New("aggregator unavailable")

// tokenExpirySkew refreshes the token slightly before the upstream deadline
// so in-flight requests never carry an expired token.
const tokenExpirySkew = 30 * time.Second

const initialBackoff = 80 * time.Millisecond

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	MaxRetries   int
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int

	mu           sync.Mutex
	clientID     string
	clientSecret string
	token        string
	tokenExpiry  time.Time
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		maxRetries:   cfg.MaxRetries,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

// SetCredentials swaps the API credentials and invalidates the cached token,
// forcing re-acquisition on the next call.
func (c *Client) SetCredentials(clientID, clientSecret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientID = clientID
	c.clientSecret = clientSecret
	c.token = ""
	c.tokenExpiry = time.Time{}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// ensureToken returns a valid bearer token, acquiring one on first use.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySkew)) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	c.token = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return c.token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.tokenExpiry = time.Time{}
	c.mu.Unlock()
}

// do performs an authenticated request with retry. A 401 invalidates the
// cached token and retries once with a fresh one; 429 and 5xx responses are
// retried with exponential backoff up to maxRetries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	backoff := initialBackoff
	refreshed := false
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		token, err := c.ensureToken(ctx)
		if err != nil {
			return err
		}

		var reader io.Reader
		if bodyBytes != nil {
			reader = bytes.NewReader(bodyBytes)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if bodyBytes != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else {
			done, err := c.handleResponse(resp, out, &refreshed)
			if done {
				return err
			}
			lastErr = err
		}

		if attempt == c.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, lastErr)
}

// handleResponse decodes terminal responses and classifies the rest as
// retryable. done=true means the caller must stop (success or permanent
// failure).
func (c *Client) handleResponse(resp *http.Response, out any, refreshed *bool) (done bool, err error) {
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return true, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return true, fmt.Errorf("decode response: %w", err)
		}
		return true, nil

	case resp.StatusCode == http.StatusUnauthorized:
		c.invalidateToken()
		if *refreshed {
			return true, fmt.Errorf("unauthorized after token refresh")
		}
		*refreshed = true
		return false, fmt.Errorf("unauthorized")

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return false, fmt.Errorf("upstream returned %d", resp.StatusCode)

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return true, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
