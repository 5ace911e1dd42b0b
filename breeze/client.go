package breeze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// domainSuffix is the host suffix every Breeze tenant URL carries.
	domainSuffix = ".breezechms.com"

	defaultTimeout = 30 * time.Second
)

// Client represents a Breeze API client
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	dryRun     bool
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Breeze client for the given tenant URL and API key.
// The logger is the client's only observability hook; pass zerolog.Nop() to
// silence it. Construction validates the configuration but performs no
// network I/O; use TestConnection to probe the API.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base URL %q is not a valid URL", ErrInvalidConfig, baseURL)
	}
	if u.Scheme != "https" {
		return nil, fmt.Errorf("%w: base URL must use https://", ErrInvalidConfig)
	}
	if !strings.HasSuffix(u.Host, domainSuffix) {
		return nil, fmt.Errorf("%w: base URL host must end in %s", ErrInvalidConfig, domainSuffix)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  options.userAgent,
		dryRun:     options.dryRun,
		httpClient: options.httpClient(),
		logger:     logger,
	}, nil
}

// DryRun reports whether the client suppresses network I/O.
func (c *Client) DryRun() bool {
	return c.dryRun
}

// TestConnection verifies the configured URL and API key against the live API
func (c *Client) TestConnection(ctx context.Context) error {
	var qp params
	qp.addInt("limit", 1)

	if _, err := c.get(ctx, "/api/people", &qp); err != nil {
		return fmt.Errorf("failed to connect to Breeze: %w", err)
	}
	return nil
}

// get is the single request primitive every endpoint method delegates to.
// It returns the raw response body after the error-payload check, or a nil
// body in dry-run mode.
func (c *Client) get(ctx context.Context, endpoint string, qp *params) (json.RawMessage, error) {
	requestURL := c.baseURL + endpoint
	if qp != nil {
		if encoded := qp.encode(); encoded != "" {
			requestURL += "?" + encoded
		}
	}

	if c.dryRun {
		c.logger.Debug().Str("url", requestURL).Msg("Dry run, skipping Breeze API request")
		return nil, nil
	}

	c.logger.Debug().Str("url", requestURL).Msg("Making Breeze API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := checkPayload(endpoint, body); err != nil {
		return nil, err
	}

	return body, nil
}

// checkPayload rejects bodies that fail to decode or that carry a truthy
// error/errorCode key. A bare boolean body is a success.
func checkPayload(endpoint string, body []byte) error {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return &APIError{Endpoint: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil
	}

	if msg, found := obj["error"]; found && truthy(msg) {
		return &APIError{Endpoint: endpoint, Message: fmt.Sprint(msg)}
	}
	if code, found := obj["errorCode"]; found && truthy(code) {
		apiErr := &APIError{Endpoint: endpoint, Code: fmt.Sprint(code)}
		if msg, found := obj["errorDescription"]; found {
			apiErr.Message = fmt.Sprint(msg)
		}
		return apiErr
	}

	return nil
}

// truthy mirrors the API's loose error signaling: false, 0, "" and null
// do not indicate failure.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	default:
		return true
	}
}

// decodeInto unmarshals a response body into v. A nil body (dry run) leaves
// v at its zero value.
func decodeInto(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
