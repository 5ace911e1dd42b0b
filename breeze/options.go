package breeze

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout   time.Duration
	client    *http.Client
	userAgent string
	dryRun    bool
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		timeout: defaultTimeout,
	}
}

// httpClient materializes the configured HTTP client.
func (o *clientOptions) httpClient() *http.Client {
	if o.client != nil {
		return o.client
	}
	return &http.Client{Timeout: o.timeout}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client. A client set here takes
// precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.client = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithDryRun suppresses all network I/O: every method validates its
// arguments and returns an empty successful result.
func WithDryRun(dryRun bool) Option {
	return func(o *clientOptions) {
		o.dryRun = dryRun
	}
}
