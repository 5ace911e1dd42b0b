package breeze

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client pointed at a test server, bypassing the
// production URL validation in NewClient.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return &Client{
		baseURL:    serverURL,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     zerolog.Nop(),
	}
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			baseURL: "https://mychurch.breezechms.com",
			apiKey:  "test-key",
			wantErr: false,
		},
		{
			name:    "trailing slash trimmed",
			baseURL: "https://mychurch.breezechms.com/",
			apiKey:  "test-key",
			wantErr: false,
		},
		{
			name:    "missing URL",
			baseURL: "",
			apiKey:  "test-key",
			wantErr: true,
			errMsg:  "base URL is required",
		},
		{
			name:    "http scheme rejected",
			baseURL: "http://mychurch.breezechms.com",
			apiKey:  "test-key",
			wantErr: true,
			errMsg:  "must use https",
		},
		{
			name:    "wrong domain rejected",
			baseURL: "https://mychurch.example.com",
			apiKey:  "test-key",
			wantErr: true,
			errMsg:  "must end in .breezechms.com",
		},
		{
			name:    "missing API key",
			baseURL: "https://mychurch.breezechms.com",
			apiKey:  "",
			wantErr: true,
			errMsg:  "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.apiKey, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "https://mychurch.breezechms.com", client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
			assert.False(t, client.DryRun())
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("https://mychurch.breezechms.com", "test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("default timeout", func(t *testing.T) {
		client, err := NewClient("https://mychurch.breezechms.com", "test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("https://mychurch.breezechms.com", "test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with dry run", func(t *testing.T) {
		client, err := NewClient("https://mychurch.breezechms.com", "test-key", logger, WithDryRun(true))
		require.NoError(t, err)
		assert.True(t, client.DryRun())
	})
}

func TestRequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListPeople(context.Background(), PeopleOptions{})
	require.NoError(t, err)
}

func TestErrorPayloads(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "error string",
			body:    `{"error": "bad key"}`,
			wantErr: true,
			errMsg:  "bad key",
		},
		{
			name:    "error code",
			body:    `{"errorCode": 400, "errorDescription": "missing parameter"}`,
			wantErr: true,
			errMsg:  "missing parameter",
		},
		{
			name:    "falsy error ignored",
			body:    `{"error": false, "id": "1"}`,
			wantErr: false,
		},
		{
			name:    "empty error ignored",
			body:    `{"error": "", "errorCode": 0}`,
			wantErr: false,
		},
		{
			name:    "plain object succeeds",
			body:    `{"id": "1"}`,
			wantErr: false,
		},
		{
			name:    "boolean body succeeds",
			body:    `true`,
			wantErr: false,
		},
		{
			name:    "invalid JSON fails",
			body:    `{not json`,
			wantErr: true,
			errMsg:  "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.get(context.Background(), "/api/people", nil)

			if tt.wantErr {
				require.Error(t, err)
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.get(context.Background(), "/api/people", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.True(t, apiErr.IsUnauthorized())
	assert.False(t, apiErr.IsNotFound())
}

func TestTransportFailure(t *testing.T) {
	// Point at a closed server to force a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.get(context.Background(), "/api/people", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotNil(t, apiErr.Err)
}

func TestDryRunSkipsNetwork(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.dryRun = true

	ctx := context.Background()

	people, err := client.ListPeople(ctx, PeopleOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, people)

	person, err := client.GetPersonDetails(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, &Person{}, person)

	require.NoError(t, client.CheckInPerson(ctx, "123", "456"))

	paymentID, err := client.AddContribution(ctx, ContributionParams{PersonID: "123"})
	require.NoError(t, err)
	assert.Empty(t, paymentID)

	funds, err := client.ListFunds(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, funds)

	assert.Equal(t, int64(0), requests.Load(), "dry run must not hit the network")
}

func TestDryRunStillValidatesArguments(t *testing.T) {
	client := newTestClient(t, "http://unused")
	client.dryRun = true

	err := client.CheckInPerson(context.Background(), "123", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.AddContribution(context.Background(), ContributionParams{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTestConnection(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/people", r.URL.Path)
			assert.Equal(t, "limit=1", r.URL.RawQuery)
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		require.NoError(t, client.TestConnection(context.Background()))
	})

	t.Run("bad key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errorCode": 403, "errorDescription": "invalid api key"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		err := client.TestConnection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api key")
	})
}
