package devrev

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DevRev API endpoint paths.
const (
	endpointSearch      = "/search.core"
	endpointWorksGet    = "/works.get"
	endpointWorksList   = "/works.list"
	endpointWorksCreate = "/works.create"
	endpointWorksUpdate = "/works.update"
	endpointPartsGet    = "/parts.get"
	endpointPartsList   = "/parts.list"
	endpointDevUsersGet = "/dev-users.get"
	endpointDevUserSelf = "/dev-users.self"
)

// DefaultBaseURL is the production DevRev API.
const DefaultBaseURL = "https://api.devrev.ai"

// DefaultTimeout is the per-request timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// envelopeKeys maps endpoints to the wrapper key in their response body
// that holds the actual payload.
var envelopeKeys = map[string]string{
	endpointSearch:      "results",
	endpointWorksList:   "works",
	endpointWorksCreate: "work",
	endpointWorksUpdate: "work",
	endpointPartsGet:    "part",
	endpointPartsList:   "parts",
}

// Client is the DevRev API client. The token and cached identity are set
// at construction and never mutated, so a single Client may be shared by
// concurrent tool invocations.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retry      *RetryConfig
	identity   *Identity
	log        zerolog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the number of retries for API calls.
func WithRetries(count int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = count
	}
}

// WithRetryConfig replaces the retry configuration entirely.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithIdentity sets the authenticated user, used to resolve the "self"
// owner sentinel and to default ownership on created works.
func WithIdentity(identity *Identity) Option {
	return func(c *Client) {
		c.identity = identity
	}
}

// WithLogger sets the logger. By default the client is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a new DevRev API client.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry: DefaultRetryConfig(),
		log:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Identity returns the authenticated user, or nil if none was provided.
func (c *Client) Identity() *Identity {
	return c.identity
}

// do executes a request against the DevRev API with retry and exponential
// backoff, then unwraps the endpoint's response envelope. Only GET and POST
// are supported; anything else is a programmer error and is rejected before
// any network call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	switch method {
	case http.MethodGet, http.MethodPost:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		c.log.Debug().
			Str("method", method).
			Str("endpoint", path).
			Int("attempt", attempt+1).
			Msg("devrev request")

		raw, err := c.attempt(ctx, method, path, query, payload)
		if err == nil {
			return unwrapEnvelope(path, raw), nil
		}

		if attempt >= c.retry.MaxRetries {
			apiErr := classifyError(err)
			c.log.Error().
				Str("method", method).
				Str("endpoint", path).
				Int("status", apiErr.StatusCode).
				Msg(apiErr.Message)
			return nil, apiErr
		}

		backoff := c.retry.Delay(attempt + 1)
		c.log.Warn().
			Str("method", method).
			Str("endpoint", path).
			Dur("backoff", backoff).
			Err(err).
			Msg("request failed, retrying")

		if werr := c.retry.Wait(ctx, attempt+1); werr != nil {
			return nil, classifyError(err)
		}
	}
}

// attempt performs a single HTTP round trip. A non-2xx status is returned
// as a *statusError so the retry loop and classifier can see the response.
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, payload []byte) (json.RawMessage, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return json.RawMessage(data), nil
}

// unwrapEnvelope strips the endpoint's known envelope key from the parsed
// body. An absent key yields an empty value of the matching shape, so
// callers always receive valid JSON. Endpoints without a known envelope
// return the body unchanged.
func unwrapEnvelope(path string, raw json.RawMessage) json.RawMessage {
	key, ok := envelopeKeys[path]
	if !ok {
		return raw
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}

	if inner, ok := envelope[key]; ok {
		return inner
	}

	switch key {
	case "results", "works", "parts":
		return json.RawMessage("[]")
	default:
		return json.RawMessage("{}")
	}
}
