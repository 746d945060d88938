package devrev

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Identity is the authenticated DevRev user, obtained once at startup by
// validating the token against /dev-users.self.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`

	// Raw is the full dev_user record as returned by the API.
	Raw json.RawMessage `json:"-"`
}

// ValidateToken validates a DevRev token by requesting the current user.
// Transport failures are retried with exponential backoff, waiting
// 2^attempt seconds before each retry (1s, 2s, 4s, ...). When retries are
// exhausted it returns a nil identity with the classified error; callers
// treat that as fatal.
//
// The response's dev_user record is extracted without further shape
// validation: a missing record yields an empty Identity, not an error.
func ValidateToken(ctx context.Context, token string, opts ...Option) (*Identity, error) {
	c, err := New(token, opts...)
	if err != nil {
		return nil, err
	}
	return c.validateToken(ctx)
}

func (c *Client) validateToken(ctx context.Context) (*Identity, error) {
	for attempt := 0; ; attempt++ {
		raw, err := c.attempt(ctx, http.MethodGet, endpointDevUserSelf, nil, nil)
		if err == nil {
			c.log.Info().Msg("token validated")
			return parseIdentity(raw), nil
		}

		if attempt >= c.retry.MaxRetries {
			c.log.Error().
				Int("attempts", attempt+1).
				Err(err).
				Msg("token validation failed")
			return nil, fmt.Errorf("validate token: %w", classifyError(err))
		}

		backoff := c.retry.Delay(attempt)
		c.log.Warn().
			Dur("backoff", backoff).
			Err(err).
			Msg("token validation failed, retrying")

		if werr := c.retry.Wait(ctx, attempt); werr != nil {
			return nil, fmt.Errorf("validate token: %w", classifyError(err))
		}
	}
}

// parseIdentity extracts the nested dev_user record from the
// /dev-users.self response body.
func parseIdentity(raw json.RawMessage) *Identity {
	var envelope struct {
		DevUser json.RawMessage `json:"dev_user"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.DevUser == nil {
		return &Identity{}
	}

	identity := &Identity{Raw: envelope.DevUser}
	// Best effort: the record is forwarded even if id or display_name
	// cannot be decoded.
	_ = json.Unmarshal(envelope.DevUser, identity)
	return identity
}
