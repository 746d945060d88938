package devrev

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// objectEndpoint routes an object ID to the endpoint that can serve it,
// based purely on the ID's literal prefix. Work-like prefixes (ISS-, TKT-,
// ART-) go to /works.get; user prefixes (DEVU-, the literal SELF) go to
// /dev-users.get. Anything else is rejected before any network call.
func objectEndpoint(objectID string) (string, error) {
	switch {
	case strings.HasPrefix(objectID, "ISS-"),
		strings.HasPrefix(objectID, "TKT-"),
		strings.HasPrefix(objectID, "ART-"):
		return endpointWorksGet, nil
	case objectID == "SELF", strings.HasPrefix(objectID, "DEVU-"):
		return endpointDevUsersGet, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedObjectID, objectID)
	}
}

// GetObject fetches any DevRev object by its display ID (e.g. ISS-123,
// TKT-456). The object type is inferred from the ID prefix.
func (c *Client) GetObject(ctx context.Context, objectID string) (json.RawMessage, error) {
	c.log.Info().Str("object_id", objectID).Msg("getting object")

	endpoint, err := objectEndpoint(objectID)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("id", objectID)

	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}
