package devrev

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// searchLimit is the fixed number of results per search.
const searchLimit = 10

// Search searches DevRev for objects matching the query within the given
// namespace. Unknown namespaces silently fall back to issue. The result is
// the unwrapped results array.
func (c *Client) Search(ctx context.Context, query, namespace string) (json.RawMessage, error) {
	normalized := normalizeNamespace(namespace)
	if normalized != namespace {
		c.log.Warn().
			Str("namespace", namespace).
			Msg("invalid namespace, defaulting to issue")
	}

	c.log.Info().
		Str("query", query).
		Str("namespace", normalized).
		Msg("searching")

	params := url.Values{}
	params.Set("query", query)
	params.Set("namespaces", searchNamespaces[normalized])
	params.Set("limit", strconv.Itoa(searchLimit))

	return c.do(ctx, http.MethodGet, endpointSearch, params, nil)
}
