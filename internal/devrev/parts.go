package devrev

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// GetPart fetches a part by ID and returns the unwrapped part object.
func (c *Client) GetPart(ctx context.Context, partID string) (json.RawMessage, error) {
	c.log.Info().Str("part_id", partID).Msg("getting part")

	params := url.Values{}
	params.Set("id", partID)

	return c.do(ctx, http.MethodGet, endpointPartsGet, params, nil)
}

// ListPartsParams filters a part listing.
type ListPartsParams struct {
	// PartType is one of capability, enhancement, feature, linkable,
	// runnable or product. Unknown values are forwarded anyway.
	PartType string
	// Cursor is the pagination cursor from a previous response.
	Cursor string
	// ParentPart restricts the listing to children of the given part.
	ParentPart string
}

// ListParts lists parts of the given type and returns the unwrapped parts
// array. The API validates the part type itself, so an unknown type only
// logs a warning here.
func (c *Client) ListParts(ctx context.Context, p ListPartsParams) (json.RawMessage, error) {
	if _, ok := validPartTypes[strings.ToLower(p.PartType)]; !ok {
		c.log.Warn().
			Str("part_type", p.PartType).
			Msg("invalid part type, proceeding with request")
	}

	c.log.Info().Str("part_type", p.PartType).Msg("listing parts")

	params := url.Values{}
	params.Set("type", p.PartType)
	if p.Cursor != "" {
		params.Set("cursor", p.Cursor)
	}
	if p.ParentPart != "" {
		params.Set("parent_part.parts", p.ParentPart)
	}

	return c.do(ctx, http.MethodGet, endpointPartsList, params, nil)
}
