package devrev

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListWorksParams filters a work listing. Zero-valued fields are omitted
// from the request rather than sent empty.
type ListWorksParams struct {
	// WorkType filters by work type (issue, ticket, task).
	WorkType string
	// OwnedBy filters by owner ID. The sentinel "self" resolves to the
	// client's cached identity.
	OwnedBy string
	// Limit caps the number of returned items.
	Limit int
	// AppliesToPart filters by the part the works apply to.
	AppliesToPart string
	// Cursor is the pagination cursor from a previous response.
	Cursor string
}

// ListWorks lists works matching the given filters and returns the
// unwrapped works array.
func (c *Client) ListWorks(ctx context.Context, p ListWorksParams) (json.RawMessage, error) {
	ownedBy := p.OwnedBy
	if ownedBy == "self" {
		if c.identity == nil {
			return nil, ErrNoIdentity
		}
		ownedBy = c.identity.ID
		c.log.Info().Str("owned_by", ownedBy).Msg("resolved self to current user")
	}

	c.log.Info().
		Str("work_type", p.WorkType).
		Str("owned_by", ownedBy).
		Msg("listing works")

	params := url.Values{}
	if p.WorkType != "" {
		params.Set("type", p.WorkType)
	}
	if ownedBy != "" {
		params.Set("owned_by", ownedBy)
	}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.AppliesToPart != "" {
		params.Set("applies_to_part", p.AppliesToPart)
	}
	if p.Cursor != "" {
		params.Set("cursor", p.Cursor)
	}

	return c.do(ctx, http.MethodGet, endpointWorksList, params, nil)
}

// CreateWorkParams describes a work item to create.
type CreateWorkParams struct {
	// WorkType must be issue or task.
	WorkType string
	// Title of the work.
	Title string
	// AppliesToPart is the part the work applies to; required for issues.
	AppliesToPart string
	// Body is an optional description.
	Body string
}

// CreateWork creates a new issue or task. Ownership defaults to the
// client's cached identity. Precondition failures are rejected before any
// network call and are never retried.
func (c *Client) CreateWork(ctx context.Context, p CreateWorkParams) (json.RawMessage, error) {
	if _, ok := creatableWorkTypes[p.WorkType]; !ok {
		return nil, fmt.Errorf("%w: %q, must be issue or task", ErrUnsupportedWorkType, p.WorkType)
	}
	if p.WorkType == "issue" && p.AppliesToPart == "" {
		return nil, ErrPartRequired
	}

	c.log.Info().
		Str("work_type", p.WorkType).
		Str("title", p.Title).
		Msg("creating work")

	ownedBy := []string{}
	if c.identity != nil {
		ownedBy = []string{c.identity.ID}
	}

	payload := map[string]any{
		"type":     p.WorkType,
		"title":    p.Title,
		"owned_by": ownedBy,
	}
	if p.AppliesToPart != "" {
		payload["applies_to_part"] = p.AppliesToPart
	}
	if p.Body != "" {
		payload["body"] = p.Body
	}

	return c.do(ctx, http.MethodPost, endpointWorksCreate, nil, payload)
}

// UpdateWorkParams describes a partial update of a work item. Nil fields
// are left untouched; only supplied fields enter the request payload.
type UpdateWorkParams struct {
	Title         *string
	AppliesToPart *string
	Body          *string
	Stage         *string
	Status        *string
}

// UpdateWork applies a partial update to the work with the given ID and
// returns the updated work object.
func (c *Client) UpdateWork(ctx context.Context, workID string, p UpdateWorkParams) (json.RawMessage, error) {
	c.log.Info().Str("work_id", workID).Msg("updating work")

	payload := map[string]any{
		"id": workID,
	}
	if p.Title != nil {
		payload["title"] = *p.Title
	}
	if p.AppliesToPart != nil {
		payload["applies_to_part"] = *p.AppliesToPart
	}
	if p.Body != nil {
		payload["body"] = *p.Body
	}
	if p.Stage != nil {
		payload["stage"] = *p.Stage
	}
	if p.Status != nil {
		payload["status"] = *p.Status
	}

	return c.do(ctx, http.MethodPost, endpointWorksUpdate, nil, payload)
}
