package tszclient

import (
	"context"
	"encoding/json"
	"fmt"
)

// Management API models. These endpoints require Config.APIKey; the
// gateway rejects unauthenticated management calls with a non-2xx
// status, which surfaces here as an *APIError.

// Pattern is a regex-based detection rule.
type Pattern struct {
	ID             int     `json:"ID,omitempty" yaml:"id,omitempty"`
	Name           string  `json:"Name" yaml:"name"`
	Regex          string  `json:"Regex" yaml:"regex"`
	Description    string  `json:"Description,omitempty" yaml:"description,omitempty"`
	Category       string  `json:"Category,omitempty" yaml:"category,omitempty"`
	IsActive       bool    `json:"IsActive" yaml:"is_active"`
	BlockThreshold float64 `json:"BlockThreshold,omitempty" yaml:"block_threshold,omitempty"`
	AllowThreshold float64 `json:"AllowThreshold,omitempty" yaml:"allow_threshold,omitempty"`
	CreatedAt      string  `json:"CreatedAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt      string  `json:"UpdatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// AllowlistItem is a value ignored during detection.
type AllowlistItem struct {
	ID          int    `json:"ID,omitempty"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// BlocklistItem is a value that is strictly blocked.
type BlocklistItem struct {
	ID          int    `json:"ID,omitempty"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// FormatValidator is a dynamic validation rule. Type is one of BUILTIN,
// REGEX, SCHEMA, or AI_PROMPT.
type FormatValidator struct {
	ID               int    `json:"ID,omitempty" yaml:"id,omitempty"`
	Name             string `json:"name" yaml:"name"`
	Type             string `json:"type" yaml:"type"`
	Rule             string `json:"rule" yaml:"rule"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	ExpectedResponse string `json:"expected_response,omitempty" yaml:"expected_response,omitempty"`
}

// TemplateDefinition bundles patterns and validators into a reusable
// guardrail template.
type TemplateDefinition struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Patterns    []Pattern         `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Validators  []FormatValidator `json:"validators,omitempty" yaml:"validators,omitempty"`
}

// TemplateImportRequest is the payload for importing a template.
type TemplateImportRequest struct {
	Template TemplateDefinition `json:"template" yaml:"template"`
}

// ListPatterns returns all detection patterns.
func (c *Client) ListPatterns(ctx context.Context) ([]Pattern, error) {
	return listJSON[Pattern](ctx, c, "/patterns")
}

// CreatePattern adds a new detection pattern.
func (c *Client) CreatePattern(ctx context.Context, p Pattern) (*Pattern, error) {
	return createJSON[Pattern](ctx, c, "/patterns", p)
}

// DeletePattern removes a detection pattern by ID.
func (c *Client) DeletePattern(ctx context.Context, id int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/patterns/%d", id))
}

// ListAllowlist returns all allowlist items.
func (c *Client) ListAllowlist(ctx context.Context) ([]AllowlistItem, error) {
	return listJSON[AllowlistItem](ctx, c, "/allowlist")
}

// CreateAllowlistItem adds an item to the allowlist.
func (c *Client) CreateAllowlistItem(ctx context.Context, item AllowlistItem) (*AllowlistItem, error) {
	return createJSON[AllowlistItem](ctx, c, "/allowlist", item)
}

// DeleteAllowlistItem removes an allowlist item by ID.
func (c *Client) DeleteAllowlistItem(ctx context.Context, id int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/allowlist/%d", id))
}

// ListBlocklist returns all blocklist items.
//
// The gateway exposes the blocklist under /blacklist; the older path is
// kept on the wire for compatibility.
func (c *Client) ListBlocklist(ctx context.Context) ([]BlocklistItem, error) {
	return listJSON[BlocklistItem](ctx, c, "/blacklist")
}

// CreateBlocklistItem adds an item to the blocklist.
func (c *Client) CreateBlocklistItem(ctx context.Context, item BlocklistItem) (*BlocklistItem, error) {
	return createJSON[BlocklistItem](ctx, c, "/blacklist", item)
}

// DeleteBlocklistItem removes a blocklist item by ID.
func (c *Client) DeleteBlocklistItem(ctx context.Context, id int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/blacklist/%d", id))
}

// ListValidators returns all format validators.
func (c *Client) ListValidators(ctx context.Context) ([]FormatValidator, error) {
	return listJSON[FormatValidator](ctx, c, "/validators")
}

// CreateValidator adds a new format validator.
func (c *Client) CreateValidator(ctx context.Context, v FormatValidator) (*FormatValidator, error) {
	return createJSON[FormatValidator](ctx, c, "/validators", v)
}

// DeleteValidator removes a format validator by ID.
func (c *Client) DeleteValidator(ctx context.Context, id int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/validators/%d", id))
}

// ImportTemplate imports a guardrail template (patterns and
// validators). The gateway acknowledges with a message object, which
// the client discards.
func (c *Client) ImportTemplate(ctx context.Context, template TemplateDefinition) error {
	req := TemplateImportRequest{Template: template}
	_, err := c.postJSON(ctx, "/templates/import", req, nil)
	return err
}

// listJSON GETs a path and decodes a JSON array of T.
func listJSON[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	raw, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, NewDecodeError("failed to decode response body", err)
	}
	return items, nil
}

// createJSON POSTs a body and decodes the created entity.
func createJSON[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	raw, err := c.postJSON(ctx, path, body, nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, NewDecodeError("failed to decode response body", err)
	}
	return &out, nil
}
