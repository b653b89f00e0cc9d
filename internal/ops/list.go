package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/db"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/post"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Status    string // optional: draft, review, published
	Archetype string // optional; aliases accepted
	Limit     int    // default: 20, max: 100
	Offset    int    // default: 0
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []post.Summary `json:"items"`
	Pagination Pagination     `json:"pagination"`
	Sort       string         `json:"sort"`
}

// List retrieves post summaries, newest first, with optional filters.
func List(ctx context.Context, database *sql.DB, input ListInput) (*ListOutput, error) {
	var filters db.ListFilters

	if s := strings.ToLower(strings.TrimSpace(input.Status)); s != "" {
		status := post.Status(s)
		if !status.Valid() {
			return nil, errors.NewInvalidRequest("status must be one of: draft, review, published")
		}
		filters.Status = status
	}
	if a := strings.TrimSpace(input.Archetype); a != "" {
		t, err := content.Lookup(a)
		if err != nil {
			return nil, err
		}
		filters.Archetype = string(t.Archetype)
	}

	// Apply limit defaults and bounds
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	offset := max(input.Offset, 0)

	summaries, total, err := db.ListPosts(ctx, database, filters, limit, offset)
	if err != nil {
		return nil, err
	}

	// Ensure we return an empty array rather than nil
	if summaries == nil {
		summaries = []post.Summary{}
	}

	return &ListOutput{
		Items: summaries,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(summaries) < total,
			Total:   total,
		},
		Sort: "created_at_desc",
	}, nil
}
