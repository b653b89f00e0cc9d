package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/facet/internal/db"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/post"
)

// FetchInput addresses a post by ID or slug (exactly one).
type FetchInput struct {
	ID          string
	Slug        string
	IncludeBody *bool // default: true (nil means default)
}

// FetchOutput contains the fetched post and derived metrics.
type FetchOutput struct {
	post.Post        // embedded (copy, not pointer)
	WordCount int `json:"word_count"`
}

// Fetch retrieves a post by ID or slug.
func Fetch(ctx context.Context, database *sql.DB, input FetchInput) (*FetchOutput, error) {
	id := strings.TrimSpace(input.ID)
	slug := strings.TrimSpace(input.Slug)

	if id != "" && slug != "" {
		return nil, errors.NewInvalidRequest("specify either id or slug, not both")
	}
	if id == "" && slug == "" {
		return nil, errors.NewInvalidRequest("must specify either id or slug")
	}

	var (
		p   *post.Post
		err error
	)
	if id != "" {
		p, err = db.GetPostByID(ctx, database, id)
	} else {
		p, err = db.GetPostBySlug(ctx, database, slug)
	}
	if err != nil {
		return nil, err
	}

	output := &FetchOutput{
		Post:      *p,
		WordCount: post.WordCount(p.Content),
	}

	if input.IncludeBody != nil && !*input.IncludeBody {
		output.Content = ""
	}
	return output, nil
}
