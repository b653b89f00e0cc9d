package ops

import (
	"strings"
	"time"

	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/post"
)

// AssembleInput is everything needed to turn an accepted draft into a post.
type AssembleInput struct {
	Draft    content.Draft
	Template content.Template
	Primary  string // value of the template's primary variable
	Slug     string
	Author   string
	Now      time.Time
}

// Assemble builds the draft-status post for an accepted draft.
// The post is never published here: Status is draft and PublishedAt is nil.
func Assemble(in AssembleInput) (*post.Post, error) {
	id, err := generateULID(in.Now)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return &post.Post{
		ID:               id,
		Title:            in.Draft.Title,
		Slug:             in.Slug,
		Content:          in.Draft.RawContent,
		Excerpt:          post.Excerpt(in.Draft.RawContent),
		Category:         in.Template.Category,
		Tags:             buildTags(in.Template.Tags, in.Primary),
		Author:           in.Author,
		Status:           post.StatusDraft,
		IsAIGenerated:    true,
		ReadingTime:      post.ReadingTime(post.WordCount(in.Draft.RawContent)),
		Keywords:         in.Draft.Keywords,
		MetaDescription:  in.Draft.MetaDescription,
		Archetype:        string(in.Template.Archetype),
		GenerationSource: string(in.Draft.Source),
		CreatedAt:        in.Now.Unix(),
	}, nil
}

// buildTags appends the lowercased primary value to the template tags, dropping duplicates.
func buildTags(fixed []string, primary string) []string {
	seen := make(map[string]bool, len(fixed)+1)
	tags := make([]string, 0, len(fixed)+1)
	for _, t := range append(append([]string{}, fixed...), primary) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}
