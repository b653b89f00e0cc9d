package post

// Summary represents a post's metadata without the body.
// Used for list operations to reduce data transfer.
type Summary struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Excerpt          string   `json:"excerpt"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags,omitempty"`
	Status           Status   `json:"status"`
	Archetype        string   `json:"archetype,omitempty"`
	GenerationSource string   `json:"generation_source,omitempty"`
	ReadingTime      int      `json:"reading_time"`
	CreatedAt        int64    `json:"created_at"`
	PublishedAt      *int64   `json:"published_at,omitempty"`
}

// ToSummary converts a Post to a Summary by stripping the content.
func (p *Post) ToSummary() Summary {
	return Summary{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          p.Excerpt,
		Category:         p.Category,
		Tags:             p.Tags,
		Status:           p.Status,
		Archetype:        p.Archetype,
		GenerationSource: p.GenerationSource,
		ReadingTime:      p.ReadingTime,
		CreatedAt:        p.CreatedAt,
		PublishedAt:      p.PublishedAt,
	}
}
