package post

// Status is the editorial lifecycle state of a post.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusPublished Status = "published"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished:
		return true
	}
	return false
}

// Post is a persisted blog post.
// Generated posts are always created as drafts; review and publishing happen elsewhere.
type Post struct {
	// ID is a ULID that uniquely identifies this post
	ID string `json:"id"`

	Title string `json:"title"`

	// Slug is unique among existing posts (enforced by a UNIQUE index)
	Slug string `json:"slug"`

	// Content is the rendered HTML body
	Content string `json:"content,omitempty"`

	Excerpt  string   `json:"excerpt"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
	Author   string   `json:"author"`
	Status   Status   `json:"status"`

	IsAIGenerated bool `json:"is_ai_generated"`

	// ReadingTime is the estimated reading time in minutes
	ReadingTime int `json:"reading_time"`

	Keywords        []string `json:"keywords,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`

	// Archetype is the content template the post was generated from
	Archetype string `json:"archetype,omitempty"`

	// GenerationSource is "ai", "ai_retry" or "fallback"
	GenerationSource string `json:"generation_source,omitempty"`

	// CreatedAt is the Unix timestamp when the post was created
	CreatedAt int64 `json:"created_at"`

	// PublishedAt is set only when Status is published
	PublishedAt *int64 `json:"published_at,omitempty"`
}
