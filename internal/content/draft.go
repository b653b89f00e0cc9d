package content

// Source records which path produced a draft.
type Source string

const (
	SourceAI       Source = "ai"
	SourceAIRetry  Source = "ai_retry"
	SourceFallback Source = "fallback"
)

// Draft is generated content that has not been persisted yet.
type Draft struct {
	Title           string
	RawContent      string // HTML
	Keywords        []string
	MetaDescription string
	Source          Source
}
