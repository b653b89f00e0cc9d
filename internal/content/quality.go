package content

import (
	"strings"

	"github.com/hpungsan/facet/internal/post"
)

// MinWords is the acceptance threshold on tag-stripped words.
// The strict retry raises the prompt's target, not this threshold.
const MinWords = 900

// forbiddenPhrases are matched case-insensitively as substrings.
var forbiddenPhrases = []string{
	"lorem ipsum",
	"insert",
	"generic",
	"as an ai",
	"crystal crystal",
	"in conclusion",
}

// QualityReport explains a gate decision.
type QualityReport struct {
	Acceptable bool
	WordCount  int
	MinWords   int
	TooShort   bool
	Forbidden  []string // forbidden phrases found, in table order
}

// Evaluate applies the quality gate to rendered HTML (or plain text).
// Words are counted on visible text; phrases are matched on the raw input.
func Evaluate(text string) *QualityReport {
	visible := post.StripTags(text)
	report := &QualityReport{
		Acceptable: true,
		WordCount:  len(strings.Fields(visible)),
		MinWords:   MinWords,
	}

	if report.WordCount < MinWords {
		report.TooShort = true
		report.Acceptable = false
	}

	lower := strings.ToLower(text)
	for _, phrase := range forbiddenPhrases {
		if strings.Contains(lower, phrase) {
			report.Forbidden = append(report.Forbidden, phrase)
		}
	}
	if len(report.Forbidden) > 0 {
		report.Acceptable = false
	}

	return report
}

// IsAcceptable reports whether text passes the quality gate.
func IsAcceptable(text string) bool {
	return Evaluate(text).Acceptable
}

// ForbiddenPhrases returns a copy of the rejected phrase list.
func ForbiddenPhrases() []string {
	out := make([]string, len(forbiddenPhrases))
	copy(out, forbiddenPhrases)
	return out
}
