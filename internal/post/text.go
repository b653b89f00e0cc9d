package post

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	// ExcerptChars is the approximate excerpt length before the ellipsis.
	ExcerptChars = 160

	// WordsPerMinute drives the reading time estimate.
	WordsPerMinute = 200
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	tagRegex        = regexp.MustCompile(`<[^>]*>`)
	nonSlugRegex    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize trims, lowercases and collapses internal whitespace.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// StripTags returns the visible text of an HTML (or plain) document.
// Text nodes are joined with spaces so adjacent block elements don't fuse words.
func StripTags(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return collapse(tagRegex.ReplaceAllString(content, " "))
	}

	var b strings.Builder
	collectText(doc.Selection, &b)
	return collapse(b.String())
}

func collectText(s *goquery.Selection, b *strings.Builder) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			b.WriteString(c.Text())
			b.WriteByte(' ')
		case "script", "style", "#comment":
		default:
			collectText(c, b)
		}
	})
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// WordCount counts whitespace-separated words after stripping tags.
func WordCount(content string) int {
	return len(strings.Fields(StripTags(content)))
}

// ReadingTime returns ceil(words / 200) minutes, never less than one.
func ReadingTime(words int) int {
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Excerpt returns roughly the first ExcerptChars characters (runes) of the
// visible text, cut back to a word boundary, followed by an ellipsis.
// Text of ExcerptChars runes or fewer is complete, so it gets no ellipsis.
func Excerpt(content string) string {
	text := StripTags(content)
	if utf8.RuneCountInString(text) <= ExcerptChars {
		return text
	}

	runes := []rune(text)[:ExcerptChars]
	if i := lastSpace(runes); i > ExcerptChars/2 {
		runes = runes[:i]
	}
	cut := strings.TrimRight(string(runes), " ,;:.-")
	return cut + "..."
}

// lastSpace returns the rune index of the last space in runes, or -1.
func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// Slugify lowercases a title and replaces every run of non-alphanumeric
// characters with a single hyphen, trimming hyphens at both ends.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
