package content

import (
	"regexp"
	"strings"

	"github.com/hpungsan/facet/internal/post"
)

// Heading is a Markdown heading found in a draft.
type Heading struct {
	Level int
	Text  string
	Start int // byte offset of the heading line
}

// headingPattern matches ATX headings (h1-h6) at the start of a line.
// Groups: hash symbols, heading text (trailing spaces and closing #s trimmed).
var headingPattern = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+([^\n]+?)[ \t#]*$`)

// fencePattern matches fenced code block delimiters (``` or ~~~) with 0-3 spaces of indentation.
var fencePattern = regexp.MustCompile("(?m)^[ ]{0,3}(`{3,}|~{3,})")

// fencedRanges returns [start, end) byte ranges of fenced code blocks.
// A closing fence must use the opening character and be at least as long.
func fencedRanges(text string) [][2]int {
	matches := fencePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) < 2 {
		return nil
	}

	var (
		ranges    [][2]int
		openChar  byte
		openLen   int
		openStart int
		inFence   bool
	)
	for _, m := range matches {
		fence := text[m[2]:m[3]]
		switch {
		case !inFence:
			openChar, openLen, openStart = fence[0], len(fence), m[0]
			inFence = true
		case fence[0] == openChar && len(fence) >= openLen:
			ranges = append(ranges, [2]int{openStart, m[1]})
			inFence = false
		}
	}
	return ranges
}

func insideFence(pos int, ranges [][2]int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

// ParseHeadings returns the headings of a Markdown document in order.
// Headings inside fenced code blocks are ignored.
func ParseHeadings(markdown string) []Heading {
	matches := headingPattern.FindAllStringSubmatchIndex(markdown, -1)
	if len(matches) == 0 {
		return nil
	}
	fences := fencedRanges(markdown)

	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		if insideFence(m[0], fences) {
			continue
		}
		headings = append(headings, Heading{
			Level: m[3] - m[2],
			Text:  markdown[m[4]:m[5]],
			Start: m[0],
		})
	}
	return headings
}

// MissingSections lists outline entries with no matching level-2 heading.
// Matching ignores case, whitespace and surrounding emphasis; a heading
// that extends the outline text ("Benefits of Amethyst for Sleep") still counts.
func MissingSections(markdown string, outline []string) []string {
	var present []string
	for _, h := range ParseHeadings(markdown) {
		if h.Level == 2 {
			present = append(present, headingKey(h.Text))
		}
	}

	var missing []string
	for _, want := range outline {
		key := headingKey(want)
		found := false
		for _, got := range present {
			if strings.HasPrefix(got, key) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return missing
}

func headingKey(s string) string {
	return post.Normalize(strings.Trim(s, "*_` "))
}
