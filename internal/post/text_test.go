package post

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple lowercase", input: "Rose Quartz", want: "rose quartz"},
		{name: "trim whitespace", input: "  heart  ", want: "heart"},
		{name: "collapse internal whitespace", input: "solar    plexus", want: "solar plexus"},
		{name: "tabs and newlines", input: "third\t\n  eye", want: "third eye"},
		{name: "empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "just words here", want: "just words here"},
		{name: "paragraphs", input: "<h1>Title</h1><p>Body <strong>bold</strong> text</p>", want: "Title Body bold text"},
		{name: "adjacent list items keep separate words", input: "<ul><li>crystal</li><li>Crystal</li></ul>", want: "crystal Crystal"},
		{name: "script and style dropped", input: "<style>p{}</style><p>kept</p><script>var x = 1;</script>", want: "kept"},
		{name: "entities decoded", input: "<p>Tiger&#39;s Eye &amp; Jade</p>", want: "Tiger's Eye & Jade"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("<p>one two</p><p>three</p>"); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount(empty) = %d, want 0", got)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
		{1001, 6},
	}

	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		if got := Excerpt("<p>Short intro.</p>"); got != "Short intro." {
			t.Errorf("Excerpt = %q, want %q", got, "Short intro.")
		}
	})

	t.Run("long text truncated at word boundary", func(t *testing.T) {
		long := "<p>" + strings.Repeat("amethyst calms the busy mind ", 20) + "</p>"
		got := Excerpt(long)

		if !strings.HasSuffix(got, "...") {
			t.Errorf("Excerpt = %q, want ... suffix", got)
		}
		body := strings.TrimSuffix(got, "...")
		if n := utf8.RuneCountInString(body); n > ExcerptChars {
			t.Errorf("excerpt body length = %d, want <= %d", n, ExcerptChars)
		}
		if strings.HasSuffix(body, " ") {
			t.Errorf("excerpt body %q ends with a space", body)
		}
		words := strings.Fields(body)
		last := words[len(words)-1]
		if !strings.Contains("amethyst calms the busy mind", last) {
			t.Errorf("excerpt ends mid-word: %q", last)
		}
	})

	t.Run("word boundary measured in runes", func(t *testing.T) {
		// The space sits before the halfway rune but past the halfway byte.
		head := strings.Repeat("é", ExcerptChars/2-20)
		got := Excerpt(head + " " + strings.Repeat("x", ExcerptChars))

		body := strings.TrimSuffix(got, "...")
		if n := utf8.RuneCountInString(body); n != ExcerptChars {
			t.Errorf("excerpt body length = %d, want %d (no early cut)", n, ExcerptChars)
		}
		if !strings.HasPrefix(body, head+" x") {
			t.Errorf("excerpt lost text after the space: %q", body)
		}
	})

	t.Run("text at the limit has no ellipsis", func(t *testing.T) {
		exact := strings.Repeat("a", ExcerptChars)
		if got := Excerpt(exact); got != exact {
			t.Errorf("Excerpt = %q, want input unchanged", got)
		}
	})

	t.Run("multibyte safe", func(t *testing.T) {
		long := strings.Repeat("é", 400)
		got := Excerpt(long)
		if !utf8.ValidString(got) {
			t.Errorf("Excerpt produced invalid UTF-8")
		}
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Amethyst Guide", "amethyst-guide"},
		{"Heart Chakra Crystals: Complete Healing Guide for October 2026", "heart-chakra-crystals-complete-healing-guide-for-october-2026"},
		{"  Tiger's Eye -- Meaning!  ", "tiger-s-eye-meaning"},
		{"---", ""},
		{"{crystal} Guide", "crystal-guide"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusReview, StatusPublished} {
		if !s.Valid() {
			t.Errorf("%q.Valid() = false, want true", s)
		}
	}
	if Status("archived").Valid() {
		t.Error(`"archived".Valid() = true, want false`)
	}
}

func TestToSummary(t *testing.T) {
	p := &Post{ID: "01ABC", Title: "T", Slug: "t", Content: "<p>body</p>", Status: StatusDraft, Tags: []string{"chakra"}}
	s := p.ToSummary()
	if s.ID != p.ID || s.Slug != p.Slug || s.Status != StatusDraft {
		t.Errorf("ToSummary() = %+v, want fields copied from %+v", s, p)
	}
	if len(s.Tags) != 1 {
		t.Errorf("Tags = %v, want [chakra]", s.Tags)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("## Root Chakra\n\n- Red Jasper\n- Hematite\n\nGround **daily**.")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	for _, want := range []string{`<h2 id="root-chakra">Root Chakra</h2>`, "<li>Red Jasper</li>", "<strong>daily</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, html)
		}
	}
	if WordCount(html) != 7 {
		t.Errorf("WordCount = %d, want 7", WordCount(html))
	}
}
