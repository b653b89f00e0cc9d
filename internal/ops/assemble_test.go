package ops

import (
	"slices"
	"strings"
	"testing"

	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/post"
)

func TestAssemble_DraftStatus(t *testing.T) {
	tmpl, err := content.Lookup("crystal_guide")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	body := "<p>" + strings.Repeat("calm ", 450) + "</p>"

	p, err := Assemble(AssembleInput{
		Draft: content.Draft{
			Title:      "Amethyst Meaning",
			RawContent: body,
			Keywords:   []string{"amethyst meaning"},
			Source:     content.SourceFallback,
		},
		Template: tmpl,
		Primary:  "Amethyst",
		Slug:     "amethyst-meaning",
		Author:   "Facet Editorial",
		Now:      fixedNow,
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if p.Status != post.StatusDraft {
		t.Errorf("Status = %q, want draft", p.Status)
	}
	if p.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil", *p.PublishedAt)
	}
	if !p.IsAIGenerated {
		t.Error("IsAIGenerated = false, want true")
	}
	if p.ID == "" {
		t.Error("ID is empty")
	}
	if p.ReadingTime != 3 {
		t.Errorf("ReadingTime = %d, want 3 (450 words)", p.ReadingTime)
	}
	if !strings.HasSuffix(p.Excerpt, "...") {
		t.Errorf("Excerpt = %q, want ellipsis", p.Excerpt)
	}
	if p.Category != "Crystal Guides" {
		t.Errorf("Category = %q", p.Category)
	}
	if p.CreatedAt != fixedNow.Unix() {
		t.Errorf("CreatedAt = %d, want %d", p.CreatedAt, fixedNow.Unix())
	}
	if p.GenerationSource != "fallback" || p.Archetype != "crystal_guide" {
		t.Errorf("source/archetype = %q/%q", p.GenerationSource, p.Archetype)
	}
	if !slices.Contains(p.Tags, "amethyst") {
		t.Errorf("Tags = %v, want lowercased primary", p.Tags)
	}
}

func TestBuildTags_Dedup(t *testing.T) {
	got := buildTags([]string{"chakra healing", "Chakra Crystals"}, "chakra crystals")
	want := []string{"chakra healing", "chakra crystals"}
	if !slices.Equal(got, want) {
		t.Errorf("buildTags = %v, want %v", got, want)
	}

	got = buildTags([]string{"birthstones"}, "")
	if !slices.Equal(got, []string{"birthstones"}) {
		t.Errorf("empty primary: %v", got)
	}
}
