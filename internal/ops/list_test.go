package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
)

func seedPosts(t *testing.T, p *Pipeline) {
	t.Helper()
	ctx := context.Background()
	for _, c := range []string{"Root", "Heart", "Crown"} {
		if _, err := p.GenerateChakraGuide(ctx, content.Context{"chakra": c}); err != nil {
			t.Fatalf("GenerateChakraGuide(%s) failed: %v", c, err)
		}
	}
	if _, err := p.GenerateSeasonalGuide(ctx, content.Context{"season": "Summer"}); err != nil {
		t.Fatalf("GenerateSeasonalGuide failed: %v", err)
	}
}

func TestList_HappyPath(t *testing.T) {
	database := openTestDB(t)
	seedPosts(t, newTestPipeline(t, nil, NewSQLStore(database), nil))

	output, err := List(context.Background(), database, ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(output.Items) != 4 {
		t.Errorf("len(Items) = %d, want 4", len(output.Items))
	}
	if output.Pagination.Total != 4 {
		t.Errorf("Total = %d, want 4", output.Pagination.Total)
	}
	if output.Pagination.HasMore {
		t.Error("HasMore = true, want false")
	}
	if output.Sort != "created_at_desc" {
		t.Errorf("Sort = %q, want 'created_at_desc'", output.Sort)
	}
}

func TestList_Filters(t *testing.T) {
	database := openTestDB(t)
	seedPosts(t, newTestPipeline(t, nil, NewSQLStore(database), nil))

	output, err := List(context.Background(), database, ListInput{Archetype: "chakra", Status: "Draft"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Pagination.Total != 3 {
		t.Errorf("Total = %d, want 3 chakra guides", output.Pagination.Total)
	}
	for _, item := range output.Items {
		if item.Archetype != "chakra_guide" {
			t.Errorf("Archetype = %q", item.Archetype)
		}
	}

	output, err = List(context.Background(), database, ListInput{Status: "published"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(output.Items) != 0 || output.Items == nil {
		t.Errorf("Items = %v, want empty non-nil slice", output.Items)
	}
}

func TestList_Pagination(t *testing.T) {
	database := openTestDB(t)
	seedPosts(t, newTestPipeline(t, nil, NewSQLStore(database), nil))

	output, err := List(context.Background(), database, ListInput{Limit: 3})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(output.Items) != 3 || !output.Pagination.HasMore {
		t.Errorf("len=%d has_more=%v, want 3/true", len(output.Items), output.Pagination.HasMore)
	}

	output, err = List(context.Background(), database, ListInput{Limit: 500, Offset: -4})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Pagination.Limit != MaxListLimit || output.Pagination.Offset != 0 {
		t.Errorf("limit/offset = %d/%d, want clamped", output.Pagination.Limit, output.Pagination.Offset)
	}
}

func TestList_InvalidFilters(t *testing.T) {
	database := openTestDB(t)

	_, err := List(context.Background(), database, ListInput{Status: "archived"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
	_, err = List(context.Background(), database, ListInput{Archetype: "horoscope"})
	if !errors.Is(err, errors.ErrUnknownArchetype) {
		t.Errorf("err = %v, want UNKNOWN_ARCHETYPE", err)
	}
}
