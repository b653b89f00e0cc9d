package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
)

func TestGenerateAll_EveryArchetype(t *testing.T) {
	database := openTestDB(t)
	p := newTestPipeline(t, nil, NewSQLStore(database), nil)

	out, err := p.GenerateAll(context.Background(), GenerateAllInput{})
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if out.Generated != 5 || out.Failed != 0 {
		t.Fatalf("generated=%d failed=%d, want 5/0", out.Generated, out.Failed)
	}

	for i, a := range content.Archetypes() {
		item := out.Items[i]
		if item.Archetype != string(a) {
			t.Errorf("Items[%d].Archetype = %q, want %q", i, item.Archetype, a)
		}
		if item.Post == nil || item.Post.Slug == "" {
			t.Errorf("%s: no post", a)
			continue
		}
		if len(item.Post.Unresolved) != 0 {
			t.Errorf("%s: defaults left %v unresolved", a, item.Post.Unresolved)
		}
	}

	listed, err := List(context.Background(), database, ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if listed.Pagination.Total != 5 {
		t.Errorf("Total = %d, want 5", listed.Pagination.Total)
	}
}

func TestGenerateAll_ReportsFailures(t *testing.T) {
	store := newMemStore()
	store.checkErr = errors.NewStoreUnavailable(nil)
	p := newTestPipeline(t, nil, store, nil)

	out, err := p.GenerateAll(context.Background(), GenerateAllInput{})
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if out.Failed != 5 {
		t.Errorf("Failed = %d, want 5", out.Failed)
	}
	if out.Items[0].Error == nil || out.Items[0].Error.Code != string(errors.ErrStoreUnavailable) {
		t.Errorf("Items[0].Error = %+v", out.Items[0].Error)
	}
}
