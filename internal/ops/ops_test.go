package ops

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hpungsan/facet/internal/config"
	"github.com/hpungsan/facet/internal/db"
	"github.com/hpungsan/facet/internal/post"
	"github.com/hpungsan/facet/internal/textgen"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// longMarkdown returns an article of at least n words that passes the quality gate.
func longMarkdown(n int) string {
	var b strings.Builder
	b.WriteString("# Guide\n\n")
	sentence := "Amethyst supports calm focus, restful sleep and steady intuition every day. "
	per := len(strings.Fields(sentence))
	for i := 0; i*per < n; i++ {
		if i%6 == 0 {
			fmt.Fprintf(&b, "\n\n## Part %d\n\n", i/6+1)
		}
		b.WriteString(sentence)
	}
	return b.String()
}

// scriptedService answers each call with the next scripted response.
type scriptedService struct {
	mu      sync.Mutex
	replies []scriptedReply
	prompts []string
}

type scriptedReply struct {
	content string
	err     error
}

func (s *scriptedService) Generate(ctx context.Context, req textgen.Request) (*textgen.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, req.Prompt)
	if len(s.replies) == 0 {
		return nil, fmt.Errorf("no scripted reply left")
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if r.err != nil {
		return nil, r.err
	}
	return &textgen.Response{Content: r.content}, nil
}

func (s *scriptedService) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

// slowService blocks until the context is done.
type slowService struct{}

func (slowService) Generate(ctx context.Context, req textgen.Request) (*textgen.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// memStore is an in-memory PostStore. failNext makes the next CreatePost
// calls return the given errors in order.
type memStore struct {
	mu       sync.Mutex
	posts    map[string]*post.Post
	failNext []error
	checkErr error
}

func newMemStore() *memStore {
	return &memStore{posts: map[string]*post.Post{}}
}

func (m *memStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.checkErr != nil {
		return false, m.checkErr
	}
	_, ok := m.posts[slug]
	return ok, nil
}

func (m *memStore) CreatePost(ctx context.Context, p *post.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.failNext) > 0 {
		err := m.failNext[0]
		m.failNext = m.failNext[1:]
		return err
	}
	m.posts[p.Slug] = p
	return nil
}

func (m *memStore) get(slug string) *post.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.posts[slug]
}

func newTestPipeline(t *testing.T, svc textgen.Service, store PostStore, cfg *config.Config) *Pipeline {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	p, err := NewPipeline(PipelineDeps{
		Service: svc,
		Store:   store,
		Now:     clock,
		Config:  cfg,
	})
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	return p
}

func states(trace []Step) []State {
	out := make([]State, len(trace))
	for i, s := range trace {
		out[i] = s.State
	}
	return out
}

func TestNewPipeline_RequiresStore(t *testing.T) {
	if _, err := NewPipeline(PipelineDeps{}); err == nil {
		t.Error("expected error without a store")
	}
}
