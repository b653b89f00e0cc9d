package ops

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/facet/internal/db"
	"github.com/hpungsan/facet/internal/post"
)

// PostStore is where generated posts are persisted.
// CreatePost returns DUPLICATE_SLUG when the slug is taken and
// STORE_UNAVAILABLE for any other write failure.
type PostStore interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreatePost(ctx context.Context, p *post.Post) error
}

// SQLStore is the SQLite-backed PostStore.
type SQLStore struct {
	DB *sql.DB
}

// NewSQLStore wraps an initialized database.
func NewSQLStore(database *sql.DB) *SQLStore {
	return &SQLStore{DB: database}
}

// SlugExists reports whether a post already uses slug.
func (s *SQLStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	return db.SlugExists(ctx, s.DB, slug)
}

// CreatePost inserts p.
func (s *SQLStore) CreatePost(ctx context.Context, p *post.Post) error {
	return db.InsertPost(ctx, s.DB, p)
}

// generateULID generates a new ULID stamped with t.
func generateULID(t time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
