package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/post"
)

const postColumns = `id, title, slug, content, excerpt, category, tags_json, author, status,
	is_ai_generated, reading_time, keywords_json, meta_description, archetype,
	generation_source, created_at, published_at`

var summaryColumns = []string{
	"id", "title", "slug", "excerpt", "category", "tags_json", "status",
	"archetype", "generation_source", "reading_time", "created_at", "published_at",
}

// ListFilters narrows post listings. Empty fields match everything.
type ListFilters struct {
	Status    post.Status
	Archetype string
}

// InsertPost stores a new post.
// A slug collision returns DUPLICATE_SLUG; any other failure returns STORE_UNAVAILABLE.
func InsertPost(ctx context.Context, db *sql.DB, p *post.Post) error {
	tagsJSON, err := toNullJSON(p.Tags)
	if err != nil {
		return errors.NewInternal(err)
	}
	keywordsJSON, err := toNullJSON(p.Keywords)
	if err != nil {
		return errors.NewInternal(err)
	}

	var publishedAt sql.NullInt64
	if p.PublishedAt != nil {
		publishedAt = sql.NullInt64{Int64: *p.PublishedAt, Valid: true}
	}

	query := `INSERT INTO posts (` + postColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = db.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.Category, tagsJSON, p.Author, string(p.Status),
		p.IsAIGenerated, p.ReadingTime, keywordsJSON, nullIfEmpty(p.MetaDescription), nullIfEmpty(p.Archetype),
		nullIfEmpty(p.GenerationSource), p.CreatedAt, publishedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) && strings.Contains(err.Error(), "posts.slug") {
			return errors.NewDuplicateSlug(p.Slug)
		}
		return errors.NewStoreUnavailable(err)
	}

	return nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// SlugExists reports whether a post with this slug exists.
func SlugExists(ctx context.Context, db *sql.DB, slug string) (bool, error) {
	var exists int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM posts WHERE slug = ? LIMIT 1`, slug).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStoreUnavailable(err)
	}
	return true, nil
}

// GetPostByID retrieves a post by its ULID.
func GetPostByID(ctx context.Context, db *sql.DB, id string) (*post.Post, error) {
	return getPost(ctx, db, "id", id)
}

// GetPostBySlug retrieves a post by its slug.
func GetPostBySlug(ctx context.Context, db *sql.DB, slug string) (*post.Post, error) {
	return getPost(ctx, db, "slug", slug)
}

func getPost(ctx context.Context, db *sql.DB, column, value string) (*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE ` + column + ` = ?`

	p, err := scanPost(db.QueryRowContext(ctx, query, value))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(value)
	}
	if err != nil {
		return nil, errors.NewStoreUnavailable(err)
	}
	return p, nil
}

// ListPosts returns post summaries, newest first, along with the total matching count.
func ListPosts(ctx context.Context, db *sql.DB, filters ListFilters, limit, offset int) ([]post.Summary, int, error) {
	where := sq.And{}
	if filters.Status != "" {
		where = append(where, sq.Eq{"status": string(filters.Status)})
	}
	if filters.Archetype != "" {
		where = append(where, sq.Eq{"archetype": filters.Archetype})
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From("posts").Where(where).ToSql()
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	var total int
	if err := db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, errors.NewStoreUnavailable(err)
	}

	query, args, err := sq.Select(summaryColumns...).
		From("posts").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.NewStoreUnavailable(err)
	}
	defer rows.Close()

	var items []post.Summary
	for rows.Next() {
		var (
			s           post.Summary
			status      string
			tagsJSON    sql.NullString
			archetype   sql.NullString
			source      sql.NullString
			publishedAt sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Excerpt, &s.Category, &tagsJSON, &status,
			&archetype, &source, &s.ReadingTime, &s.CreatedAt, &publishedAt); err != nil {
			return nil, 0, errors.NewStoreUnavailable(err)
		}
		s.Status = post.Status(status)
		s.Archetype = archetype.String
		s.GenerationSource = source.String
		if publishedAt.Valid {
			s.PublishedAt = &publishedAt.Int64
		}
		if err := fromNullJSON(tagsJSON, &s.Tags); err != nil {
			return nil, 0, errors.NewInternal(err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewStoreUnavailable(err)
	}

	return items, total, nil
}

// scanPost scans a single row into a Post struct.
func scanPost(row *sql.Row) (*post.Post, error) {
	var (
		p            post.Post
		status       string
		tagsJSON     sql.NullString
		keywordsJSON sql.NullString
		meta         sql.NullString
		archetype    sql.NullString
		source       sql.NullString
		publishedAt  sql.NullInt64
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Category, &tagsJSON, &p.Author, &status,
		&p.IsAIGenerated, &p.ReadingTime, &keywordsJSON, &meta, &archetype,
		&source, &p.CreatedAt, &publishedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = post.Status(status)
	p.MetaDescription = meta.String
	p.Archetype = archetype.String
	p.GenerationSource = source.String
	if publishedAt.Valid {
		p.PublishedAt = &publishedAt.Int64
	}

	if err := fromNullJSON(tagsJSON, &p.Tags); err != nil {
		return nil, err
	}
	if err := fromNullJSON(keywordsJSON, &p.Keywords); err != nil {
		return nil, err
	}

	return &p, nil
}

// toNullJSON encodes a string list, storing NULL for an empty list.
func toNullJSON(items []string) (sql.NullString, error) {
	if len(items) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func fromNullJSON(ns sql.NullString, dst *[]string) error {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(ns.String), dst)
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
