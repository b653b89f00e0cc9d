package db

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/hpungsan/facet/internal/catalog"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/post"
)

var crystalColumns = []string{"name", "description", "properties_json", "colors_json", "chakra", "origin", "element"}

// likeEscaper escapes LIKE wildcards in user input (used with ESCAPE '\').
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// UpsertCrystals inserts or replaces crystal reference records by normalized name.
// Returns the number of records written.
func UpsertCrystals(ctx context.Context, db *sql.DB, crystals []catalog.Crystal) (int, error) {
	if len(crystals) == 0 {
		return 0, nil
	}

	now := time.Now().Unix()
	builder := sq.Insert("crystals").
		Columns(append([]string{"name_norm"}, append(crystalColumns, "updated_at")...)...).
		Suffix(`ON CONFLICT(name_norm) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			properties_json = excluded.properties_json,
			colors_json = excluded.colors_json,
			chakra = excluded.chakra,
			origin = excluded.origin,
			element = excluded.element,
			updated_at = excluded.updated_at`)

	for _, c := range crystals {
		props, err := toNullJSON(c.Properties)
		if err != nil {
			return 0, errors.NewInternal(err)
		}
		colors, err := toNullJSON(c.Colors)
		if err != nil {
			return 0, errors.NewInternal(err)
		}
		builder = builder.Values(post.Normalize(c.Name), c.Name, c.Description, props, colors,
			c.Chakra, c.Origin, c.Element, now)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return 0, errors.NewStoreUnavailable(err)
	}
	return len(crystals), nil
}

// FindCrystalByName returns the best fuzzy match for name: an exact match first,
// then a record whose name contains the query, then a record whose name
// appears inside the query (so "amethyst tower" finds Amethyst).
func FindCrystalByName(ctx context.Context, db *sql.DB, name string) (*catalog.Crystal, error) {
	norm := post.Normalize(name)
	if norm == "" {
		return nil, errors.NewInvalidRequest("crystal name must not be empty")
	}

	query, args, err := sq.Select(crystalColumns...).
		From("crystals").
		Where(sq.Or{
			sq.Expr(`name_norm LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(norm)+"%"),
			sq.Expr(`instr(?, name_norm) > 0`, norm),
		}).
		OrderByClause("(name_norm = ?) DESC", norm).
		OrderBy("length(name_norm) ASC", "name_norm ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	c, err := scanCrystal(db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(name)
	}
	if err != nil {
		return nil, errors.NewStoreUnavailable(err)
	}
	return c, nil
}

// ListCrystals returns crystals ordered by name, optionally filtered by chakra.
func ListCrystals(ctx context.Context, db *sql.DB, chakra string) ([]catalog.Crystal, error) {
	builder := sq.Select(crystalColumns...).From("crystals").OrderBy("name_norm ASC")
	if chakra != "" {
		builder = builder.Where(sq.Eq{"chakra": chakra})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreUnavailable(err)
	}
	defer rows.Close()

	var out []catalog.Crystal
	for rows.Next() {
		c, err := scanCrystal(rows)
		if err != nil {
			return nil, errors.NewStoreUnavailable(err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreUnavailable(err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCrystal(row rowScanner) (*catalog.Crystal, error) {
	var (
		c                    catalog.Crystal
		props, colors        sql.NullString
		chakra, origin, elem sql.NullString
	)
	if err := row.Scan(&c.Name, &c.Description, &props, &colors, &chakra, &origin, &elem); err != nil {
		return nil, err
	}
	c.Chakra = chakra.String
	c.Origin = origin.String
	c.Element = elem.String
	if err := fromNullJSON(props, &c.Properties); err != nil {
		return nil, err
	}
	if err := fromNullJSON(colors, &c.Colors); err != nil {
		return nil, err
	}
	return &c, nil
}

// CrystalRepo adapts the crystal queries to lookup interfaces that take a context.
type CrystalRepo struct {
	DB *sql.DB
}

// FindByName implements fallback.CrystalFinder.
func (r *CrystalRepo) FindByName(ctx context.Context, name string) (*catalog.Crystal, error) {
	return FindCrystalByName(ctx, r.DB, name)
}
