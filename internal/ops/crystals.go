package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/facet/internal/catalog"
	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/db"
	"github.com/hpungsan/facet/internal/errors"
)

// SeedOutput reports a catalog seed.
type SeedOutput struct {
	Upserted int `json:"upserted"`
}

// SeedCrystals loads the embedded catalog into the crystal reference table.
// Running it again refreshes existing rows.
func SeedCrystals(ctx context.Context, database *sql.DB) (*SeedOutput, error) {
	crystals, err := catalog.Load()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	n, err := db.UpsertCrystals(ctx, database, crystals)
	if err != nil {
		return nil, err
	}
	return &SeedOutput{Upserted: n}, nil
}

// CrystalLookupInput finds one crystal by name, or lists crystals for a chakra.
// Exactly one of Name and Chakra must be set.
type CrystalLookupInput struct {
	Name   string
	Chakra string
}

// CrystalLookupOutput holds the matches.
type CrystalLookupOutput struct {
	Items []catalog.Crystal `json:"items"`
}

// LookupCrystals queries the crystal reference table.
func LookupCrystals(ctx context.Context, database *sql.DB, input CrystalLookupInput) (*CrystalLookupOutput, error) {
	name := strings.TrimSpace(input.Name)
	chakra := strings.TrimSpace(input.Chakra)

	switch {
	case name != "" && chakra != "":
		return nil, errors.NewInvalidRequest("specify either name or chakra, not both")
	case name != "":
		c, err := db.FindCrystalByName(ctx, database, name)
		if err != nil {
			return nil, err
		}
		return &CrystalLookupOutput{Items: []catalog.Crystal{*c}}, nil
	case chakra != "":
		ch, ok := content.LookupChakra(chakra)
		if !ok {
			return nil, errors.NewInvalidRequest("unknown chakra: " + chakra)
		}
		items, err := db.ListCrystals(ctx, database, ch.Name)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []catalog.Crystal{}
		}
		return &CrystalLookupOutput{Items: items}, nil
	default:
		return nil, errors.NewInvalidRequest("must specify either name or chakra")
	}
}
