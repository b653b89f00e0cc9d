package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/facet/internal/errors"
)

func TestSeedAndLookupCrystals(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	seeded, err := SeedCrystals(ctx, database)
	if err != nil {
		t.Fatalf("SeedCrystals failed: %v", err)
	}
	if seeded.Upserted == 0 {
		t.Fatal("nothing seeded")
	}

	again, err := SeedCrystals(ctx, database)
	if err != nil {
		t.Fatalf("second SeedCrystals failed: %v", err)
	}
	if again.Upserted != seeded.Upserted {
		t.Errorf("reseed upserted %d, want %d", again.Upserted, seeded.Upserted)
	}

	byName, err := LookupCrystals(ctx, database, CrystalLookupInput{Name: "amethyst"})
	if err != nil {
		t.Fatalf("LookupCrystals by name failed: %v", err)
	}
	if len(byName.Items) != 1 || byName.Items[0].Name != "Amethyst" {
		t.Errorf("Items = %+v, want Amethyst", byName.Items)
	}

	byChakra, err := LookupCrystals(ctx, database, CrystalLookupInput{Chakra: "third-eye"})
	if err != nil {
		t.Fatalf("LookupCrystals by chakra failed: %v", err)
	}
	if len(byChakra.Items) == 0 {
		t.Error("expected crystals for Third Eye")
	}
	for _, c := range byChakra.Items {
		if c.Chakra != "Third Eye" {
			t.Errorf("%s chakra = %q", c.Name, c.Chakra)
		}
	}
}

func TestLookupCrystals_Invalid(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	cases := []CrystalLookupInput{
		{},
		{Name: "amethyst", Chakra: "crown"},
		{Chakra: "elbow"},
	}
	for _, in := range cases {
		if _, err := LookupCrystals(ctx, database, in); !errors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("%+v: err = %v, want INVALID_REQUEST", in, err)
		}
	}

	if _, err := LookupCrystals(ctx, database, CrystalLookupInput{Name: "unobtainium"}); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}
