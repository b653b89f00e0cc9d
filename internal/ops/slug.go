package ops

import (
	"context"
	"fmt"
	"time"
)

// MaxSlugSuffix is the highest numeric suffix tried before falling back to a timestamp.
const MaxSlugSuffix = 100

// SlugChecker reports whether a slug is already taken.
type SlugChecker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// EnsureUniqueSlug returns base if it is free, otherwise the first free
// base-2 .. base-100, otherwise base-<unix seconds of now>.
// Store errors are returned as-is.
func EnsureUniqueSlug(ctx context.Context, checker SlugChecker, base string, now time.Time) (string, error) {
	for i := 1; i <= MaxSlugSuffix; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		exists, err := checker.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return fmt.Sprintf("%s-%d", base, now.Unix()), nil
}
