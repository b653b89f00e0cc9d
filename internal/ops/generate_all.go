package ops

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
)

// GenerateAllInput holds shared variables for an unattended run over every archetype.
type GenerateAllInput struct {
	Context content.Context `json:"context,omitempty"`
	Strict  bool            `json:"strict,omitempty"`
}

// GenerateAllItem is the outcome for one archetype.
type GenerateAllItem struct {
	Archetype string          `json:"archetype"`
	Post      *GenerateOutput `json:"post,omitempty"`
	Error     *ItemError      `json:"error,omitempty"`
}

// ItemError is a per-archetype failure.
type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GenerateAllOutput lists results in archetype registry order.
type GenerateAllOutput struct {
	Items     []GenerateAllItem `json:"items"`
	Generated int               `json:"generated"`
	Failed    int               `json:"failed"`
}

// GenerateAll runs one generation per archetype, bounded by config concurrency.
// Each archetype gets clock-derived defaults for the subject variables it needs.
// One archetype failing does not stop the others.
func (p *Pipeline) GenerateAll(ctx context.Context, in GenerateAllInput) (*GenerateAllOutput, error) {
	archetypes := content.Archetypes()
	items := make([]GenerateAllItem, len(archetypes))
	now := p.now()

	limit := p.cfg.Concurrency
	if limit <= 0 {
		limit = 1
	}

	var mu sync.Mutex
	out := &GenerateAllOutput{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, a := range archetypes {
		g.Go(func() error {
			item := GenerateAllItem{Archetype: string(a)}
			res, err := p.Generate(gctx, GenerateInput{
				Archetype: string(a),
				Context:   content.Defaults(a, in.Context, now),
				Strict:    in.Strict,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error("generate all: archetype failed", zap.String("archetype", string(a)), zap.Error(err))
				item.Error = toItemError(err)
				out.Failed++
			} else {
				item.Post = res
				out.Generated++
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Items = items
	return out, nil
}

func toItemError(err error) *ItemError {
	if fErr, ok := errors.As(err); ok {
		msg := fErr.Message
		if fErr.Code == errors.ErrInternal {
			msg = "an internal error occurred"
		}
		return &ItemError{Code: string(fErr.Code), Message: msg}
	}
	return &ItemError{Code: string(errors.ErrInternal), Message: "an internal error occurred"}
}
