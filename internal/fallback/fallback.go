// Package fallback produces deterministic, table-driven drafts for every
// archetype. It needs no network access and always returns content.
package fallback

import (
	"context"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hpungsan/facet/internal/catalog"
	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/logging"
	"github.com/hpungsan/facet/internal/post"
)

const (
	defaultCrystal = "Clear Quartz"
	defaultBenefit = "balance and wellbeing"
)

// CrystalFinder looks up crystal reference records by name substring.
// Implementations return a NOT_FOUND error when nothing matches.
type CrystalFinder interface {
	FindByName(ctx context.Context, name string) (*catalog.Crystal, error)
}

// Route names the fallback path chosen for a request.
type Route string

const (
	RouteChakra         Route = "chakra"
	RouteChakraOverview Route = "chakra_overview"
	RouteSeasonal       Route = "seasonal"
	RouteBracelet       Route = "bracelet"
	RouteCatalog        Route = "catalog"
	RouteSkeleton       Route = "skeleton"
)

// Request is the input for one fallback draft.
type Request struct {
	Resolved *content.Resolved
	Now      time.Time
}

// Generator builds fallback drafts. Crystals may be nil, in which case
// crystal guides use the plain skeleton.
type Generator struct {
	crystals CrystalFinder
	logger   *zap.Logger
}

// New creates a Generator.
func New(crystals CrystalFinder, logger *zap.Logger) *Generator {
	return &Generator{crystals: crystals, logger: logging.OrNop(logger)}
}

// Generate returns a draft for req. It never fails: lookup errors downgrade
// to the next path in the preference order.
func (g *Generator) Generate(ctx context.Context, req Request) content.Draft {
	md, route := g.markdown(ctx, req)
	g.logger.Debug("fallback draft built",
		zap.String("archetype", string(req.Resolved.Template.Archetype)),
		zap.String("route", string(route)))

	body, err := post.RenderMarkdown(md)
	if err != nil {
		g.logger.Warn("fallback markdown render failed", zap.Error(err))
		body = "<pre>" + html.EscapeString(md) + "</pre>"
	}

	r := req.Resolved
	return content.Draft{
		Title:           r.Title,
		RawContent:      body,
		Keywords:        r.Keywords,
		MetaDescription: r.MetaDescription,
		Source:          content.SourceFallback,
	}
}

// Markdown exposes the Markdown body and route for previews and tests.
func (g *Generator) Markdown(ctx context.Context, req Request) (string, Route) {
	return g.markdown(ctx, req)
}

func (g *Generator) markdown(ctx context.Context, req Request) (string, Route) {
	r := req.Resolved
	vars := r.Vars
	month := vars["month"]
	if month == "" {
		month = req.Now.Month().String()
	}

	switch r.Template.Archetype {
	case content.ChakraGuide:
		if c, ok := content.LookupChakra(vars["chakra"]); ok {
			return chakraMarkdown(c, month), RouteChakra
		}
		return chakraOverviewMarkdown(month), RouteChakraOverview

	case content.SeasonalGuide:
		s, ok := content.LookupSeason(vars["season"])
		if !ok {
			s = content.SeasonFor(req.Now.Month())
		}
		year := vars["year"]
		if year == "" {
			year = req.Now.Format("2006")
		}
		return seasonalMarkdown(s, month, year), RouteSeasonal
	}

	name := strings.TrimSpace(vars["crystal"])
	if name == "" {
		name = defaultCrystal
	}
	if isBracelet(name) {
		return braceletMarkdown(name, month), RouteBracelet
	}

	benefit := strings.TrimSpace(vars["benefit"])
	if rec := g.findCrystal(ctx, name); rec != nil {
		if benefit == "" {
			benefit = firstOr(rec.Properties, defaultBenefit)
		}
		return crystalMarkdown(rec, r.Template.Archetype, benefit, month), RouteCatalog
	}
	if benefit == "" {
		benefit = defaultBenefit
	}
	return skeletonMarkdown(name, benefit), RouteSkeleton
}

func (g *Generator) findCrystal(ctx context.Context, name string) *catalog.Crystal {
	if g.crystals == nil {
		return nil
	}
	rec, err := g.crystals.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			g.logger.Warn("crystal lookup failed", zap.String("crystal", name), zap.Error(err))
		}
		return nil
	}
	return rec
}
