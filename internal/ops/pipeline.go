package ops

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hpungsan/facet/internal/config"
	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/fallback"
	"github.com/hpungsan/facet/internal/logging"
	"github.com/hpungsan/facet/internal/post"
	"github.com/hpungsan/facet/internal/textgen"
)

// MaxSlugWriteRetries bounds how often a write is retried with a fresh
// timestamped slug after the store reports DUPLICATE_SLUG.
const MaxSlugWriteRetries = 3

// State is a step of a generation run.
type State string

const (
	StateBuilding    State = "building"
	StateGenerating  State = "generating"
	StateEvaluating  State = "evaluating"
	StateRetrying    State = "retrying"
	StateFallingBack State = "falling_back"
	StateAccepted    State = "accepted"
)

// Step is one entry of a run's trace.
type Step struct {
	State  State  `json:"state"`
	Detail string `json:"detail,omitempty"`
}

// PipelineDeps wires a Pipeline. Store is required. A nil Service sends
// every run straight to the fallback generator.
type PipelineDeps struct {
	Service  textgen.Service
	Store    PostStore
	Crystals fallback.CrystalFinder
	Logger   *zap.Logger
	Metrics  *Metrics
	Now      func() time.Time
	Config   *config.Config
}

// Pipeline turns a template and caller context into a persisted draft post.
// It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	service  textgen.Service
	store    PostStore
	fallback *fallback.Generator
	logger   *zap.Logger
	metrics  *Metrics
	now      func() time.Time
	cfg      *config.Config
}

// NewPipeline creates a Pipeline from deps.
func NewPipeline(deps PipelineDeps) (*Pipeline, error) {
	if deps.Store == nil {
		return nil, errors.NewInvalidRequest("pipeline requires a post store")
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	logger := logging.OrNop(deps.Logger)

	return &Pipeline{
		service:  deps.Service,
		store:    deps.Store,
		fallback: fallback.New(deps.Crystals, logger),
		logger:   logger,
		metrics:  metrics,
		now:      now,
		cfg:      cfg,
	}, nil
}

// GenerateInput selects an archetype and supplies its variables.
// Strict rejects unresolved placeholders for this run only; the configured
// strict_variables setting applies either way.
type GenerateInput struct {
	Archetype string          `json:"archetype"`
	Context   content.Context `json:"context,omitempty"`
	Strict    bool            `json:"strict,omitempty"`
}

// GenerateOutput describes the post a run created.
type GenerateOutput struct {
	ID         string         `json:"id"`
	Slug       string         `json:"slug"`
	Title      string         `json:"title"`
	Archetype  string         `json:"archetype"`
	Status     post.Status    `json:"status"`
	Source     content.Source `json:"source"`
	WordCount  int            `json:"word_count"`
	Unresolved []string       `json:"unresolved,omitempty"`
	Trace      []Step         `json:"trace"`
}

// Generate runs the pipeline for in.Archetype.
// Only configuration errors (raised before any I/O) and store failures are
// returned; text generation problems end in fallback content.
func (p *Pipeline) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	t, err := content.Lookup(in.Archetype)
	if err != nil {
		return nil, err
	}
	return p.run(ctx, t, in.Context, p.cfg.StrictVariables || in.Strict)
}

// GenerateCrystalGuide generates a crystal guide (crystal, benefit).
func (p *Pipeline) GenerateCrystalGuide(ctx context.Context, vars content.Context) (*GenerateOutput, error) {
	return p.Generate(ctx, GenerateInput{Archetype: string(content.CrystalGuide), Context: vars})
}

// GenerateChakraGuide generates a chakra guide (chakra).
func (p *Pipeline) GenerateChakraGuide(ctx context.Context, vars content.Context) (*GenerateOutput, error) {
	return p.Generate(ctx, GenerateInput{Archetype: string(content.ChakraGuide), Context: vars})
}

// GenerateSeasonalGuide generates a seasonal guide (season).
func (p *Pipeline) GenerateSeasonalGuide(ctx context.Context, vars content.Context) (*GenerateOutput, error) {
	return p.Generate(ctx, GenerateInput{Archetype: string(content.SeasonalGuide), Context: vars})
}

// GenerateBirthstoneGuide generates a birthstone guide (month, crystal).
func (p *Pipeline) GenerateBirthstoneGuide(ctx context.Context, vars content.Context) (*GenerateOutput, error) {
	return p.Generate(ctx, GenerateInput{Archetype: string(content.BirthstoneGuide), Context: vars})
}

// GenerateHowToGuide generates a how-to guide (crystal, benefit).
func (p *Pipeline) GenerateHowToGuide(ctx context.Context, vars content.Context) (*GenerateOutput, error) {
	return p.Generate(ctx, GenerateInput{Archetype: string(content.HowToGuide), Context: vars})
}

// run is the per-invocation state. It never outlives one call.
type run struct {
	archetype string
	trace     []Step
	logger    *zap.Logger
}

func (r *run) enter(s State, detail string) {
	r.trace = append(r.trace, Step{State: s, Detail: detail})
	r.logger.Debug("pipeline state", zap.String("state", string(s)), zap.String("detail", detail))
}

func (p *Pipeline) run(ctx context.Context, t content.Template, vars content.Context, strict bool) (*GenerateOutput, error) {
	started := p.now()
	r := &run{
		archetype: string(t.Archetype),
		logger:    p.logger.With(zap.String("archetype", string(t.Archetype))),
	}

	r.enter(StateBuilding, "")
	resolved := content.Resolve(t, vars, started)
	for _, w := range resolved.Warnings {
		r.logger.Warn("context value not recognized", zap.String("warning", w))
	}
	if len(resolved.Unresolved) > 0 {
		if strict {
			return nil, errors.NewMissingVariable(string(t.Archetype), resolved.Unresolved)
		}
		r.logger.Warn("unresolved template placeholders", zap.Strings("placeholders", resolved.Unresolved))
	}
	prompt := content.BuildPrompt(resolved, started)

	draft := p.draft(ctx, r, resolved, prompt, started)

	out, err := p.persist(ctx, r, resolved, draft)
	if err != nil {
		return nil, err
	}

	p.metrics.Runs.WithLabelValues(r.archetype, string(draft.Source)).Inc()
	p.metrics.Duration.WithLabelValues(r.archetype).Observe(p.now().Sub(started).Seconds())
	out.Unresolved = resolved.Unresolved
	out.Trace = r.trace
	return out, nil
}

// draft drives Generating → Evaluating → {Accepted | Retrying → Evaluating | FallingBack → Accepted}.
// It always ends with an accepted draft.
func (p *Pipeline) draft(ctx context.Context, r *run, resolved *content.Resolved, prompt content.Prompt, now time.Time) content.Draft {
	var (
		candidate string
		source    = content.SourceAI
		retried   bool
		accepted  content.Draft
	)

	state := StateGenerating
	if p.service == nil {
		state = StateFallingBack
		r.enter(StateFallingBack, "no text generation service configured")
	}

	for state != StateAccepted {
		switch state {
		case StateGenerating, StateRetrying:
			if state == StateGenerating {
				r.enter(StateGenerating, fmt.Sprintf("min_words=%d", prompt.MinWords))
			}
			body, err := p.callService(ctx, r, resolved, prompt)
			if err != nil {
				p.metrics.ServiceFailures.WithLabelValues(r.archetype).Inc()
				r.logger.Warn("text generation failed, using fallback", zap.Error(err))
				state = StateFallingBack
				r.enter(StateFallingBack, "service error: "+err.Error())
				continue
			}
			candidate = body
			state = StateEvaluating

		case StateEvaluating:
			report := content.Evaluate(candidate)
			r.enter(StateEvaluating, fmt.Sprintf("words=%d forbidden=%v", report.WordCount, report.Forbidden))
			if report.Acceptable {
				accepted = content.Draft{
					Title:           resolved.Title,
					RawContent:      candidate,
					Keywords:        resolved.Keywords,
					MetaDescription: resolved.MetaDescription,
					Source:          source,
				}
				state = StateAccepted
				r.enter(StateAccepted, string(source))
				continue
			}

			attempt := "first"
			if retried {
				attempt = "retry"
			}
			p.metrics.GateRejections.WithLabelValues(r.archetype, attempt).Inc()
			r.logger.Warn("draft rejected by quality gate",
				zap.String("attempt", attempt),
				zap.Int("words", report.WordCount),
				zap.Strings("forbidden", report.Forbidden))

			if retried {
				state = StateFallingBack
				r.enter(StateFallingBack, "retry rejected")
				continue
			}
			retried = true
			source = content.SourceAIRetry
			prompt = content.StrictPrompt(prompt)
			state = StateRetrying
			r.enter(StateRetrying, fmt.Sprintf("min_words=%d", prompt.MinWords))

		case StateFallingBack:
			accepted = p.fallback.Generate(ctx, fallback.Request{Resolved: resolved, Now: now})
			if report := content.Evaluate(accepted.RawContent); !report.Acceptable {
				r.logger.Warn("fallback draft below quality gate, accepting anyway",
					zap.Int("words", report.WordCount),
					zap.Strings("forbidden", report.Forbidden))
			}
			state = StateAccepted
			r.enter(StateAccepted, string(content.SourceFallback))
		}
	}
	return accepted
}

// callService sends prompt and renders the Markdown answer to HTML.
// Outline coverage is reported, not gated.
func (p *Pipeline) callService(ctx context.Context, r *run, resolved *content.Resolved, prompt content.Prompt) (string, error) {
	resp, err := p.service.Generate(ctx, textgen.Request{
		Prompt:      prompt.Text,
		ContentKind: string(resolved.Template.Archetype),
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", textgen.ErrEmptyResponse
	}
	if missing := content.MissingSections(resp.Content, resolved.Sections); len(missing) > 0 {
		r.logger.Warn("draft skips outline sections", zap.Strings("sections", missing))
	}
	return post.RenderMarkdown(resp.Content)
}

// persist claims a slug and writes the post. A DUPLICATE_SLUG from a
// concurrent writer is retried with base-<unix nanos> up to MaxSlugWriteRetries times.
func (p *Pipeline) persist(ctx context.Context, r *run, resolved *content.Resolved, draft content.Draft) (*GenerateOutput, error) {
	now := p.now()
	base := post.Slugify(draft.Title)
	if base == "" {
		base = post.Slugify(r.archetype)
	}

	slug, err := EnsureUniqueSlug(ctx, p.store, base, now)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		created, err := Assemble(AssembleInput{
			Draft:    draft,
			Template: resolved.Template,
			Primary:  resolved.Primary(),
			Slug:     slug,
			Author:   p.cfg.Author,
			Now:      now,
		})
		if err != nil {
			return nil, err
		}

		err = p.store.CreatePost(ctx, created)
		if err == nil {
			r.logger.Info("post created",
				zap.String("id", created.ID),
				zap.String("slug", created.Slug),
				zap.String("source", created.GenerationSource))
			return &GenerateOutput{
				ID:        created.ID,
				Slug:      created.Slug,
				Title:     created.Title,
				Archetype: created.Archetype,
				Status:    created.Status,
				Source:    draft.Source,
				WordCount: post.WordCount(created.Content),
			}, nil
		}
		if !errors.Is(err, errors.ErrDuplicateSlug) {
			return nil, err
		}
		if attempt >= MaxSlugWriteRetries {
			return nil, errors.NewSlugConflict(base, attempt+1)
		}

		p.metrics.SlugRetries.WithLabelValues(r.archetype).Inc()
		slug = fmt.Sprintf("%s-%d", base, p.now().UnixNano()+int64(attempt))
		r.logger.Warn("slug taken by a concurrent writer, retrying", zap.String("slug", slug))
	}
}
