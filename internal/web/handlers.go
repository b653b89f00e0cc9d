package web

import (
	"database/sql"
	"encoding/json"
	"html/template"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hpungsan/facet/internal/config"
	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/ops"
)

// maxGenerateBody bounds POST /generate request bodies.
const maxGenerateBody = 64 << 10

// contextKeys are the template variables accepted from forms and JSON bodies.
var contextKeys = []string{"crystal", "chakra", "season", "month", "zodiac", "benefit"}

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	pipeline *ops.Pipeline
	renderer *Renderer
	logger   *zap.Logger
}

// HandleList handles GET /posts: list posts, newest first.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	input := ops.ListInput{
		Status:    r.URL.Query().Get("status"),
		Archetype: r.URL.Query().Get("archetype"),
		Limit:     parseIntParam(r, "limit", ops.DefaultListLimit),
		Offset:    parseIntParam(r, "offset", 0),
	}

	result, err := ops.List(r.Context(), h.db, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	h.renderer.renderPage(w, r, "list", ListPageData{
		PageData: PageData{
			Title:   "Posts",
			Version: h.renderer.version,
			Nav:     "posts",
		},
		Items:      result.Items,
		Pagination: result.Pagination,
		Status:     input.Status,
		Archetype:  input.Archetype,
		Archetypes: content.Archetypes(),
	})
}

// HandleDetail handles GET /posts/{id}: view a single post by ID or slug.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("id")
	if ref == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("post ID is required"))
		return
	}

	result, err := ops.Fetch(r.Context(), h.db, ops.FetchInput{ID: ref})
	if errors.Is(err, errors.ErrNotFound) {
		result, err = ops.Fetch(r.Context(), h.db, ops.FetchInput{Slug: ref})
	}
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	h.renderer.renderPage(w, r, "detail", DetailPageData{
		PageData: PageData{
			Title:   result.Title,
			Version: h.renderer.version,
			Nav:     "posts",
		},
		Post: result,
		// Content is produced by goldmark with raw HTML disabled.
		Body: template.HTML(result.Content),
	})
}

// HandleGenerate handles POST /generate/{archetype}: run the pipeline once.
// Variables come from form fields or a JSON body {"context": {...}}.
func (h *Handlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	archetype := r.PathValue("archetype")

	vars, err := parseContext(w, r)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	var result *ops.GenerateOutput
	if archetype == "all" {
		all, err := h.pipeline.GenerateAll(r.Context(), ops.GenerateAllInput{Context: vars})
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		if all.Failed > 0 {
			h.logger.Warn("generate all finished with failures",
				zap.Int("generated", all.Generated),
				zap.Int("failed", all.Failed))
		}
		if wantsJSON(r) {
			renderJSON(w, http.StatusOK, all)
			return
		}
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
		return
	}

	result, err = h.pipeline.Generate(r.Context(), ops.GenerateInput{
		Archetype: archetype,
		Context:   vars,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusCreated, result)
		return
	}

	h.renderer.renderPageStatus(w, r, http.StatusCreated, "generated", GeneratedPageData{
		PageData: PageData{
			Title:   result.Title,
			Version: h.renderer.version,
			Nav:     "generate",
		},
		Result: result,
	})
}

// parseContext reads template variables from a JSON or form body.
// Unknown keys are ignored; empty values are dropped.
func parseContext(w http.ResponseWriter, r *http.Request) (content.Context, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxGenerateBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	raw := map[string]string{}

	switch mediaType {
	case "application/json":
		var body struct {
			Context map[string]string `json:"context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, errors.NewInvalidRequest("invalid JSON body: " + err.Error())
		}
		raw = body.Context
	default:
		if err := r.ParseForm(); err != nil {
			return nil, errors.NewInvalidRequest("invalid form data")
		}
		raw = formValues(r.PostForm)
	}

	vars := content.Context{}
	for _, k := range contextKeys {
		if v := strings.TrimSpace(raw[k]); v != "" {
			vars[k] = v
		}
	}
	return vars, nil
}

func formValues(form url.Values) map[string]string {
	out := make(map[string]string, len(form))
	for k := range form {
		out[k] = form.Get(k)
	}
	return out
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
