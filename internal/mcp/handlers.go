package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/facet/internal/config"
	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	pipeline *ops.Pipeline
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config, pipeline *ops.Pipeline) *Handlers {
	return &Handlers{db: db, cfg: cfg, pipeline: pipeline}
}

// Request types for each tool

// GenerateRequest represents the arguments for post_generate.
type GenerateRequest struct {
	Archetype string            `json:"archetype"`
	Context   map[string]string `json:"context,omitempty"`
	Strict    bool              `json:"strict,omitempty"`
}

// GenerateAllRequest represents the arguments for post_generate_all.
type GenerateAllRequest struct {
	Context map[string]string `json:"context,omitempty"`
	Strict  bool              `json:"strict,omitempty"`
}

// ListRequest represents the arguments for post_list.
type ListRequest struct {
	Status    string `json:"status,omitempty"`
	Archetype string `json:"archetype,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// FetchRequest represents the arguments for post_fetch.
type FetchRequest struct {
	ID          string `json:"id,omitempty"`
	Slug        string `json:"slug,omitempty"`
	IncludeBody *bool  `json:"include_body,omitempty"`
}

// CrystalLookupRequest represents the arguments for crystal_lookup.
type CrystalLookupRequest struct {
	Name   string `json:"name,omitempty"`
	Chakra string `json:"chakra,omitempty"`
}

// Handler implementations

// HandleGenerate handles the post_generate tool call.
func (h *Handlers) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}
	if input.Archetype == "" {
		return errorResult(errors.NewInvalidRequest("archetype is required")), nil
	}

	result, err := h.pipeline.Generate(ctx, ops.GenerateInput{
		Archetype: input.Archetype,
		Context:   content.Context(input.Context),
		Strict:    input.Strict,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleGenerateAll handles the post_generate_all tool call.
func (h *Handlers) HandleGenerateAll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateAllRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := h.pipeline.GenerateAll(ctx, ops.GenerateAllInput{
		Context: content.Context(input.Context),
		Strict:  input.Strict,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the post_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.List(ctx, h.db, ops.ListInput{
		Status:    input.Status,
		Archetype: input.Archetype,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the post_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Fetch(ctx, h.db, ops.FetchInput{
		ID:          input.ID,
		Slug:        input.Slug,
		IncludeBody: input.IncludeBody,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCrystalLookup handles the crystal_lookup tool call.
func (h *Handlers) HandleCrystalLookup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CrystalLookupRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.LookupCrystals(ctx, h.db, ops.CrystalLookupInput{
		Name:   input.Name,
		Chakra: input.Chakra,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are never exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if facetErr, ok := errors.As(err); ok {
		msg := facetErr.Message
		if err != error(facetErr) && facetErr.Code != errors.ErrInternal {
			// keep wrapper context such as "items[2]: ..."
			msg = err.Error()
		}
		errorObj := map[string]any{
			"code":    facetErr.Code,
			"message": msg,
			"status":  facetErr.Status,
		}
		if facetErr.Code != errors.ErrInternal && facetErr.Details != nil {
			errorObj["details"] = facetErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	body, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(body)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
