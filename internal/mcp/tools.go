package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/facet/internal/content"
)

func archetypeNames() []string {
	all := content.Archetypes()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = string(a)
	}
	return names
}

var contextDescription = "Template variables: crystal, chakra, season, month, zodiac, benefit. " +
	"Missing month, year and season come from the current date."

var strictDescription = "Fail with MISSING_VARIABLE instead of leaving a {placeholder} in the post"

var generateToolDef = mcp.NewTool("post_generate",
	mcp.WithDescription("Generate one draft blog post for an archetype. "+
		"Uses the text generation service with one strict retry, then deterministic fallback content. "+
		"The post is stored as a draft and never published."),
	mcp.WithString("archetype",
		mcp.Required(),
		mcp.Description("Content archetype"),
		mcp.Enum(archetypeNames()...),
	),
	mcp.WithObject("context",
		mcp.Description(contextDescription),
	),
	mcp.WithBoolean("strict",
		mcp.Description(strictDescription),
	),
)

var generateAllToolDef = mcp.NewTool("post_generate_all",
	mcp.WithDescription("Generate one draft for every archetype. Subjects not given in context are picked from the current date."),
	mcp.WithObject("context",
		mcp.Description(contextDescription),
	),
	mcp.WithBoolean("strict",
		mcp.Description(strictDescription),
	),
)

var listToolDef = mcp.NewTool("post_list",
	mcp.WithDescription("List stored posts, newest first. Returns summaries without the body."),
	mcp.WithString("status",
		mcp.Description("Filter by status"),
		mcp.Enum("draft", "review", "published"),
	),
	mcp.WithString("archetype",
		mcp.Description("Filter by archetype (aliases such as chakra or seasonal are accepted)"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Max items (default 20, max 100)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Items to skip"),
	),
)

var fetchToolDef = mcp.NewTool("post_fetch",
	mcp.WithDescription("Fetch one post by id or slug."),
	mcp.WithString("id",
		mcp.Description("Post ULID"),
	),
	mcp.WithString("slug",
		mcp.Description("Post slug"),
	),
	mcp.WithBoolean("include_body",
		mcp.Description("Include the HTML body (default true)"),
	),
)

var crystalLookupToolDef = mcp.NewTool("crystal_lookup",
	mcp.WithDescription("Look up crystal reference data by name (substring match) or list crystals for a chakra."),
	mcp.WithString("name",
		mcp.Description("Crystal name or fragment, e.g. \"rose\""),
	),
	mcp.WithString("chakra",
		mcp.Description("Chakra name, e.g. \"Heart\" or \"third-eye\""),
	),
)
