package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/errors"
	"github.com/hpungsan/facet/internal/mcp"
	"github.com/hpungsan/facet/internal/ops"
	"github.com/hpungsan/facet/internal/web"
)

// newCLIApp creates the CLI application with all commands.
// rt may be nil for commands that need no database (help, version, archetypes).
func newCLIApp(rt *runtime) *cli.App {
	app := &cli.App{
		Name:    "facet",
		Usage:   "Crystal content generation pipeline",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Log at debug level"},
		},
		Commands: []*cli.Command{
			generateCmd(rt),
			listCmd(rt),
			fetchCmd(rt),
			crystalsCmd(rt),
			archetypesCmd(),
			serveCmd(rt),
			mcpCmd(rt),
		},
		// --var values may contain commas ("calm, focus").
		DisableSliceFlagSeparator: true,
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// generateCmd creates the generate command.
func generateCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Generate a draft post for an archetype, or for every archetype with \"all\"",
		ArgsUsage: "<archetype|all>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "var", Usage: "Template variable as key=value (repeatable)"},
			&cli.BoolFlag{Name: "strict", Usage: "Fail when a template placeholder is left unresolved"},
		},
		Action: func(c *cli.Context) error {
			archetype := strings.TrimSpace(c.Args().First())
			if archetype == "" {
				return outputError(errors.NewInvalidRequest("archetype is required (or \"all\")"))
			}

			vars, err := parseVars(c.StringSlice("var"))
			if err != nil {
				return outputError(err)
			}
			if archetype == "all" {
				output, err := rt.pipeline.GenerateAll(c.Context, ops.GenerateAllInput{Context: vars, Strict: c.Bool("strict")})
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}

			output, err := rt.pipeline.Generate(c.Context, ops.GenerateInput{
				Archetype: archetype,
				Context:   vars,
				Strict:    c.Bool("strict"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List posts, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status", Aliases: []string{"s"}, Usage: "Filter by status: draft|review|published"},
			&cli.StringFlag{Name: "archetype", Aliases: []string{"a"}, Usage: "Filter by archetype"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, rt.db, ops.ListInput{
				Status:    c.String("status"),
				Archetype: c.String("archetype"),
				Limit:     c.Int("limit"),
				Offset:    c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// fetchCmd creates the fetch command.
func fetchCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a post by ID or slug",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "slug", Usage: "Post slug"},
			&cli.BoolFlag{Name: "no-body", Usage: "Exclude content from output"},
		},
		Action: func(c *cli.Context) error {
			input := ops.FetchInput{Slug: c.String("slug")}

			// Check for positional ID argument
			if c.NArg() > 0 {
				input.ID = c.Args().First()
			}

			if c.Bool("no-body") {
				includeBody := false
				input.IncludeBody = &includeBody
			}

			output, err := ops.Fetch(c.Context, rt.db, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// crystalsCmd creates the crystals command group.
func crystalsCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "crystals",
		Usage: "Manage the crystal reference catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "Load the bundled catalog (refreshes existing rows)",
				Action: func(c *cli.Context) error {
					output, err := ops.SeedCrystals(c.Context, rt.db)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "find",
				Usage: "Find a crystal by name, or list the crystals of a chakra",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Crystal name (substring match)"},
					&cli.StringFlag{Name: "chakra", Aliases: []string{"c"}, Usage: "Chakra name"},
				},
				Action: func(c *cli.Context) error {
					output, err := ops.LookupCrystals(c.Context, rt.db, ops.CrystalLookupInput{
						Name:   c.String("name"),
						Chakra: c.String("chakra"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// archetypesCmd lists the registered archetypes and the variables each one reads.
func archetypesCmd() *cli.Command {
	return &cli.Command{
		Name:  "archetypes",
		Usage: "List content archetypes",
		Action: func(_ *cli.Context) error {
			type entry struct {
				Archetype string `json:"archetype"`
				Category  string `json:"category"`
				Title     string `json:"title_pattern"`
			}
			out := make([]entry, 0, len(content.Archetypes()))
			for _, a := range content.Archetypes() {
				t, err := content.Lookup(string(a))
				if err != nil {
					return outputError(err)
				}
				out = append(out, entry{Archetype: string(a), Category: t.Category, Title: t.TitlePattern})
			}
			return outputJSON(out)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the review UI and /metrics endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			srv, err := web.NewServer(rt.db, rt.cfg, rt.pipeline, web.Options{
				Version:  Version,
				Bind:     c.String("bind"),
				Port:     c.Int("port"),
				Gatherer: rt.registry,
				Logger:   rt.logger,
			})
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			return web.Run(srv, rt.logger)
		},
	}
}

// mcpCmd creates the mcp command. Running with piped stdin and no command does the same.
func mcpCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve MCP tools over stdio",
		Action: func(_ *cli.Context) error {
			return mcp.Run(rt.db, rt.cfg, rt.pipeline, Version)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if facetErr, ok := errors.As(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", facetErr.Code, facetErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// parseVars turns key=value pairs into a template context. Keys are lowercased.
func parseVars(pairs []string) (content.Context, error) {
	vars := content.Context{}
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("invalid --var %q: want key=value", p))
		}
		if v := strings.TrimSpace(value); v != "" {
			vars[key] = v
		}
	}
	return vars, nil
}
