package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/hpungsan/facet/internal/config"
	"github.com/hpungsan/facet/internal/db"
	"github.com/hpungsan/facet/internal/logging"
	"github.com/hpungsan/facet/internal/mcp"
	"github.com/hpungsan/facet/internal/ops"
	"github.com/hpungsan/facet/internal/textgen"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"generate": true, "list": true, "fetch": true,
	"crystals": true, "archetypes": true,
	"serve": true, "mcp": true,
	"help": true,
}

// runtime carries everything the commands share.
type runtime struct {
	db       *sql.DB
	cfg      *config.Config
	pipeline *ops.Pipeline
	registry *prometheus.Registry
	logger   *zap.Logger
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode(args []string) bool {
	if len(args) < 2 {
		return false // No args → MCP server
	}
	arg := args[1]
	if arg == "--verbose" && len(args) > 2 {
		arg = args[2]
	}
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion(args []string) bool {
	if len(args) < 2 {
		return false
	}
	arg := args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// needsNoDB reports whether args can run without opening the database.
// Bare "facet" with piped stdin is MCP server mode and needs it.
func needsNoDB(args []string) bool {
	if isHelpOrVersion(args) {
		return true
	}
	return len(args) >= 2 && args[1] == "archetypes"
}

// hasVerbose reports whether --verbose was passed before the subcommand.
func hasVerbose(args []string) bool {
	for _, a := range args[1:] {
		if a == "--verbose" {
			return true
		}
		if cliCommands[a] {
			return false
		}
	}
	return false
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ___               _
  | __|_ _  __  ___ | |_
  | _/ _' |/ _|/ -_)|  _|
  |_|\__,_|\__|\___| \__|

  Crystal content generation pipeline

  Usage: facet <command> [options]
         facet --help

  MCP server mode requires piped input.`)
}

// newRuntime wires the pipeline. Without an API key every run uses fallback content.
func newRuntime(ctx context.Context, database *sql.DB, cfg *config.Config, logger *zap.Logger) (*runtime, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var service textgen.Service
	if cfg.APIKey != "" {
		genai, err := textgen.NewGenAI(ctx, cfg.APIKey, cfg.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("text generation client: %w", err)
		}
		service = textgen.WithTimeout(genai, cfg.GenerationTimeout())
	} else {
		logger.Warn("no API key configured, drafts will use fallback content")
	}

	if err := ensureCrystalCatalog(ctx, database, logger); err != nil {
		return nil, err
	}

	pipeline, err := ops.NewPipeline(ops.PipelineDeps{
		Service:  service,
		Store:    ops.NewSQLStore(database),
		Crystals: &db.CrystalRepo{DB: database},
		Logger:   logger,
		Metrics:  ops.NewMetrics(registry),
		Config:   cfg,
	})
	if err != nil {
		return nil, err
	}

	return &runtime{
		db:       database,
		cfg:      cfg,
		pipeline: pipeline,
		registry: registry,
		logger:   logger,
	}, nil
}

// ensureCrystalCatalog seeds the crystal table on first use.
func ensureCrystalCatalog(ctx context.Context, database *sql.DB, logger *zap.Logger) error {
	existing, err := db.ListCrystals(ctx, database, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	out, err := ops.SeedCrystals(ctx, database)
	if err != nil {
		return err
	}
	logger.Info("crystal catalog seeded", zap.Int("crystals", out.Upserted))
	return nil
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version and archetypes before DB init (no DB needed)
	if needsNoDB(os.Args) {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir := filepath.Join(homeDir, ".facet")

	cwd, err := os.Getwd()
	if err != nil {
		cwd = baseDir
	}
	cfg, err := config.LoadWithRepo(baseDir, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if hasVerbose(os.Args) {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		logger.Warn("unknown tools in disabled_tools", zap.Strings("tools", unknown))
	}

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()
	db.ConfigurePool(database, cfg)

	rt, err := newRuntime(context.Background(), database, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// CLI mode: known subcommand
	if isCLIMode(os.Args) {
		app := newCLIApp(rt)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'facet --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(database, cfg, rt.pipeline, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
