package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	apiKeyEnv       = "FACET_GENAI_API_KEY"
	geminiAPIKeyEnv = "GEMINI_API_KEY"
	modelEnv        = "FACET_MODEL"
)

// Config holds application configuration.
type Config struct {
	// Model is the text generation model used for drafts.
	Model string `json:"model,omitempty"`

	// APIKey authenticates against the text generation service.
	// Usually supplied through FACET_GENAI_API_KEY rather than the file.
	APIKey string `json:"api_key,omitempty"`

	// GenerationTimeoutSeconds bounds a single text generation call.
	// A timeout is treated like any other service failure (fallback content is used).
	GenerationTimeoutSeconds int `json:"generation_timeout_seconds,omitempty"`

	// StrictVariables rejects generation requests whose context leaves
	// template placeholders unresolved. When false they pass through literally.
	StrictVariables bool `json:"strict_variables,omitempty"`

	// Author is stamped on every generated post.
	Author string `json:"author,omitempty"`

	// Concurrency caps parallel archetype runs for "generate all".
	Concurrency int `json:"concurrency,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:                    "gemini-2.5-flash",
		GenerationTimeoutSeconds: 90,
		Author:                   "Facet Editorial",
		Concurrency:              2,
		LogLevel:                 "info",
	}
}

// GenerationTimeout returns the per-call bound as a duration.
func (c *Config) GenerationTimeout() time.Duration {
	if c.GenerationTimeoutSeconds <= 0 {
		return time.Duration(DefaultConfig().GenerationTimeoutSeconds) * time.Second
	}
	return time.Duration(c.GenerationTimeoutSeconds) * time.Second
}

// Load loads configuration from baseDir/config.json and applies environment overrides.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.facet.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadWithRepo loads configuration from both global (~/.facet) and repo (.facet) directories.
// Repo config is found by walking upward from startDir to find the nearest .facet/config.json.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	cfg := Merge(Merge(DefaultConfig(), global), repo)
	cfg.applyEnvOverrides()
	return cfg, nil
}

// FindRepoConfig walks upward from startDir to find the nearest .facet/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ".facet", "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw returns a zero-valued config (not defaults) if the file doesn't exist.
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(apiKeyEnv); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(modelEnv); v != "" {
		c.Model = v
	}
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Model = firstString(overlay.Model, base.Model)
	result.APIKey = firstString(overlay.APIKey, base.APIKey)
	result.Author = firstString(overlay.Author, base.Author)
	result.LogLevel = firstString(overlay.LogLevel, base.LogLevel)

	result.GenerationTimeoutSeconds = firstInt(overlay.GenerationTimeoutSeconds, base.GenerationTimeoutSeconds)
	result.Concurrency = firstInt(overlay.Concurrency, base.Concurrency)
	result.DBMaxOpenConns = firstInt(overlay.DBMaxOpenConns, base.DBMaxOpenConns)
	result.DBMaxIdleConns = firstInt(overlay.DBMaxIdleConns, base.DBMaxIdleConns)

	// Booleans: overlay wins if true, else base
	result.StrictVariables = base.StrictVariables || overlay.StrictVariables

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

func firstString(overlay, base string) string {
	if strings.TrimSpace(overlay) != "" {
		return overlay
	}
	return base
}

func firstInt(overlay, base int) int {
	if overlay != 0 {
		return overlay
	}
	return base
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, list := range [][]string{a, b} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s != "" && !seen[s] {
				seen[s] = true
				result = append(result, s)
			}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
