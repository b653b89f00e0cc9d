package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	t.Setenv(geminiAPIKeyEnv, "")
	t.Setenv(modelEnv, "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := DefaultConfig()
	if cfg.Model != def.Model {
		t.Errorf("Model = %q, want %q", cfg.Model, def.Model)
	}
	if cfg.GenerationTimeoutSeconds != def.GenerationTimeoutSeconds {
		t.Errorf("GenerationTimeoutSeconds = %d, want %d", cfg.GenerationTimeoutSeconds, def.GenerationTimeoutSeconds)
	}
	if cfg.Author != def.Author {
		t.Errorf("Author = %q, want %q", cfg.Author, def.Author)
	}
	if cfg.StrictVariables {
		t.Error("StrictVariables = true, want false by default")
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	t.Setenv(modelEnv, "")
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"model": "gemini-2.5-pro", "generation_timeout_seconds": 30, "strict_variables": true}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gemini-2.5-pro")
	}
	if cfg.GenerationTimeout() != 30*time.Second {
		t.Errorf("GenerationTimeout() = %v, want 30s", cfg.GenerationTimeout())
	}
	if !cfg.StrictVariables {
		t.Error("StrictVariables = false, want true")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{not json}`)

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(geminiAPIKeyEnv, "gemini-key")
	t.Setenv(apiKeyEnv, "facet-key")
	t.Setenv(modelEnv, "gemini-env-model")

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"api_key": "file-key", "model": "file-model"}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "facet-key" {
		t.Errorf("APIKey = %q, want %q (FACET_GENAI_API_KEY wins)", cfg.APIKey, "facet-key")
	}
	if cfg.Model != "gemini-env-model" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gemini-env-model")
	}
}

func TestLoad_DisabledTools(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"disabled_tools": ["post_generate_all", "crystal_lookup"]}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.DisabledTools) != 2 {
		t.Fatalf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
	if cfg.DisabledTools[0] != "post_generate_all" {
		t.Errorf("DisabledTools[0] = %q, want %q", cfg.DisabledTools[0], "post_generate_all")
	}
}

func TestLoadWithRepo_BothPresent(t *testing.T) {
	t.Setenv(modelEnv, "")
	globalDir := t.TempDir()
	repoRoot := t.TempDir()

	writeConfig(t, globalDir, `{"model": "global-model", "author": "Shop Team", "disabled_tools": ["post_generate_all"]}`)
	writeConfig(t, filepath.Join(repoRoot, ".facet"), `{"model": "repo-model", "disabled_tools": ["crystal_lookup"]}`)

	nested := filepath.Join(repoRoot, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	cfg, err := LoadWithRepo(globalDir, nested)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}
	if cfg.Model != "repo-model" {
		t.Errorf("Model = %q, want repo-model (repo override)", cfg.Model)
	}
	if cfg.Author != "Shop Team" {
		t.Errorf("Author = %q, want Shop Team (global)", cfg.Author)
	}
	if len(cfg.DisabledTools) != 2 {
		t.Errorf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
}

func TestLoadWithRepo_NeitherPresent(t *testing.T) {
	t.Setenv(modelEnv, "")
	cfg, err := LoadWithRepo(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}
	if cfg.Model != DefaultConfig().Model {
		t.Errorf("Model = %q, want default", cfg.Model)
	}
	if len(cfg.DisabledTools) != 0 {
		t.Errorf("DisabledTools = %v, want empty", cfg.DisabledTools)
	}
}

func TestMerge_ScalarOverride(t *testing.T) {
	base := &Config{Concurrency: 4, DBMaxOpenConns: 5}
	overlay := &Config{Concurrency: 1}

	result := Merge(base, overlay)

	if result.Concurrency != 1 {
		t.Errorf("Concurrency = %d, want 1 (overlay)", result.Concurrency)
	}
	if result.DBMaxOpenConns != 5 {
		t.Errorf("DBMaxOpenConns = %d, want 5 (base, overlay is zero)", result.DBMaxOpenConns)
	}
}

func TestMerge_BoolAndSlices(t *testing.T) {
	base := &Config{StrictVariables: true, DisabledTools: []string{" a ", "b"}}
	overlay := &Config{DisabledTools: []string{"b", "c", ""}}

	result := Merge(base, overlay)

	if !result.StrictVariables {
		t.Error("StrictVariables = false, want true (base)")
	}
	want := []string{"a", "b", "c"}
	if len(result.DisabledTools) != len(want) {
		t.Fatalf("DisabledTools = %v, want %v", result.DisabledTools, want)
	}
	for i := range want {
		if result.DisabledTools[i] != want[i] {
			t.Errorf("DisabledTools[%d] = %q, want %q", i, result.DisabledTools[i], want[i])
		}
	}
}

func TestGenerationTimeout_DefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}
	if cfg.GenerationTimeout() != 90*time.Second {
		t.Errorf("GenerationTimeout() = %v, want 90s", cfg.GenerationTimeout())
	}
}
