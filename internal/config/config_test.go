package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rslavey/synapse-documentation/internal/config"
)

// Notes:
// - Name resolution subtests chdir into a fixture directory, so those do
//   not run in parallel.

const sampleConfig = `input:
  repoDir: ./workspace
output:
  readme: ./docs/readme.md
  intro: ./docs/readme_intro.md
  overwrite: true
sections:
  pipelines: Flows
  activities: Steps
  triggers: Schedules
  headerLevel: 3
`

// ---------------------------------------------------------------------------
// TestLoadConfig - Path-based loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Run("loads from explicit path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docs.yaml")
		if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		cfg, err := config.LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.RepoDir != "./workspace" {
			t.Errorf("RepoDir = %q, want ./workspace", cfg.Input.RepoDir)
		}
		if cfg.Output.Readme != "./docs/readme.md" || !cfg.Output.Overwrite {
			t.Errorf("Output = %+v, want readme path and overwrite", cfg.Output)
		}
		if cfg.Sections.Pipelines != "Flows" || cfg.Sections.HeaderLevel != 3 {
			t.Errorf("Sections = %+v, want Flows at level 3", cfg.Sections)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want %v", err, config.ErrConfigNotFound)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig("")
		if !errors.Is(err, config.ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want %v", err, config.ErrEmptyConfigName)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docs.yaml")
		data := []byte("input:\n  repoDirr: ./typo\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want %v", err, config.ErrConfigParse)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docs.yaml")
		if err := os.WriteFile(path, []byte("input: [unclosed\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want %v", err, config.ErrConfigParse)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfigByName - Name resolution
// ---------------------------------------------------------------------------

func TestLoadConfigByName(t *testing.T) {
	t.Run("resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "docs.yaml"), []byte(sampleConfig), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		t.Chdir(dir)

		cfg, err := config.LoadConfig("docs")
		if err != nil {
			t.Fatalf("LoadConfig(docs) error = %v", err)
		}
		if cfg.Input.RepoDir != "./workspace" {
			t.Errorf("RepoDir = %q, want ./workspace", cfg.Input.RepoDir)
		}
	})

	t.Run("falls back to yml extension", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "docs.yml"), []byte(sampleConfig), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		t.Chdir(dir)

		if _, err := config.LoadConfig("docs"); err != nil {
			t.Errorf("LoadConfig(docs) error = %v, want nil", err)
		}
	})

	t.Run("unresolvable name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := config.LoadConfig("nonexistent")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("LoadConfig(nonexistent) error = %v, want %v", err, config.ErrConfigNotFound)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Neutral defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	if *cfg != (config.Config{}) {
		t.Errorf("DefaultConfig() = %+v, want zero values", cfg)
	}
}
