package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	synapsedoc "github.com/rslavey/synapse-documentation"
)

// Notes:
// - Every subtest chdirs into its own fixture, so the generate tests never
//   run in parallel; the working directory and SYNAPSEDOCS_* variables are
//   process-wide state.

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

// setupRepo creates a minimal workspace repository in its own temp
// directory, chdirs into it, and returns its path.
func setupRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, sub := range []string{"pipeline", "trigger"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
	}

	pipeline := `{
  "name": "P1",
  "properties": {
    "description": "Loads data",
    "folder": {"name": "ETL"},
    "activities": [{"name": "A1"}]
  }
}`
	trigger := `{
  "name": "T1",
  "properties": {
    "pipelines": [
      {"pipelineReference": {"referenceName": "P1"}, "parameters": {"window": "daily"}}
    ]
  }
}`
	if err := os.WriteFile(filepath.Join(dir, "pipeline", "P1.json"), []byte(pipeline), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "trigger", "T1.json"), []byte(trigger), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Chdir(dir)
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunGenerate - End-to-end generation
// ---------------------------------------------------------------------------

func TestRunGenerate(t *testing.T) {
	t.Run("defaults produce readme and intro placeholder", func(t *testing.T) {
		setupRepo(t)
		env, stdout, _ := testEnv()

		if err := runGenerate(nil, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}

		intro := readFile(t, "readme_intro.md")
		if intro != introPlaceholder {
			t.Errorf("intro = %q, want the placeholder", intro)
		}

		readme := readFile(t, "readme.md")
		for _, want := range []string{
			"# Introduction\n",
			"## Pipelines\n",
			"## /ETL\n",
			"### [P1](pipeline%2FP1.json)\n",
			"Loads data\n",
			"#### Activities\n",
			"- [A1](pipeline%2FP1.json) - No description\n",
			"#### Triggers\n",
			"- [T1](trigger%2FT1.json)\n",
			"    - `window`: \"daily\"\n",
		} {
			if !strings.Contains(readme, want) {
				t.Errorf("readme missing %q:\n%s", want, readme)
			}
		}
		if !strings.Contains(stdout.String(), "Created ./readme.md") {
			t.Errorf("stdout = %q, want creation message", stdout.String())
		}
	})

	t.Run("existing intro is kept and prepended", func(t *testing.T) {
		setupRepo(t)
		if err := os.WriteFile("readme_intro.md", []byte("# My Workspace\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		env, _, _ := testEnv()

		if err := runGenerate(nil, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}

		readme := readFile(t, "readme.md")
		if !strings.HasPrefix(readme, "# My Workspace\n\n## Pipelines\n") {
			t.Errorf("readme = %q, want intro prepended with a blank line", readme)
		}
		if intro := readFile(t, "readme_intro.md"); intro != "# My Workspace\n" {
			t.Errorf("intro = %q, should be untouched", intro)
		}
	})

	t.Run("existing readme aborts without overwrite", func(t *testing.T) {
		setupRepo(t)
		if err := os.WriteFile("readme.md", []byte("hand-written"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		env, _, _ := testEnv()

		err := runGenerate(nil, synapsedoc.New(), env)
		if !errors.Is(err, ErrReadmeExists) {
			t.Fatalf("runGenerate() error = %v, want %v", err, ErrReadmeExists)
		}
		if readme := readFile(t, "readme.md"); readme != "hand-written" {
			t.Errorf("readme = %q, should be untouched", readme)
		}
	})

	t.Run("overwrite flag replaces the readme", func(t *testing.T) {
		setupRepo(t)
		if err := os.WriteFile("readme.md", []byte("stale"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		env, _, _ := testEnv()

		if err := runGenerate([]string{"--overwrite"}, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if readme := readFile(t, "readme.md"); !strings.Contains(readme, "## Pipelines") {
			t.Errorf("readme = %q, want regenerated content", readme)
		}
	})

	t.Run("reruns with overwrite are idempotent", func(t *testing.T) {
		setupRepo(t)
		env, _, _ := testEnv()

		if err := runGenerate(nil, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		first := readFile(t, "readme.md")

		if err := runGenerate([]string{"--overwrite"}, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() rerun error = %v", err)
		}
		if second := readFile(t, "readme.md"); second != first {
			t.Errorf("rerun output differs:\n%q\nvs\n%q", first, second)
		}
	})

	t.Run("positional repo argument", func(t *testing.T) {
		repo := setupRepo(t)
		out := t.TempDir()
		t.Chdir(out)
		env, _, _ := testEnv()

		args := []string{repo, "--readme", filepath.Join(out, "docs.md"), "--intro", filepath.Join(out, "intro.md")}
		if err := runGenerate(args, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if readme := readFile(t, filepath.Join(out, "docs.md")); !strings.Contains(readme, "### [P1](") {
			t.Errorf("readme = %q, want pipeline section", readme)
		}
	})

	t.Run("section flags override defaults", func(t *testing.T) {
		setupRepo(t)
		env, _, _ := testEnv()

		args := []string{"--pipeline-title", "Flows", "--header-level", "1", "--quiet"}
		if err := runGenerate(args, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}

		readme := readFile(t, "readme.md")
		if !strings.Contains(readme, "# Flows\n") || !strings.Contains(readme, "## [P1](") {
			t.Errorf("readme = %q, want custom title at level 1", readme)
		}
	})

	t.Run("config file settings apply", func(t *testing.T) {
		setupRepo(t)
		cfg := "sections:\n  pipelines: Flows\n  headerLevel: 3\noutput:\n  readme: ./out.md\n"
		if err := os.WriteFile("docs.yaml", []byte(cfg), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		env, _, _ := testEnv()

		if err := runGenerate([]string{"--config", "docs"}, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if readme := readFile(t, "out.md"); !strings.Contains(readme, "### Flows\n") {
			t.Errorf("readme = %q, want config-driven title and level", readme)
		}
	})

	t.Run("environment variables apply", func(t *testing.T) {
		setupRepo(t)
		t.Setenv("SYNAPSEDOCS_PIPELINE_TITLE", "Env Flows")
		t.Setenv("SYNAPSEDOCS_README", "./env.md")
		env, _, _ := testEnv()

		if err := runGenerate(nil, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if readme := readFile(t, "env.md"); !strings.Contains(readme, "## Env Flows\n") {
			t.Errorf("readme = %q, want env-driven title", readme)
		}
	})

	t.Run("environment variables override config file values", func(t *testing.T) {
		setupRepo(t)
		cfg := "output:\n  readme: ./from-config.md\nsections:\n  pipelines: Config Flows\n"
		if err := os.WriteFile("docs.yaml", []byte(cfg), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		t.Setenv("SYNAPSEDOCS_README", "./from-env.md")
		t.Setenv("SYNAPSEDOCS_PIPELINE_TITLE", "Env Flows")
		env, _, _ := testEnv()

		if err := runGenerate([]string{"--config", "docs"}, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if _, err := os.Stat("from-config.md"); err == nil {
			t.Error("config-file readme path written, env var should win")
		}
		if readme := readFile(t, "from-env.md"); !strings.Contains(readme, "## Env Flows\n") {
			t.Errorf("readme = %q, want the env-driven title", readme)
		}
	})

	t.Run("flags override environment variables", func(t *testing.T) {
		setupRepo(t)
		t.Setenv("SYNAPSEDOCS_PIPELINE_TITLE", "Env Flows")
		env, _, _ := testEnv()

		if err := runGenerate([]string{"--pipeline-title", "Flag Flows"}, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if readme := readFile(t, "readme.md"); !strings.Contains(readme, "## Flag Flows\n") {
			t.Errorf("readme = %q, want flag-driven title", readme)
		}
	})

	t.Run("invalid header level aborts before any write", func(t *testing.T) {
		setupRepo(t)
		env, _, _ := testEnv()

		err := runGenerate([]string{"--header-level", "9"}, synapsedoc.New(), env)
		if !errors.Is(err, synapsedoc.ErrInvalidHeaderLevel) {
			t.Fatalf("runGenerate() error = %v, want %v", err, synapsedoc.ErrInvalidHeaderLevel)
		}
		if _, statErr := os.Stat("readme_intro.md"); statErr == nil {
			t.Error("intro placeholder written despite validation failure")
		}
	})

	t.Run("missing layout fails", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		env, _, _ := testEnv()

		err := runGenerate(nil, synapsedoc.New(), env)
		if !errors.Is(err, synapsedoc.ErrMissingPipelineDir) {
			t.Errorf("runGenerate() error = %v, want %v", err, synapsedoc.ErrMissingPipelineDir)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		setupRepo(t)
		env, _, _ := testEnv()

		err := runGenerate([]string{"--bogus"}, synapsedoc.New(), env)
		if !errors.Is(err, ErrInvalidFlags) {
			t.Errorf("runGenerate() error = %v, want %v", err, ErrInvalidFlags)
		}
	})

	t.Run("verify aborts on a broken document", func(t *testing.T) {
		setupRepo(t)
		if err := os.WriteFile("readme_intro.md", []byte("####### Too deep\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		env, _, stderr := testEnv()

		err := runGenerate([]string{"--verify"}, synapsedoc.New(), env)
		if !errors.Is(err, ErrVerifyDocument) {
			t.Fatalf("runGenerate() error = %v, want %v", err, ErrVerifyDocument)
		}
		if !strings.Contains(stderr.String(), "deeper than") {
			t.Errorf("stderr = %q, want the verification issue", stderr.String())
		}
		if _, statErr := os.Stat("readme.md"); statErr == nil {
			t.Error("readme written despite verification failure")
		}
	})

	t.Run("quiet suppresses the creation message", func(t *testing.T) {
		setupRepo(t)
		env, stdout, _ := testEnv()

		if err := runGenerate([]string{"--quiet"}, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want no output", stdout.String())
		}
	})

	t.Run("verbose reports load details", func(t *testing.T) {
		setupRepo(t)
		env, stdout, _ := testEnv()

		if err := runGenerate([]string{"--verbose"}, synapsedoc.New(), env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		for _, want := range []string{"Created intro placeholder", "Loaded 1 pipeline(s) and 1 trigger(s)"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("stdout = %q, want %q", stdout.String(), want)
			}
		}
	})
}
