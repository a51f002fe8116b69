package main

import (
	"errors"
	"fmt"
	"os"

	synapsedoc "github.com/rslavey/synapse-documentation"
	"github.com/rslavey/synapse-documentation/internal/config"
	"github.com/rslavey/synapse-documentation/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags   = errors.New("invalid arguments")
	ErrReadmeExists   = errors.New("readme already exists (use --overwrite to replace it)")
	ErrReadIntro      = errors.New("failed to read intro file")
	ErrWriteIntro     = errors.New("failed to write intro file")
	ErrWriteReadme    = errors.New("failed to write readme")
	ErrVerifyDocument = errors.New("generated document failed verification")
)

// File permission constant.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// Default paths per the generator contract.
const (
	defaultRepoDir    = "./"
	defaultReadmePath = "./readme.md"
	defaultIntroPath  = "./readme_intro.md"
)

// introPlaceholder seeds the intro file when it does not exist yet.
const introPlaceholder = "# Introduction\n\nDescribe this workspace here.\n"

// Documenter is the interface for the generation service.
type Documenter interface {
	Generate(input synapsedoc.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Documenter = (*synapsedoc.Generator)(nil)

// settings holds the fully resolved generation parameters after merging
// config file, environment, flags, and defaults.
type settings struct {
	repo      string
	readme    string
	intro     string
	overwrite bool
	render    synapsedoc.RenderOptions
}

// runGenerate orchestrates the generation process: resolve settings,
// bootstrap the intro file, enforce the overwrite policy, load the
// repository, render, and write the final document in one step.
func runGenerate(args []string, gen Documenter, env *Environment) error {
	flags, positionals, err := parseGenerateFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg := config.DefaultConfig()
	configPath := flags.common.config
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, positionals, cfg)
	resolved := resolveSettings(cfg)

	// Header level is validated up front so a bad value aborts before any
	// file is touched.
	if err := resolved.render.Validate(); err != nil {
		return err
	}

	// Intro bootstrap. Creating the placeholder is idempotent and harmless
	// to repeat, so it runs before the overwrite guard.
	if !fileutil.FileExists(resolved.intro) {
		if err := os.WriteFile(resolved.intro, []byte(introPlaceholder), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteIntro, err)
		}
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "Created intro placeholder %s\n", resolved.intro)
		}
	}

	// Target guard: abort before any generation work.
	if fileutil.FileExists(resolved.readme) && !resolved.overwrite {
		return fmt.Errorf("%w: %s", ErrReadmeExists, resolved.readme)
	}

	repo, err := synapsedoc.LoadRepo(resolved.repo)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Loaded %d pipeline(s) and %d trigger(s) from %s\n",
			len(repo.Pipelines), len(repo.Triggers), resolved.repo)
	}

	intro, err := os.ReadFile(resolved.intro) // #nosec G304 -- resolved path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadIntro, err)
	}

	doc, err := gen.Generate(synapsedoc.Input{
		Intro:   string(intro),
		Repo:    repo,
		Options: resolved.render,
	})
	if err != nil {
		return err
	}

	if flags.verify {
		if issues := synapsedoc.Verify(doc); len(issues) > 0 {
			for _, issue := range issues {
				fmt.Fprintf(env.Stderr, "  - %s\n", issue)
			}
			return fmt.Errorf("%w: %d issue(s) found", ErrVerifyDocument, len(issues))
		}
	}

	if err := os.WriteFile(resolved.readme, doc, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReadme, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", resolved.readme)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config
// values; a positional argument overrides the --repo flag.
func mergeFlags(flags *generateFlags, positionals []string, cfg *config.Config) {
	if flags.repo != "" {
		cfg.Input.RepoDir = flags.repo
	}
	if len(positionals) > 0 {
		cfg.Input.RepoDir = positionals[0]
	}
	if flags.output.readme != "" {
		cfg.Output.Readme = flags.output.readme
	}
	if flags.output.intro != "" {
		cfg.Output.Intro = flags.output.intro
	}
	if flags.output.overwrite {
		cfg.Output.Overwrite = true
	}
	if flags.sections.pipelineTitle != "" {
		cfg.Sections.Pipelines = flags.sections.pipelineTitle
	}
	if flags.sections.activitiesTitle != "" {
		cfg.Sections.Activities = flags.sections.activitiesTitle
	}
	if flags.sections.triggersTitle != "" {
		cfg.Sections.Triggers = flags.sections.triggersTitle
	}
	if flags.sections.headerLevel != 0 {
		cfg.Sections.HeaderLevel = flags.sections.headerLevel
	}
}

// resolveSettings applies the documented defaults to whatever the merged
// config left unset.
func resolveSettings(cfg *config.Config) *settings {
	s := &settings{
		repo:      cfg.Input.RepoDir,
		readme:    cfg.Output.Readme,
		intro:     cfg.Output.Intro,
		overwrite: cfg.Output.Overwrite,
		render: synapsedoc.RenderOptions{
			PipelineSectionTitle:   cfg.Sections.Pipelines,
			ActivitiesSectionTitle: cfg.Sections.Activities,
			TriggersSectionTitle:   cfg.Sections.Triggers,
			HeaderLevel:            cfg.Sections.HeaderLevel,
		},
	}
	if s.repo == "" {
		s.repo = defaultRepoDir
	}
	if s.readme == "" {
		s.readme = defaultReadmePath
	}
	if s.intro == "" {
		s.intro = defaultIntroPath
	}
	if s.render.PipelineSectionTitle == "" {
		s.render.PipelineSectionTitle = synapsedoc.DefaultPipelineSectionTitle
	}
	if s.render.ActivitiesSectionTitle == "" {
		s.render.ActivitiesSectionTitle = synapsedoc.DefaultActivitiesSectionTitle
	}
	if s.render.TriggersSectionTitle == "" {
		s.render.TriggersSectionTitle = synapsedoc.DefaultTriggersSectionTitle
	}
	if s.render.HeaderLevel == 0 {
		s.render.HeaderLevel = synapsedoc.DefaultHeaderLevel
	}
	return s
}
