package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rslavey/synapse-documentation/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath      string // SYNAPSEDOCS_CONFIG: config file name or path
	Repo            string // SYNAPSEDOCS_REPO: repository root
	Readme          string // SYNAPSEDOCS_README: generated document path
	Intro           string // SYNAPSEDOCS_INTRO: intro content path
	PipelineTitle   string // SYNAPSEDOCS_PIPELINE_TITLE: top-level section title
	ActivitiesTitle string // SYNAPSEDOCS_ACTIVITIES_TITLE: activities sub-header
	TriggersTitle   string // SYNAPSEDOCS_TRIGGERS_TITLE: triggers sub-header
	HeaderLevel     int    // SYNAPSEDOCS_HEADER_LEVEL: heading depth
	Overwrite       bool   // SYNAPSEDOCS_OVERWRITE: allow replacing the readme
}

// knownEnvVars lists valid SYNAPSEDOCS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SYNAPSEDOCS_CONFIG":           true,
	"SYNAPSEDOCS_REPO":             true,
	"SYNAPSEDOCS_README":           true,
	"SYNAPSEDOCS_INTRO":            true,
	"SYNAPSEDOCS_PIPELINE_TITLE":   true,
	"SYNAPSEDOCS_ACTIVITIES_TITLE": true,
	"SYNAPSEDOCS_TRIGGERS_TITLE":   true,
	"SYNAPSEDOCS_HEADER_LEVEL":     true,
	"SYNAPSEDOCS_OVERWRITE":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized SYNAPSEDOCS_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:      os.Getenv("SYNAPSEDOCS_CONFIG"),
		Repo:            os.Getenv("SYNAPSEDOCS_REPO"),
		Readme:          os.Getenv("SYNAPSEDOCS_README"),
		Intro:           os.Getenv("SYNAPSEDOCS_INTRO"),
		PipelineTitle:   os.Getenv("SYNAPSEDOCS_PIPELINE_TITLE"),
		ActivitiesTitle: os.Getenv("SYNAPSEDOCS_ACTIVITIES_TITLE"),
		TriggersTitle:   os.Getenv("SYNAPSEDOCS_TRIGGERS_TITLE"),
	}

	if level := os.Getenv("SYNAPSEDOCS_HEADER_LEVEL"); level != "" {
		if n, err := strconv.Atoi(level); err == nil && n > 0 {
			cfg.HeaderLevel = n
		}
	}

	if overwrite := os.Getenv("SYNAPSEDOCS_OVERWRITE"); overwrite != "" {
		if b, err := strconv.ParseBool(overwrite); err == nil {
			cfg.Overwrite = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SYNAPSEDOCS_* variables.
// Helps catch typos like SYNAPSEDOCS_REPOO instead of SYNAPSEDOCS_REPO.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SYNAPSEDOCS_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment variable values on config. A set env
// var replaces the config file's value for the same field; CLI flags are
// merged later via mergeFlags and win over both.
// This ensures: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Repo != "" {
		cfg.Input.RepoDir = env.Repo
	}
	if env.Readme != "" {
		cfg.Output.Readme = env.Readme
	}
	if env.Intro != "" {
		cfg.Output.Intro = env.Intro
	}
	if env.Overwrite {
		cfg.Output.Overwrite = true
	}
	if env.PipelineTitle != "" {
		cfg.Sections.Pipelines = env.PipelineTitle
	}
	if env.ActivitiesTitle != "" {
		cfg.Sections.Activities = env.ActivitiesTitle
	}
	if env.TriggersTitle != "" {
		cfg.Sections.Triggers = env.TriggersTitle
	}
	if env.HeaderLevel > 0 {
		cfg.Sections.HeaderLevel = env.HeaderLevel
	}
}
