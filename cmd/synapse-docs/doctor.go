package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	flag "github.com/spf13/pflag"

	synapsedoc "github.com/rslavey/synapse-documentation"
	"github.com/rslavey/synapse-documentation/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string   `json:"status"` // "ready", "warnings", "errors"
	Repo     repoInfo `json:"repo"`
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// repoInfo holds repository layout detection results.
type repoInfo struct {
	Path        string `json:"path"`
	PipelineDir bool   `json:"pipeline_dir"`
	TriggerDir  bool   `json:"trigger_dir"`
	Pipelines   int    `json:"pipelines"`
	Triggers    int    `json:"triggers"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	repoDir := fs.StringP("repo", "r", defaultRepoDir, "repository root holding pipeline/ and trigger/")
	jsonOutput := fs.Bool("json", false, "emit machine-readable JSON")
	fs.Usage = func() { printDoctorUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if positionals := fs.Args(); len(positionals) > 0 {
		*repoDir = positionals[0]
	}

	result := runDoctor(*repoDir)

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks against a repository.
func runDoctor(repoDir string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Repo: repoInfo{
			Path:        repoDir,
			PipelineDir: fileutil.DirExists(filepath.Join(repoDir, "pipeline")),
			TriggerDir:  fileutil.DirExists(filepath.Join(repoDir, "trigger")),
		},
	}

	repo, err := synapsedoc.LoadRepo(repoDir)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		result.Status = "errors"
		return result
	}

	result.Repo.Pipelines = len(repo.Pipelines)
	result.Repo.Triggers = len(repo.Triggers)

	checkDuplicates(repo, result)
	checkReferences(repo, result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkDuplicates warns about pipeline names that occur more than once.
// Trigger matching joins on name equality, so duplicates make the rendered
// trigger sections ambiguous.
func checkDuplicates(repo *synapsedoc.Repo, result *doctorResult) {
	for _, name := range synapsedoc.DuplicateNames(repo.Pipelines) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("duplicate pipeline name %q: trigger matching is ambiguous", name))
	}
}

// checkReferences warns about trigger references that point at no loaded
// pipeline. The generator renders such triggers nowhere.
func checkReferences(repo *synapsedoc.Repo, result *doctorResult) {
	index := synapsedoc.IndexByName(repo.Pipelines)
	for _, trigger := range repo.Triggers {
		for _, ref := range trigger.References {
			if ref.PipelineName == "" {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("trigger %q has a reference with an empty pipeline name", trigger.Name))
				continue
			}
			if _, ok := index[ref.PipelineName]; !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("trigger %q references unknown pipeline %q", trigger.Name, ref.PipelineName))
			}
		}
	}
}

// printDoctorResult writes a human-readable diagnostic report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "Repository: %s\n", result.Repo.Path)
	fmt.Fprintf(w, "  pipeline/ present: %v\n", result.Repo.PipelineDir)
	fmt.Fprintf(w, "  trigger/ present:  %v\n", result.Repo.TriggerDir)
	if result.Repo.PipelineDir && result.Repo.TriggerDir {
		fmt.Fprintf(w, "  pipelines: %d\n", result.Repo.Pipelines)
		fmt.Fprintf(w, "  triggers:  %d\n", result.Repo.Triggers)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	for _, err := range result.Errors {
		fmt.Fprintf(w, "error: %s\n", err)
	}

	fmt.Fprintf(w, "Status: %s\n", result.Status)
}
