package synapsedoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rslavey/synapse-documentation/internal/jsonutil"
)

// Repository subdirectories holding definition files.
const (
	pipelineDirName = "pipeline"
	triggerDirName  = "trigger"
)

// pipelineFile mirrors the wire shape of a pipeline definition. Fields the
// generator does not use are ignored during decoding.
type pipelineFile struct {
	Name       string             `json:"name"`
	Properties pipelineProperties `json:"properties"`
}

type pipelineProperties struct {
	Description string         `json:"description"`
	Folder      *folderRef     `json:"folder"`
	Activities  []activityFile `json:"activities"`
}

type folderRef struct {
	Name string `json:"name"`
}

type activityFile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// triggerFile mirrors the wire shape of a trigger definition.
type triggerFile struct {
	Name       string            `json:"name"`
	Properties triggerProperties `json:"properties"`
}

type triggerProperties struct {
	Pipelines []pipelineRefFile `json:"pipelines"`
}

type pipelineRefFile struct {
	PipelineReference referenceName  `json:"pipelineReference"`
	Parameters        map[string]any `json:"parameters"`
}

type referenceName struct {
	ReferenceName string `json:"referenceName"`
}

// LoadRepo reads all definition files under the pipeline and trigger
// subdirectories of repoPath and decodes them into a Repo. Both
// subdirectories must exist; a missing one is a precondition failure for
// the whole run. Any unreadable or malformed file aborts the load with the
// file's path in the error.
func LoadRepo(repoPath string) (*Repo, error) {
	if repoPath == "" {
		return nil, ErrEmptyRepoPath
	}

	pipelineDir := filepath.Join(repoPath, pipelineDirName)
	if err := requireDir(pipelineDir, ErrMissingPipelineDir); err != nil {
		return nil, err
	}
	triggerDir := filepath.Join(repoPath, triggerDirName)
	if err := requireDir(triggerDir, ErrMissingTriggerDir); err != nil {
		return nil, err
	}

	repo := &Repo{}

	paths, err := definitionFiles(pipelineDir)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		pipeline, err := loadPipelineFile(path)
		if err != nil {
			return nil, err
		}
		repo.Pipelines = append(repo.Pipelines, pipeline)
	}

	paths, err = definitionFiles(triggerDir)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		trigger, err := loadTriggerFile(path)
		if err != nil {
			return nil, err
		}
		repo.Triggers = append(repo.Triggers, trigger)
	}

	return repo, nil
}

// requireDir checks that path is an existing directory, wrapping sentinel
// on failure.
func requireDir(path string, sentinel error) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", sentinel, path)
	}
	return nil
}

// definitionFiles lists the definition files directly under dir, in
// directory enumeration order. Subdirectories are skipped.
func definitionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !isDefinitionFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// isDefinitionFile reports whether name has a definition file extension.
// Workspace exports use .json; hand-authored files may use .jsonc.
func isDefinitionFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".json" || ext == ".jsonc"
}

// loadPipelineFile reads and decodes a single pipeline definition.
func loadPipelineFile(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file pipelineFile
	if err := jsonutil.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseDefinition, path, err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingName, path)
	}

	pipeline := &Pipeline{
		Path:        linkPath(path),
		Name:        file.Name,
		Description: file.Properties.Description,
	}
	if file.Properties.Folder != nil {
		pipeline.Folder = file.Properties.Folder.Name
	}
	for _, activity := range file.Properties.Activities {
		pipeline.Activities = append(pipeline.Activities, Activity{
			Name:        activity.Name,
			Description: activity.Description,
		})
	}
	return pipeline, nil
}

// loadTriggerFile reads and decodes a single trigger definition.
func loadTriggerFile(path string) (*Trigger, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file triggerFile
	if err := jsonutil.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseDefinition, path, err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingName, path)
	}

	trigger := &Trigger{
		Path: linkPath(path),
		Name: file.Name,
	}
	for _, ref := range file.Properties.Pipelines {
		trigger.References = append(trigger.References, PipelineReference{
			PipelineName: ref.PipelineReference.ReferenceName,
			Parameters:   ref.Parameters,
		})
	}
	return trigger, nil
}

// linkPath converts a definition file path into the slash-separated,
// working-directory-relative form retained on records and embedded in
// rendered links. Paths outside the working directory stay as given.
func linkPath(path string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
