package synapsedoc

import "fmt"

// Header level bounds. The renderer emits headings up to two levels below
// the configured level, and markdown stops at level six.
const (
	MinHeaderLevel     = 1
	MaxHeaderLevel     = 4
	DefaultHeaderLevel = 2
)

// Default section titles.
const (
	DefaultPipelineSectionTitle   = "Pipelines"
	DefaultActivitiesSectionTitle = "Activities"
	DefaultTriggersSectionTitle   = "Triggers"
)

// NoFolderName is the group name rendered for pipelines without a folder.
const NoFolderName = "No Folder"

// Fallback text for records without a description.
const (
	noPipelineDescription = "No pipeline description"
	noActivityDescription = "No description"
)

// Pipeline is a named workflow definition composed of ordered activities.
// Path is the definition file's location relative to the working directory,
// slash-separated. Immutable after load.
type Pipeline struct {
	Path        string
	Name        string
	Folder      string
	Description string
	Activities  []Activity
}

// Activity is a named step within a pipeline.
type Activity struct {
	Name        string
	Description string
}

// Trigger is a named entity that invokes one or more pipelines.
type Trigger struct {
	Path       string
	Name       string
	References []PipelineReference
}

// PipelineReference links a trigger to a pipeline by name. The relation is
// non-owning: it is resolved against loaded pipelines at render time.
type PipelineReference struct {
	PipelineName string
	Parameters   map[string]any
}

// FolderGroup is a derived grouping of pipelines sharing a folder name.
// The empty name is a valid, distinct group (rendered as NoFolderName).
type FolderGroup struct {
	Name      string
	Pipelines []*Pipeline
}

// Repo holds everything loaded from a workspace repository. Record order
// follows directory enumeration order.
type Repo struct {
	Pipelines []*Pipeline
	Triggers  []*Trigger
}

// TriggerMatch pairs a trigger with its reference entries that point at a
// particular pipeline. A trigger may reference the same pipeline more than
// once, so References can hold multiple entries.
type TriggerMatch struct {
	Trigger    *Trigger
	References []PipelineReference
}

// RenderOptions configures the markdown renderer. Zero-value fields fall
// back to the package defaults.
type RenderOptions struct {
	PipelineSectionTitle   string
	ActivitiesSectionTitle string
	TriggersSectionTitle   string
	HeaderLevel            int
}

// DefaultRenderOptions returns render options with default values.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		PipelineSectionTitle:   DefaultPipelineSectionTitle,
		ActivitiesSectionTitle: DefaultActivitiesSectionTitle,
		TriggersSectionTitle:   DefaultTriggersSectionTitle,
		HeaderLevel:            DefaultHeaderLevel,
	}
}

// withDefaults returns a copy with zero-value fields replaced by defaults.
func (o RenderOptions) withDefaults() RenderOptions {
	if o.PipelineSectionTitle == "" {
		o.PipelineSectionTitle = DefaultPipelineSectionTitle
	}
	if o.ActivitiesSectionTitle == "" {
		o.ActivitiesSectionTitle = DefaultActivitiesSectionTitle
	}
	if o.TriggersSectionTitle == "" {
		o.TriggersSectionTitle = DefaultTriggersSectionTitle
	}
	if o.HeaderLevel == 0 {
		o.HeaderLevel = DefaultHeaderLevel
	}
	return o
}

// Validate checks that options are renderable. Called after withDefaults,
// so a zero HeaderLevel never reaches it from Generate.
func (o RenderOptions) Validate() error {
	if o.HeaderLevel < MinHeaderLevel || o.HeaderLevel > MaxHeaderLevel {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidHeaderLevel, o.HeaderLevel, MinHeaderLevel, MaxHeaderLevel)
	}
	return nil
}

// Input contains generation parameters.
type Input struct {
	Intro   string        // Intro content prepended to the document (optional)
	Repo    *Repo         // Loaded repository (required)
	Options RenderOptions // Render options (zero values = defaults)
}
