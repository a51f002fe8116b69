package synapsedoc

import "errors"

// Sentinel errors for library operations.
var (
	// Loader errors.
	ErrEmptyRepoPath      = errors.New("repository path cannot be empty")
	ErrMissingPipelineDir = errors.New("pipeline directory not found")
	ErrMissingTriggerDir  = errors.New("trigger directory not found")
	ErrParseDefinition    = errors.New("failed to parse definition file")
	ErrMissingName        = errors.New("definition file has no name")

	// Generator errors.
	ErrNilRepo            = errors.New("repository cannot be nil")
	ErrInvalidHeaderLevel = errors.New("invalid header level")
)
