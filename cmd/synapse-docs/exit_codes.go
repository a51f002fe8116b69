package main

import (
	"errors"
	"os"

	synapsedoc "github.com/rslavey/synapse-documentation"
	"github.com/rslavey/synapse-documentation/internal/config"
)

// Exit codes for the synapse-docs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, synapsedoc.ErrMissingPipelineDir) ||
		errors.Is(err, synapsedoc.ErrMissingTriggerDir) ||
		errors.Is(err, ErrReadIntro) ||
		errors.Is(err, ErrWriteIntro) ||
		errors.Is(err, ErrWriteReadme) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, synapsedoc.ErrInvalidHeaderLevel) ||
		errors.Is(err, synapsedoc.ErrEmptyRepoPath) ||
		errors.Is(err, synapsedoc.ErrParseDefinition) ||
		errors.Is(err, synapsedoc.ErrMissingName) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrReadmeExists) {
		return ExitUsage
	}

	return ExitGeneral
}
