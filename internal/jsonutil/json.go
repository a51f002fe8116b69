// Package jsonutil wraps JSON decoding to isolate the external dependency.
// Definition files are authored as JSON or JSONC (JSON extended with //
// line comments, /* block comments */, and trailing commas); comments are
// stripped before decoding.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
)

// MaxInputSize limits JSON input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("jsonutil: nil or empty data")
	ErrNilDestination = errors.New("jsonutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("jsonutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal strips JSONC comments and trailing commas from data, then
// decodes the result into v.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return fmt.Errorf("jsonutil: %w", err)
	}
	return nil
}

// MarshalCompact serializes v as compact JSON with no trailing newline.
// Map keys are emitted in sorted order, so output is deterministic.
func MarshalCompact(v any) (string, error) {
	result, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("jsonutil: %w", err)
	}
	return string(result), nil
}
