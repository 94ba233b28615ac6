package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a decoded slice after strict JSON parsing.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func([]T) error

// DecodeArray decodes raw completion text that must be exactly a JSON array
// of T, modulo surrounding whitespace. Commentary around the array (e.g.
// "Sure! Here is your schedule: [...]") is rejected rather than stripped;
// the caller surfaces the error and discards the attempt. If validator is
// non-nil the decoded slice is validated before return.
func DecodeArray[T any](raw string, validator SchemaValidator[T]) ([]T, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidOutput)
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: response is not a JSON array", ErrInvalidOutput)
	}

	var result []T
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return nil, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}
