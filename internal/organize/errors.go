package organize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks invalid run configuration (bad action value,
	// unusable category table).
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound marks a missing source directory.
	ErrNotFound = errors.New("not found")
	// ErrFilesystem marks a failed mkdir, move, or copy. These are never
	// retried; the run halts on the failing file.
	ErrFilesystem = errors.New("filesystem error")
)

// WrapError builds an error message that includes operation context while
// tagging it with the provided marker for later classification. The marker
// should be one of the exported sentinel errors above.
func WrapError(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organize failure"
	}
	return strings.Join(parts, ": ")
}
