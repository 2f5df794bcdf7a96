package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseCount parses a positional integer argument and checks it lies in
// [lo, hi]. A hi below lo disables the upper bound.
func ParseCount(name, raw string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidArgument, err, "%s must be an integer, got %q", name, raw)
	}
	if v < lo {
		return 0, New(ErrCodeInvalidArgument, "%s must be at least %d, got %d", name, lo, v)
	}
	if hi >= lo && v > hi {
		return 0, New(ErrCodeInvalidArgument, "%s must be at most %d, got %d", name, hi, v)
	}
	return v, nil
}

// ValidatePath validates a report path supplied on the command line or in
// a config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
