package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates a data file reference inside a figure description.
// It prevents path traversal when figures come from untrusted callers.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
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

	if strings.HasPrefix(path, "/") || filepath.IsAbs(path) {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// engineNameRegex matches bare executable names such as "pdflatex" or "lualatex-dev".
var engineNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)

// ValidateEngineName validates the name of an external TeX engine.
// Absolute paths are accepted so a specific installation can be pinned;
// anything else must be a bare executable name resolved through PATH.
func ValidateEngineName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidEngine, "engine name cannot be empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidEngine, "engine name contains invalid control characters")
		}
	}
	if filepath.IsAbs(name) {
		return nil
	}
	if !engineNameRegex.MatchString(name) {
		return New(ErrCodeInvalidEngine, "invalid engine name: %q", name)
	}
	return nil
}
