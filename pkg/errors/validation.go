package errors

import (
	"os"
	"strings"
	"unicode"
)

// ValidateProjectPath checks that path names an existing directory.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must exist and be a directory
func ValidateProjectPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "project path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "cannot access %s", path)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "%s is not a directory", path)
	}
	return nil
}

// ValidateFocusArea accepts an empty area (no filtering) or one of known.
// Matching is case-insensitive.
func ValidateFocusArea(area string, known []string) error {
	if area == "" {
		return nil
	}
	for _, a := range known {
		if strings.EqualFold(a, area) {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "unknown focus area %q (available: %s)", area, strings.Join(known, ", "))
}

// ValidateTechFocus rejects technology names that could not appear in a manifest.
func ValidateTechFocus(tech string) error {
	if tech == "" {
		return nil
	}
	if len(tech) > 214 {
		return New(ErrCodeInvalidInput, "technology name too long (max 214 characters)")
	}
	for _, r := range tech {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "technology name contains invalid characters: %q", tech)
		}
	}
	return nil
}
