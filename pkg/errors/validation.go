package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches a 6-digit hex color with optional leading '#'.
var hexColorRegex = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a 6-digit hex color string (optionally prefixed
// with '#'). The hexcolor package itself performs no validation, so decoded
// themes and briefs must be checked here before their colors are parsed.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidTheme, "color cannot be empty")
	}

	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidTheme, "invalid hex color: %q (want 6 hex digits, optional '#')", s)
	}

	return nil
}

// ValidateBriefName validates the name of a built-in or user-defined brief.
// It rejects names that could be used for path traversal when the name is
// used to derive output file names.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateBriefName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidBrief, "brief name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidBrief, "brief name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBrief, "brief name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidBrief, "brief name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputPath validates a destination file path for rendered images.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must end in .png
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeFileNotFound, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeFileNotFound, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeFileNotFound, "output path contains invalid characters")
		}
	}

	if !strings.HasSuffix(strings.ToLower(path), ".png") {
		return New(ErrCodeFileNotFound, "output path must end in .png, got %q", path)
	}

	return nil
}
