package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePackageName rejects names that are unsafe to splice into a
// registry URL path.
//
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //)
//   - No backslashes
//   - Maximum length of 256 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// cratesPackageNameRegex matches valid crates.io package names.
var cratesPackageNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateCratesPackageName validates a crates.io package name.
func ValidateCratesPackageName(name string) error {
	if err := ValidatePackageName(name); err != nil {
		return err
	}

	if !cratesPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid crates.io package name: %q", name)
	}

	return nil
}

// ValidateManifestPath checks a manifest path supplied on the command line.
// Unlike registry names, absolute paths and parent directories are fine here;
// only empty paths and control characters are rejected.
func ValidateManifestPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "manifest path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "manifest path contains invalid control characters")
		}
	}
	return nil
}
