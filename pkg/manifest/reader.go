package manifest

import (
	"path/filepath"
	"strings"

	"github.com/iamochuko/contract-source-metadata/pkg/errors"
)

// Reader extracts the declared repository URL from one manifest format.
type Reader interface {
	// Type returns the manifest type identifier (e.g., "Cargo.toml").
	Type() string
	// Supports reports whether this reader handles the given filename.
	Supports(filename string) bool
	// Repository returns the normalized repository URL declared in data,
	// or "" if the manifest declares none. A non-nil error means data is
	// not a valid manifest of this type.
	Repository(data []byte) (string, error)
}

// DefaultReaders returns one reader per supported manifest format.
// The legacy scan is not included.
func DefaultReaders() []Reader {
	return []Reader{
		&CargoToml{},
		&Pyproject{},
		&PackageJSON{},
		&ComposerJSON{},
		&GoMod{},
		&POM{},
	}
}

// DetectReader finds a reader that supports the given file path.
// Returns an error if no reader matches.
func DetectReader(path string, readers ...Reader) (Reader, error) {
	name := filepath.Base(path)
	for _, r := range readers {
		if r.Supports(name) {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", name)
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"ssh://git@github.com/", "https://github.com/",
	"git://github.com/", "https://github.com/",
	"git@gitlab.com:", "https://gitlab.com/",
	"ssh://git@gitlab.com/", "https://gitlab.com/",
	"git@bitbucket.org:", "https://bitbucket.org/",
	"ssh://git@bitbucket.org/", "https://bitbucket.org/",
)

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Handles git@, ssh://git@, git://, and git+ prefixes, and removes .git suffixes and
// trailing slashes. Returns empty string if raw is blank.
func NormalizeRepoURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	s = strings.TrimSuffix(s, "/")
	return strings.TrimSuffix(s, ".git")
}
