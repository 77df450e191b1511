package manifest

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/iamochuko/contract-source-metadata/pkg/errors"
	"github.com/iamochuko/contract-source-metadata/pkg/observability"
)

// Status classifies the outcome of a [Lookup].
type Status int

const (
	// StatusAbsent means the manifest was read but declares no repository.
	StatusAbsent Status = iota
	// StatusFound means a repository link was extracted.
	StatusFound
	// StatusUnreadable means the manifest could not be read.
	StatusUnreadable
	// StatusInvalid means the manifest was read but could not be parsed.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusFound:
		return "found"
	case StatusUnreadable:
		return "unreadable"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is the outcome of a manifest lookup. Link is non-empty only when
// Status is [StatusFound]; Err is non-nil for every other status and carries
// an [errors.Code] matching it.
type Result struct {
	Link   string // Normalized repository URL
	Status Status // Outcome classification
	Path   string // Manifest path that produced the result
	Reader string // Type of the reader that handled the file
	Err    error  // Cause when Status != StatusFound
}

// OK reports whether a link was found.
func (r Result) OK() bool { return r.Status == StatusFound }

// manifestNames are probed, in order, when [Lookup] is given a directory.
var manifestNames = []string{
	"Cargo.toml",
	"package.json",
	"pyproject.toml",
	"go.mod",
	"composer.json",
	"pom.xml",
}

// Lookup extracts the repository link from the manifest at path.
//
// The reader is chosen by file name from readers, or from [DefaultReaders]
// when none are given; unrecognized names fall back to the [Legacy] scan.
// If path is a directory, the known manifest names are probed in order and
// the first found link wins.
func Lookup(ctx context.Context, path string, readers ...Reader) Result {
	if len(readers) == 0 {
		readers = DefaultReaders()
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return lookupDir(ctx, path, readers)
	}
	return lookupFile(ctx, path, readers)
}

func lookupFile(ctx context.Context, path string, readers []Reader) Result {
	hooks := observability.Scan()
	hooks.OnScanStart(ctx, path)
	start := time.Now()

	r, err := DetectReader(path, readers...)
	if err != nil {
		r = Legacy{}
	}

	res := readWith(r, path)
	hooks.OnScanComplete(ctx, path, res.Reader, res.OK(), time.Since(start), res.Err)
	return res
}

func readWith(r Reader, path string) Result {
	res := Result{Path: path, Reader: r.Type()}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Status = StatusUnreadable
		res.Err = errors.Wrap(errors.ErrCodeManifestUnreadable, err, "read %s", path)
		return res
	}

	link, err := r.Repository(data)
	switch {
	case err != nil:
		res.Status = StatusInvalid
		res.Err = errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	case link == "":
		res.Status = StatusAbsent
		res.Err = errors.New(errors.ErrCodeRepositoryAbsent, "no repository declared in %s", path)
	default:
		res.Status = StatusFound
		res.Link = link
	}
	return res
}

func lookupDir(ctx context.Context, dir string, readers []Reader) Result {
	var fallback *Result
	for _, name := range manifestNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		res := lookupFile(ctx, p, readers)
		if res.OK() {
			return res
		}
		if fallback == nil {
			fallback = &res
		}
	}
	if fallback != nil {
		return *fallback
	}
	return Result{
		Path:   dir,
		Status: StatusUnreadable,
		Err:    errors.New(errors.ErrCodeManifestUnreadable, "no known manifest in %s", dir),
	}
}
