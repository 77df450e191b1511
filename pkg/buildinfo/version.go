// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/iamochuko/contract-source-metadata/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/iamochuko/contract-source-metadata/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/iamochuko/contract-source-metadata/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The binary describes itself through the same convention it implements:
// [Provider] reports the build commit and [Repository] as contract source
// metadata.
package buildinfo

import (
	"fmt"

	"github.com/iamochuko/contract-source-metadata/pkg/sourcemeta"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	// Set via ldflags: -X github.com/iamochuko/contract-source-metadata/pkg/buildinfo.Version=...
	Version = "dev"

	// Commit is the git commit SHA.
	// Set via ldflags: -X github.com/iamochuko/contract-source-metadata/pkg/buildinfo.Commit=...
	Commit = "none"

	// Date is the build timestamp.
	// Set via ldflags: -X github.com/iamochuko/contract-source-metadata/pkg/buildinfo.Date=...
	Date = "unknown"

	// Repository is the public source repository of this build.
	Repository = "https://github.com/iamochuko/contract-source-metadata"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\nsource: %s", Version, Commit, Date, Repository)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Identifier returns the commit when one was injected, otherwise Version.
func Identifier() string {
	if Commit != "" && Commit != "none" {
		return Commit
	}
	return Version
}

// Metadata returns this build's contract source metadata.
func Metadata() sourcemeta.Metadata {
	return sourcemeta.New(Identifier(), Repository)
}

// Provider returns a [sourcemeta.Provider] reporting [Metadata].
func Provider() sourcemeta.Provider {
	return sourcemeta.ProviderFunc(Metadata)
}
