// Package manifest finds the source repository URL declared in a build
// manifest.
//
// # Legacy scan
//
// [ScanRepositoryLink] and [ReadRepositoryLink] reproduce the line-oriented
// scan that earlier tooling ran against ./Cargo.toml. For every line that
// contains "repository" once '=' characters are removed, it drops the first
// 13 bytes and then the first three '"' characters. The last matching line
// wins. Any failure gives an empty string.
//
// The scan depends on position and only suits the exact layout
//
//	repository = "https://github.com/org/repo"
//
// Keep it for byte-for-byte compatibility. New code should use [Lookup].
//
// # Structured readers
//
// Each [Reader] parses one manifest format with a real parser:
//
//   - Cargo.toml: package.repository (BurntSushi/toml)
//   - pyproject.toml: project.urls, tool.poetry.repository (BurntSushi/toml)
//   - package.json: repository, string or object form
//   - composer.json: support.source, homepage
//   - go.mod: module path on a known forge (golang.org/x/mod/modfile)
//   - pom.xml: scm.url, url
//
// # Typed lookup
//
// [Lookup] picks a reader by file name, falls back to the legacy scan for
// unknown files, and returns a [Result] whose [Status] distinguishes an
// unreadable manifest from one that declares no repository.
package manifest
