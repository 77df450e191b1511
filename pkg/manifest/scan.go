package manifest

import (
	"os"
	"strings"
)

// DefaultManifest is the path the legacy scan reads, relative to the
// working directory.
const DefaultManifest = "./Cargo.toml"

// legacyKeyOffset is the width of the `repository = ` prefix skipped before
// the value.
const legacyKeyOffset = 13

// ReadRepositoryLink reads the manifest at path and runs
// [ScanRepositoryLink] over it. A read failure gives "".
func ReadRepositoryLink(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return ScanRepositoryLink(string(data))
}

// ScanRepositoryLink returns the link from the last line of content
// mentioning "repository", or "" if there is none.
//
// The match test ignores '=' characters. The extraction then drops the first
// 13 bytes of the line as written and removes up to three '"' characters
// from what remains. A matching line of 13 bytes or fewer gives "".
func ScanRepositoryLink(content string) string {
	var link string
	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(strings.ReplaceAll(line, "=", ""), "repository") {
			continue
		}
		link = ""
		if len(line) > legacyKeyOffset {
			link = strings.Join(strings.SplitN(line[legacyKeyOffset:], `"`, 4), "")
		}
	}
	return link
}

// Legacy adapts the line scan to the [Reader] interface. It accepts any
// file name, so it belongs last in a reader list.
type Legacy struct{}

func (Legacy) Type() string                           { return "legacy" }
func (Legacy) Supports(string) bool                   { return true }
func (Legacy) Repository(data []byte) (string, error) { return ScanRepositoryLink(string(data)), nil }
