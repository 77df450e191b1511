package manifest

import (
	"encoding/json"
	"strings"
)

// npmShorthandHosts maps npm "host:owner/repo" prefixes to base URLs.
var npmShorthandHosts = map[string]string{
	"github":    "https://github.com/",
	"gitlab":    "https://gitlab.com/",
	"bitbucket": "https://bitbucket.org/",
}

// PackageJSON reads the repository field from package.json. Both the string
// form and the {"type", "url"} object form are accepted, as are npm
// shorthands such as "github:owner/repo" and bare "owner/repo".
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) Supports(name string) bool { return strings.EqualFold(name, "package.json") }

func (p *PackageJSON) Repository(data []byte) (string, error) {
	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", err
	}
	if len(pkg.Repository) == 0 {
		return "", nil
	}

	var raw string
	if err := json.Unmarshal(pkg.Repository, &raw); err != nil {
		var obj struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(pkg.Repository, &obj); err != nil {
			return "", nil
		}
		raw = obj.URL
	}
	return NormalizeRepoURL(expandNpmShorthand(raw)), nil
}

func expandNpmShorthand(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "://") || strings.HasPrefix(s, "git@") {
		return s
	}
	if host, rest, ok := strings.Cut(s, ":"); ok {
		if base, known := npmShorthandHosts[host]; known {
			return base + rest
		}
		return s
	}
	if strings.Count(s, "/") == 1 {
		return npmShorthandHosts["github"] + s
	}
	return s
}

type packageFile struct {
	Name       string          `json:"name"`
	Version    string          `json:"version"`
	Repository json.RawMessage `json:"repository"`
}
