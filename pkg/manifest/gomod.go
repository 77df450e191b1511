package manifest

import (
	"strings"

	"golang.org/x/mod/modfile"
)

// forgeHosts are module path hosts whose first three path elements name a
// browsable repository.
var forgeHosts = map[string]bool{
	"github.com":    true,
	"gitlab.com":    true,
	"bitbucket.org": true,
	"codeberg.org":  true,
}

// GoMod derives the repository URL from the module path in go.mod. Only
// paths on a known forge resolve; vanity import paths give "" because
// resolving them needs a network round trip.
type GoMod struct{}

func (g *GoMod) Type() string              { return "go.mod" }
func (g *GoMod) Supports(name string) bool { return name == "go.mod" }

func (g *GoMod) Repository(data []byte) (string, error) {
	f, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return "", err
	}
	if f.Module == nil {
		return "", nil
	}
	return repoFromModulePath(f.Module.Mod.Path), nil
}

func repoFromModulePath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 3 || !forgeHosts[parts[0]] {
		return ""
	}
	return "https://" + strings.Join(parts[:3], "/")
}
