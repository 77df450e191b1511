package manifest

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// CargoToml reads package.repository from Cargo.toml.
//
// A member that inherits the field (`repository.workspace = true`) resolves
// only when the same file carries [workspace.package], as a workspace root
// does. A virtual workspace root without [package] reports
// workspace.package.repository.
type CargoToml struct{}

func (c *CargoToml) Type() string              { return "Cargo.toml" }
func (c *CargoToml) Supports(name string) bool { return strings.EqualFold(name, "cargo.toml") }

func (c *CargoToml) Repository(data []byte) (string, error) {
	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return "", err
	}

	switch v := cargo.Package.Repository.(type) {
	case string:
		return NormalizeRepoURL(v), nil
	case map[string]any:
		if inherit, _ := v["workspace"].(bool); inherit {
			return NormalizeRepoURL(cargo.Workspace.Package.Repository), nil
		}
		return "", nil
	case nil:
		if cargo.Package.Name == "" {
			return NormalizeRepoURL(cargo.Workspace.Package.Repository), nil
		}
		return "", nil
	default:
		return "", fmt.Errorf("package.repository: unexpected %T", v)
	}
}

type cargoFile struct {
	Package struct {
		Name       string `toml:"name"`
		Version    string `toml:"version"`
		Repository any    `toml:"repository"`
	} `toml:"package"`
	Workspace struct {
		Package struct {
			Repository string `toml:"repository"`
		} `toml:"package"`
	} `toml:"workspace"`
}
