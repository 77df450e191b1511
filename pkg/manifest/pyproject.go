package manifest

import (
	"strings"

	"github.com/BurntSushi/toml"
)

// projectURLKeys are the PEP 621 [project.urls] labels checked, in order,
// before falling back to Poetry metadata.
var projectURLKeys = []string{"repository", "source", "source code", "code"}

// Pyproject reads the repository URL from pyproject.toml. It checks
// project.urls first, then tool.poetry.repository, then the homepage from
// either table.
type Pyproject struct{}

func (p *Pyproject) Type() string              { return "pyproject.toml" }
func (p *Pyproject) Supports(name string) bool { return name == "pyproject.toml" }

func (p *Pyproject) Repository(data []byte) (string, error) {
	var py pyprojectFile
	if err := toml.Unmarshal(data, &py); err != nil {
		return "", err
	}

	urls := make(map[string]string, len(py.Project.URLs))
	for k, v := range py.Project.URLs {
		urls[strings.ToLower(strings.TrimSpace(k))] = v
	}

	candidates := make([]string, 0, len(projectURLKeys)+3)
	for _, key := range projectURLKeys {
		candidates = append(candidates, urls[key])
	}
	candidates = append(candidates, py.Tool.Poetry.Repository, urls["homepage"], py.Tool.Poetry.Homepage)

	for _, c := range candidates {
		if u := NormalizeRepoURL(c); u != "" {
			return u, nil
		}
	}
	return "", nil
}

type pyprojectFile struct {
	Project struct {
		Name string            `toml:"name"`
		URLs map[string]string `toml:"urls"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Repository string `toml:"repository"`
			Homepage   string `toml:"homepage"`
		} `toml:"poetry"`
	} `toml:"tool"`
}
