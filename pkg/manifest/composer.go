package manifest

import (
	"encoding/json"
	"strings"
)

// ComposerJSON reads support.source from composer.json, falling back to
// homepage.
type ComposerJSON struct{}

func (c *ComposerJSON) Type() string              { return "composer.json" }
func (c *ComposerJSON) Supports(name string) bool { return strings.EqualFold(name, "composer.json") }

func (c *ComposerJSON) Repository(data []byte) (string, error) {
	var f composerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", err
	}
	if u := NormalizeRepoURL(f.Support.Source); u != "" {
		return u, nil
	}
	return NormalizeRepoURL(f.Homepage), nil
}

type composerFile struct {
	Name     string `json:"name"`
	Homepage string `json:"homepage"`
	Support  struct {
		Source string `json:"source"`
	} `json:"support"`
}
