package manifest

import (
	"encoding/xml"
	"strings"
)

// POM reads scm.url from pom.xml, falling back to the project url.
type POM struct{}

func (p *POM) Type() string              { return "pom.xml" }
func (p *POM) Supports(name string) bool { return name == "pom.xml" }

func (p *POM) Repository(data []byte) (string, error) {
	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		return "", err
	}
	if u := NormalizeRepoURL(pom.SCM.URL); u != "" {
		return u, nil
	}
	return NormalizeRepoURL(strings.TrimSpace(pom.URL)), nil
}

type pomProject struct {
	XMLName    xml.Name `xml:"project"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	URL        string   `xml:"url"`
	SCM        struct {
		URL string `xml:"url"`
	} `xml:"scm"`
}
