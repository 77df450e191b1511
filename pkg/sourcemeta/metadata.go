package sourcemeta

import (
	"encoding/json"
	"fmt"
)

// Metadata describes where a deployed contract's source lives.
//
// Fields are read-only once constructed; there are no setters. Metadata is a
// value type, so each caller receiving one owns an independent copy.
//
// The zero value has an empty version and link.
type Metadata struct {
	version string
	link    string
}

// New returns Metadata holding version and link as given. It performs no
// validation and cannot fail.
func New(version, link string) Metadata {
	return Metadata{version: version, link: link}
}

// Version returns the build or commit identifier.
func (m Metadata) Version() string { return m.version }

// Link returns the source repository URL.
func (m Metadata) Link() string { return m.link }

// IsZero reports whether both fields are empty.
func (m Metadata) IsZero() bool { return m.version == "" && m.link == "" }

// Equal reports whether m and other hold the same version and link.
func (m Metadata) Equal(other Metadata) bool {
	return m.version == other.version && m.link == other.link
}

// String renders the metadata as "version (link)".
func (m Metadata) String() string {
	return fmt.Sprintf("%s (%s)", m.version, m.link)
}

// wireMetadata is the JSON form served to indexers.
type wireMetadata struct {
	Version string `json:"version"`
	Link    string `json:"link"`
}

// MarshalJSON implements json.Marshaler.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMetadata{Version: m.version, Link: m.link})
}

// UnmarshalJSON implements json.Unmarshaler. Missing keys decode as empty
// strings.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var w wireMetadata
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = New(w.Version, w.Link)
	return nil
}
