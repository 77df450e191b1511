package sourcemeta

import (
	"encoding/json"
	"testing"
)

func TestNewReadsBack(t *testing.T) {
	m := New("0.0.1", "https://github.com/iamochuko/contract-source-metadata")

	if got := m.Version(); got != "0.0.1" {
		t.Errorf("Version() = %q, want %q", got, "0.0.1")
	}
	if got := m.Link(); got != "https://github.com/iamochuko/contract-source-metadata" {
		t.Errorf("Link() = %q, want %q", got, "https://github.com/iamochuko/contract-source-metadata")
	}
}

func TestNewNoValidation(t *testing.T) {
	tests := []struct {
		name    string
		version string
		link    string
	}{
		{"empty", "", ""},
		{"not a url", "abc123", "not a url"},
		{"whitespace", "  v1  ", " https://example.com "},
		{"unicode", "版本", "https://例子.测试/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.version, tt.link)
			if m.Version() != tt.version {
				t.Errorf("Version() = %q, want %q", m.Version(), tt.version)
			}
			if m.Link() != tt.link {
				t.Errorf("Link() = %q, want %q", m.Link(), tt.link)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	base := New("v1", "https://example.com/repo")

	tests := []struct {
		name  string
		other Metadata
		want  bool
	}{
		{"same", New("v1", "https://example.com/repo"), true},
		{"different version", New("v2", "https://example.com/repo"), false},
		{"different link", New("v1", "https://example.com/other"), false},
		{"zero", Metadata{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !(Metadata{}).IsZero() {
		t.Error("zero Metadata should report IsZero")
	}
	if New("", "x").IsZero() {
		t.Error("Metadata with a link should not be zero")
	}
	if New("x", "").IsZero() {
		t.Error("Metadata with a version should not be zero")
	}
}

func TestString(t *testing.T) {
	m := New("0.0.1", "https://example.com/repo")
	if got, want := m.String(), "0.0.1 (https://example.com/repo)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(New("0.0.1", "https://example.com/repo"))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"version":"0.0.1","link":"https://example.com/repo"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantVersion string
		wantLink    string
		wantErr     bool
	}{
		{
			name:        "both fields",
			input:       `{"version":"abc","link":"https://example.com"}`,
			wantVersion: "abc",
			wantLink:    "https://example.com",
		},
		{
			name:        "missing link",
			input:       `{"version":"abc"}`,
			wantVersion: "abc",
		},
		{
			name:        "unknown keys ignored",
			input:       `{"version":"1","link":"l","standards":["nep330"]}`,
			wantVersion: "1",
			wantLink:    "l",
		},
		{
			name:    "not an object",
			input:   `"0.0.1"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metadata
			err := json.Unmarshal([]byte(tt.input), &m)
			if tt.wantErr {
				if err == nil {
					t.Error("Unmarshal() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if m.Version() != tt.wantVersion || m.Link() != tt.wantLink {
				t.Errorf("got (%q, %q), want (%q, %q)", m.Version(), m.Link(), tt.wantVersion, tt.wantLink)
			}
		})
	}
}
