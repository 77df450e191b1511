package manifest

import (
	"testing"

	"github.com/iamochuko/contract-source-metadata/pkg/errors"
)

func TestReaderSupports(t *testing.T) {
	tests := []struct {
		reader   Reader
		filename string
		want     bool
	}{
		{&CargoToml{}, "Cargo.toml", true},
		{&CargoToml{}, "cargo.toml", true},
		{&CargoToml{}, "CARGO.TOML", true},
		{&CargoToml{}, "package.json", false},
		{&Pyproject{}, "pyproject.toml", true},
		{&Pyproject{}, "poetry.lock", false},
		{&PackageJSON{}, "package.json", true},
		{&PackageJSON{}, "package-lock.json", false},
		{&ComposerJSON{}, "composer.json", true},
		{&GoMod{}, "go.mod", true},
		{&GoMod{}, "go.sum", false},
		{&POM{}, "pom.xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.reader.Type()+"/"+tt.filename, func(t *testing.T) {
			if got := tt.reader.Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectReader(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantType string
		wantErr  bool
	}{
		{"cargo", "/src/contract/Cargo.toml", "Cargo.toml", false},
		{"pyproject", "pyproject.toml", "pyproject.toml", false},
		{"package.json", "./web/package.json", "package.json", false},
		{"composer", "composer.json", "composer.json", false},
		{"go.mod", "/src/go.mod", "go.mod", false},
		{"pom", "pom.xml", "pom.xml", false},
		{"unknown", "/project/manifest.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DetectReader(tt.path, DefaultReaders()...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("DetectReader() expected error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeUnsupported) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectReader() unexpected error: %v", err)
			}
			if r.Type() != tt.wantType {
				t.Errorf("DetectReader().Type() = %q, want %q", r.Type(), tt.wantType)
			}
		})
	}
}

func TestDetectReaderNoReaders(t *testing.T) {
	if _, err := DetectReader("Cargo.toml"); err == nil {
		t.Error("DetectReader() with no readers should fail")
	}
}

func TestDetectReaderFirstMatch(t *testing.T) {
	r, err := DetectReader("Cargo.toml", &CargoToml{}, Legacy{})
	if err != nil {
		t.Fatalf("DetectReader() error: %v", err)
	}
	if r.Type() != "Cargo.toml" {
		t.Errorf("DetectReader() should return first matching reader, got %q", r.Type())
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"https://github.com/org/repo", "https://github.com/org/repo"},
		{"https://github.com/org/repo.git", "https://github.com/org/repo"},
		{"https://github.com/org/repo/", "https://github.com/org/repo"},
		{"git+https://github.com/org/repo.git", "https://github.com/org/repo"},
		{"git@github.com:org/repo.git", "https://github.com/org/repo"},
		{"git://github.com/org/repo", "https://github.com/org/repo"},
		{"git@gitlab.com:org/repo.git", "https://gitlab.com/org/repo"},
		{"git+ssh://git@github.com/org/repo.git", "https://github.com/org/repo"},
		{"ssh://git@gitlab.com/org/repo.git", "https://gitlab.com/org/repo"},
		{"ssh://git@bitbucket.org/org/repo", "https://bitbucket.org/org/repo"},
		{"  https://example.com/r  ", "https://example.com/r"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.in); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

type readerCase struct {
	name    string
	content string
	want    string
	wantErr bool
}

func runReaderCases(t *testing.T, r Reader, cases []readerCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Repository([]byte(tt.content))
			if tt.wantErr {
				if err == nil {
					t.Errorf("Repository() expected error, got link %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Repository() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Repository() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCargoTomlRepository(t *testing.T) {
	runReaderCases(t, &CargoToml{}, []readerCase{
		{
			name: "package repository",
			content: `[package]
name = "my-contract"
version = "0.1.0"
repository = "https://github.com/org/my-contract"

[dependencies]
near-sdk = "5.0"
`,
			want: "https://github.com/org/my-contract",
		},
		{
			name: "no repository",
			content: `[package]
name = "my-contract"
version = "0.1.0"
`,
			want: "",
		},
		{
			name: "repository key in dependency table is ignored",
			content: `[package]
name = "my-contract"

[dependencies.internal]
git = "https://example.com/internal"
repository = "https://example.com/not-ours"
`,
			want: "",
		},
		{
			name: "inherited from workspace root",
			content: `[workspace.package]
repository = "https://github.com/org/mono.git"

[package]
name = "member"
repository.workspace = true
`,
			want: "https://github.com/org/mono",
		},
		{
			name: "inherited without workspace table",
			content: `[package]
name = "member"
repository = { workspace = true }
`,
			want: "",
		},
		{
			name: "virtual workspace",
			content: `[workspace]
members = ["a", "b"]

[workspace.package]
repository = "https://github.com/org/mono"
`,
			want: "https://github.com/org/mono",
		},
		{
			name:    "invalid toml",
			content: "[package\nname = ",
			wantErr: true,
		},
		{
			name:    "integer repository",
			content: "[package]\nname = \"c\"\nrepository = 5\n",
			wantErr: true,
		},
		{
			name:    "array repository",
			content: "[package]\nname = \"c\"\nrepository = [\"https://github.com/org/c\"]\n",
			wantErr: true,
		},
	})
}

func TestPyprojectRepository(t *testing.T) {
	runReaderCases(t, &Pyproject{}, []readerCase{
		{
			name: "project urls repository",
			content: `[project]
name = "pkg"

[project.urls]
Homepage = "https://pkg.example.com"
Repository = "https://github.com/org/pkg.git"
`,
			want: "https://github.com/org/pkg",
		},
		{
			name: "project urls source",
			content: `[project.urls]
Source = "https://gitlab.com/org/pkg"
`,
			want: "https://gitlab.com/org/pkg",
		},
		{
			name: "poetry repository",
			content: `[tool.poetry]
name = "pkg"
repository = "https://github.com/org/poetry-pkg"
homepage = "https://example.com"
`,
			want: "https://github.com/org/poetry-pkg",
		},
		{
			name: "homepage fallback",
			content: `[project.urls]
homepage = "https://github.com/org/home"
`,
			want: "https://github.com/org/home",
		},
		{
			name: "nothing declared",
			content: `[project]
name = "pkg"
`,
			want: "",
		},
		{
			name:    "invalid toml",
			content: "[project\n",
			wantErr: true,
		},
	})
}

func TestPackageJSONRepository(t *testing.T) {
	runReaderCases(t, &PackageJSON{}, []readerCase{
		{
			name:    "string form",
			content: `{"name": "pkg", "repository": "https://github.com/org/pkg"}`,
			want:    "https://github.com/org/pkg",
		},
		{
			name:    "object form",
			content: `{"repository": {"type": "git", "url": "git+https://github.com/org/pkg.git"}}`,
			want:    "https://github.com/org/pkg",
		},
		{
			name:    "github shorthand",
			content: `{"repository": "github:org/pkg"}`,
			want:    "https://github.com/org/pkg",
		},
		{
			name:    "gitlab shorthand",
			content: `{"repository": "gitlab:org/pkg"}`,
			want:    "https://gitlab.com/org/pkg",
		},
		{
			name:    "bare shorthand",
			content: `{"repository": "org/pkg"}`,
			want:    "https://github.com/org/pkg",
		},
		{
			name:    "ssh url",
			content: `{"repository": "git@github.com:org/pkg.git"}`,
			want:    "https://github.com/org/pkg",
		},
		{
			name:    "missing",
			content: `{"name": "pkg"}`,
			want:    "",
		},
		{
			name:    "null",
			content: `{"repository": null}`,
			want:    "",
		},
		{
			name:    "wrong type",
			content: `{"repository": 42}`,
			want:    "",
		},
		{
			name:    "invalid json",
			content: `{"name": `,
			wantErr: true,
		},
	})
}

func TestComposerJSONRepository(t *testing.T) {
	runReaderCases(t, &ComposerJSON{}, []readerCase{
		{
			name:    "support source",
			content: `{"name": "org/pkg", "homepage": "https://pkg.example.com", "support": {"source": "https://github.com/org/pkg"}}`,
			want:    "https://github.com/org/pkg",
		},
		{
			name:    "homepage fallback",
			content: `{"name": "org/pkg", "homepage": "https://github.com/org/pkg/"}`,
			want:    "https://github.com/org/pkg",
		},
		{
			name:    "nothing declared",
			content: `{"name": "org/pkg"}`,
			want:    "",
		},
		{
			name:    "invalid json",
			content: `[`,
			wantErr: true,
		},
	})
}

func TestGoModRepository(t *testing.T) {
	runReaderCases(t, &GoMod{}, []readerCase{
		{
			name:    "github module",
			content: "module github.com/org/repo\n\ngo 1.24\n",
			want:    "https://github.com/org/repo",
		},
		{
			name:    "major version suffix",
			content: "module github.com/org/repo/v2\n\ngo 1.24\n",
			want:    "https://github.com/org/repo",
		},
		{
			name:    "nested module",
			content: "module gitlab.com/org/repo/tools/cli\n",
			want:    "https://gitlab.com/org/repo",
		},
		{
			name:    "vanity path",
			content: "module go.uber.org/zap\n",
			want:    "",
		},
		{
			name:    "too short",
			content: "module github.com/org\n",
			want:    "",
		},
		{
			name:    "no module directive",
			content: "go 1.24\n",
			want:    "",
		},
		{
			name:    "syntax error",
			content: "module github.com/org/repo\nrequire (\n",
			wantErr: true,
		},
	})
}

func TestPOMRepository(t *testing.T) {
	runReaderCases(t, &POM{}, []readerCase{
		{
			name: "scm url",
			content: `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>org.example</groupId>
  <artifactId>lib</artifactId>
  <url>https://lib.example.com</url>
  <scm>
    <url>https://github.com/org/lib</url>
    <connection>scm:git:git://github.com/org/lib.git</connection>
  </scm>
</project>`,
			want: "https://github.com/org/lib",
		},
		{
			name: "project url fallback",
			content: `<project>
  <url>
    https://github.com/org/lib
  </url>
</project>`,
			want: "https://github.com/org/lib",
		},
		{
			name:    "nothing declared",
			content: `<project><artifactId>lib</artifactId></project>`,
			want:    "",
		},
		{
			name:    "invalid xml",
			content: `<project><url>`,
			wantErr: true,
		},
	})
}
