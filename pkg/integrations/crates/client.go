package crates

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	serrors "github.com/iamochuko/contract-source-metadata/pkg/errors"
	"github.com/iamochuko/contract-source-metadata/pkg/integrations"
	"github.com/iamochuko/contract-source-metadata/pkg/manifest"
	"github.com/iamochuko/contract-source-metadata/pkg/sourcemeta"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

const userAgent = "sourcemeta/1.0 (https://github.com/iamochuko/contract-source-metadata)"

// CrateInfo holds metadata for a Rust crate from crates.io.
//
// Zero values: all string fields are empty. Repository and HomePage are
// empty when the crate does not declare them.
type CrateInfo struct {
	Name        string // Crate name (e.g., "serde", never empty in valid info)
	Version     string // Latest version (e.g., "1.0.193", never empty in valid info)
	Repository  string // Repository URL as published (may be empty)
	HomePage    string // Homepage URL (may be empty)
	Description string // Crate description (may be empty)
	License     string // License identifier(s) (may be empty or "MIT OR Apache-2.0")
}

// Client provides access to the crates.io package registry API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client. Pass nil for httpClient to use the
// default timeout.
func NewClient(httpClient *http.Client) *Client {
	return NewClientWithBaseURL(httpClient, DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a crates.io-compatible API
// rooted at baseURL, such as a mirror.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	headers := map[string]string{"User-Agent": userAgent}
	return &Client{
		Client:  integrations.NewClient(httpClient, headers),
		baseURL: baseURL,
	}
}

// FetchCrate retrieves metadata for a Rust crate from crates.io.
//
// Returns:
//   - CrateInfo populated with metadata on success
//   - an INVALID_PACKAGE error if crate is not a valid crate name
//   - [integrations.ErrNotFound] if the crate doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//   - Other errors for JSON decoding failures
func (c *Client) FetchCrate(ctx context.Context, crate string) (*CrateInfo, error) {
	if err := serrors.ValidateCratesPackageName(crate); err != nil {
		return nil, err
	}

	var data crateResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, crate), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, serrors.Wrap(serrors.ErrCodeNotFound, err, "crate %s not found", crate)
		}
		return nil, err
	}

	return &CrateInfo{
		Name:        data.Crate.Name,
		Version:     data.Crate.MaxVersion,
		Description: data.Crate.Description,
		License:     data.Crate.License,
		Repository:  data.Crate.Repository,
		HomePage:    data.Crate.HomePage,
	}, nil
}

// SourceMetadata returns contract source metadata for the latest published
// version of crate. The link is the normalized repository URL and is empty
// when the crate declares none.
func (c *Client) SourceMetadata(ctx context.Context, crate string) (sourcemeta.Metadata, error) {
	info, err := c.FetchCrate(ctx, crate)
	if err != nil {
		return sourcemeta.Metadata{}, err
	}
	return sourcemeta.New(info.Version, manifest.NormalizeRepoURL(info.Repository)), nil
}

type crateResponse struct {
	Crate struct {
		Name        string `json:"name"`
		MaxVersion  string `json:"max_version"`
		Description string `json:"description"`
		License     string `json:"license"`
		Repository  string `json:"repository"`
		HomePage    string `json:"homepage"`
	} `json:"crate"`
}
