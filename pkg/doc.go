// Package pkg holds the public libraries behind sourcemeta.
//
// # Overview
//
// A contract reports where its source lives through one read-only call,
// ContractSourceMetadata, returning a version identifier and a repository
// link. The pkg directory is organized around that record:
//
//  1. [sourcemeta] - The Metadata record and the Provider interface
//  2. [manifest] - Repository links from build manifests (legacy scan and typed readers)
//  3. [buildinfo] - ldflags build information; the binary's own metadata
//  4. [serve] - HTTP host exposing a provider's metadata to indexers
//  5. [integrations] - Registry clients (crates.io) yielding published metadata
//
// Supporting packages: [errors] (coded errors), [observability] (hooks),
// [httputil] (retry with backoff).
//
// # Quick Start
//
// Expose metadata from a contract:
//
//	type Counter struct{}
//
//	func (Counter) ContractSourceMetadata() sourcemeta.Metadata {
//	    return sourcemeta.New("v1.0.0", manifest.ReadRepositoryLink(manifest.DefaultManifest))
//	}
//
// Resolve a link with a typed outcome:
//
//	res := manifest.Lookup(ctx, "contracts/token")
//	if !res.OK() {
//	    log.Warn("no repository link", "status", res.Status, "err", res.Err)
//	}
//
// Serve it:
//
//	srv := &serve.Server{Addr: ":8330", Handler: serve.NewRouter(Counter{}, logger)}
//	srv.ListenAndServe(ctx)
//
// [sourcemeta]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/sourcemeta
// [manifest]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/manifest
// [buildinfo]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/buildinfo
// [serve]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/serve
// [integrations]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/integrations
// [errors]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/errors
// [observability]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/observability
// [httputil]: https://pkg.go.dev/github.com/iamochuko/contract-source-metadata/pkg/httputil
package pkg
