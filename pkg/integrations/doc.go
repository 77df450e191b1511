// Package integrations provides HTTP clients for package registry APIs.
//
// Registries already record a published package's version and repository,
// so they can supply contract source metadata for code that was never built
// locally. Each registry has its own subpackage:
//
//   - [crates]: Rust crates.io
//
// # Shared Infrastructure
//
// [Client] wraps net/http with default headers, status mapping onto
// [ErrNotFound] and [ErrNetwork], retry through [httputil.Retry], and
// request hooks from package observability. Responses are not cached;
// each call reaches the registry.
//
// [crates]: github.com/iamochuko/contract-source-metadata/pkg/integrations/crates
// [httputil.Retry]: github.com/iamochuko/contract-source-metadata/pkg/httputil.Retry
package integrations
