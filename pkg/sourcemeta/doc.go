// Package sourcemeta defines the contract source metadata convention.
//
// A contract that wants off-chain tooling (indexers, explorers) to find its
// source exposes one well-known operation, ContractSourceMetadata, returning
// a [Metadata] value with two fields:
//
//   - version: the build or commit identifier that was deployed
//   - link: a URL to the public source repository
//
// Neither field is validated. The link is not checked for reachability and
// the version has no required format.
//
// # Providers
//
// Any type can satisfy [Provider] by implementing the single method:
//
//	type Contract struct{ /* ... */ }
//
//	func (c *Contract) ContractSourceMetadata() sourcemeta.Metadata {
//	    return sourcemeta.New("0.0.1", "https://github.com/iamochuko/contract-source-metadata")
//	}
//
// For fixed values, [Static] builds a provider directly, and [ProviderFunc]
// adapts a plain function.
//
// # Serialization
//
// [Metadata] marshals to the JSON object indexers expect:
//
//	{"version": "0.0.1", "link": "https://github.com/..."}
//
// How that JSON reaches the indexer is up to the host. See package serve for
// an HTTP host.
package sourcemeta
