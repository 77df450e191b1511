// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package fetches crate metadata from crates.io (https://crates.io),
// the Rust community's package registry. A published crate already records
// the two values contract source metadata needs: its latest version and its
// repository URL.
//
// # Usage
//
//	client := crates.NewClient(nil)
//
//	m, err := client.SourceMetadata(ctx, "near-sdk")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Version(), m.Link())
//
// # CrateInfo
//
// [Client.FetchCrate] returns a [CrateInfo] containing:
//
//   - Name, Version: Crate identity (max_version from API)
//   - Repository, HomePage: URLs as published
//   - Description, License: descriptive fields
//
// # User-Agent
//
// The client includes a User-Agent header as requested by crates.io policy.
package crates
