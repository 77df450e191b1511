// Package serve hosts a [sourcemeta.Provider] over HTTP so off-chain
// indexers can query it.
//
// # Routes
//
//	GET /contract_source_metadata   {"version": "...", "link": "..."}
//	GET /healthz                    ok
//
// Every response carries an X-Request-ID header, echoed from the request or
// generated. Requests are access-logged through the injected
// charmbracelet/log logger and reported to observability.HTTP().
//
// # Usage
//
//	srv := &serve.Server{
//	    Addr:    ":8330",
//	    Handler: serve.NewRouter(buildinfo.Provider(), logger),
//	    Logger:  logger,
//	}
//	err := srv.ListenAndServe(ctx) // returns nil after ctx is cancelled
//
// [sourcemeta.Provider]: github.com/iamochuko/contract-source-metadata/pkg/sourcemeta.Provider
package serve
