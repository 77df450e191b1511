// Package httputil provides retry helpers for registry API clients.
//
// [Retry] re-runs an operation on transient failure with exponential
// backoff. Only errors wrapped in [RetryableError] are retried; everything
// else (404s, decode failures) returns immediately.
//
//	err := httputil.Retry(ctx, httputil.DefaultPolicy, func() error {
//	    return client.get(ctx, url, &out)
//	})
//
// Default settings are 3 attempts starting at a 1 second delay, doubling up
// to a 10 second cap.
package httputil
