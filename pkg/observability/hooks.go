// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module never log directly. Instead they emit events
// through hooks that default to no-ops, and the application registers real
// implementations at startup.
//
// Two hook categories exist:
//   - ScanHooks: manifest lookups (which reader ran, what it found)
//   - HTTPHooks: outbound registry requests and inbound metadata requests
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScanHooks(&myScanHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scan().OnScanStart(ctx, path)
//	// ... read manifest ...
//	observability.Scan().OnScanComplete(ctx, path, reader, found, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events from manifest lookups.
type ScanHooks interface {
	// OnScanStart records the start of a manifest lookup.
	OnScanStart(ctx context.Context, path string)

	// OnScanComplete records the outcome. reader is the manifest type that
	// handled the file ("legacy" for the line scanner); found reports whether
	// a repository link was extracted.
	OnScanComplete(ctx context.Context, path, reader string, found bool, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client and server operations.
type HTTPHooks interface {
	// OnRequest records an HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnScanStart(context.Context, string) {}
func (NoopScanHooks) OnScanComplete(context.Context, string, string, bool, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scanHooks ScanHooks = NoopScanHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetScanHooks registers custom scan hooks.
// This should be called once at application startup before any lookups.
func SetScanHooks(h ScanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scanHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Scan returns the registered scan hooks.
func Scan() ScanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scanHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scanHooks = NoopScanHooks{}
	httpHooks = NoopHTTPHooks{}
}
