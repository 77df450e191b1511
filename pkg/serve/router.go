package serve

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/iamochuko/contract-source-metadata/pkg/observability"
	"github.com/iamochuko/contract-source-metadata/pkg/sourcemeta"
)

const (
	// MetadataPath is the well-known route indexers query.
	MetadataPath = "/contract_source_metadata"

	// HealthPath answers liveness probes.
	HealthPath = "/healthz"

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

// NewRouter returns a handler serving p's metadata at [MetadataPath].
// A nil logger discards access logs.
func NewRouter(p sourcemeta.Provider, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)

	r.Get(MetadataPath, metadataHandler(p))
	r.Get(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	return r
}

func metadataHandler(p sourcemeta.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		body, err := json.Marshal(sourcemeta.Describe(p))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(body)
	}
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func accessLog(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hooks := observability.HTTP()
			hooks.OnRequest(r.Context(), r.Method, r.Host, r.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			hooks.OnResponse(r.Context(), r.Method, r.Host, r.URL.Path, status, elapsed)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", elapsed.Round(time.Microsecond),
				"request_id", r.Header.Get(RequestIDHeader),
			)
		})
	}
}
