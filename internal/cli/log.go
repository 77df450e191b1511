package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress reports how long an operation took once it finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Fetched serde (231ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// scanLogger adapts the CLI logger to observability.ScanHooks so manifest
// lookups show up at debug level.
type scanLogger struct {
	logger *log.Logger
}

func (s scanLogger) OnScanStart(_ context.Context, path string) {
	s.logger.Debug("Reading manifest", "path", path)
}

func (s scanLogger) OnScanComplete(_ context.Context, path, reader string, found bool, d time.Duration, err error) {
	if err != nil {
		s.logger.Debug("Manifest lookup finished", "path", path, "reader", reader, "found", found, "took", d.Round(time.Microsecond), "err", err)
		return
	}
	s.logger.Debug("Manifest lookup finished", "path", path, "reader", reader, "found", found, "took", d.Round(time.Microsecond))
}
