package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time since progress
// was created.
// Example output: "Drew record 3 (4ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline stage timings at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnParseStart(_ context.Context, path string, index int) {
	h.logger.Debug("parse start", "path", path, "record", index)
}

func (h *logHooks) OnParseComplete(_ context.Context, path string, vertices, edges int, d time.Duration, err error) {
	h.logger.Debug("parse complete", "path", path, "vertices", vertices, "edges", edges, "duration", d, "err", err)
}

func (h *logHooks) OnLayoutStart(_ context.Context, cycleSize, connecting int) {
	h.logger.Debug("layout start", "cycle_size", cycleSize, "connecting", connecting)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, nodes int, d time.Duration, err error) {
	h.logger.Debug("layout complete", "nodes", nodes, "duration", d, "err", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, labels int) {
	h.logger.Debug("render start", "labels", labels)
}

func (h *logHooks) OnRenderComplete(_ context.Context, n int, d time.Duration, err error) {
	h.logger.Debug("render complete", "bytes", n, "duration", d, "err", err)
}
