// Package observability provides hooks for tracing the drawing pipeline.
//
// Consumers register hooks at startup to receive an event before and after
// each pipeline stage. The default hooks do nothing, so libraries can emit
// events unconditionally.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, path, index)
//	// ... read the report ...
//	observability.Pipeline().OnParseComplete(ctx, path, vertices, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the drawing pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, path string, index int)
	OnParseComplete(ctx context.Context, path string, vertices, edges int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, cycleSize, connecting int)
	OnLayoutComplete(ctx context.Context, nodes int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, labels int)
	OnRenderComplete(ctx context.Context, bytes int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string, int) {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                     {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
