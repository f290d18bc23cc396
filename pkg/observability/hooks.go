// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about compilations and artifact cache use.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCompileHooks(&myCompileHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Compile().OnCompileStart(ctx, strategy)
//	// ... compile ...
//	observability.Compile().OnCompileComplete(ctx, strategy, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// CompileHooks receives events from the compilation pipeline.
type CompileHooks interface {
	// OnCompileStart is called once the document is assembled and before
	// the workspace is prepared.
	OnCompileStart(ctx context.Context, strategy string)

	// OnCompileComplete is called when the pipeline reaches a final state.
	// err is nil on success.
	OnCompileComplete(ctx context.Context, strategy string, duration time.Duration, err error)

	// OnReveal is called after asking the OS to open an artifact.
	OnReveal(ctx context.Context, path string, err error)
}

// CacheHooks receives events from artifact cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopCompileHooks is a no-op implementation of CompileHooks.
type NoopCompileHooks struct{}

func (NoopCompileHooks) OnCompileStart(context.Context, string)                          {}
func (NoopCompileHooks) OnCompileComplete(context.Context, string, time.Duration, error) {}
func (NoopCompileHooks) OnReveal(context.Context, string, error)                         {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	compileHooks CompileHooks = NoopCompileHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetCompileHooks registers custom compile hooks. A nil value is ignored.
func SetCompileHooks(h CompileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		compileHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Compile returns the registered compile hooks.
func Compile() CompileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return compileHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	compileHooks = NoopCompileHooks{}
	cacheHooks = NoopCacheHooks{}
}
