package compile

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pgfplots/pkg/cache"
	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/observability"
	"github.com/matzehuels/pgfplots/pkg/pgf"
)

// Runner executes compilations with a fixed strategy.
//
// A Runner holds no per-compilation state. With ScratchUnique it may be used
// from multiple goroutines; ScratchShared compilations are serialized.
type Runner struct {
	Strategy    Strategy
	Scratch     ScratchMode
	TempRoot    string
	Timeout     time.Duration
	ValidatePDF bool
	Opener      Opener
	Cache       cache.Cache
	Keyer       cache.Keyer
	Logger      *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithScratch selects the scratch mode. The default is ScratchUnique.
func WithScratch(m ScratchMode) Option { return func(r *Runner) { r.Scratch = m } }

// WithTempRoot sets the parent of scratch directories. The default is os.TempDir().
func WithTempRoot(dir string) Option { return func(r *Runner) { r.TempRoot = dir } }

// WithTimeout bounds each dispatch. Zero means no limit.
func WithTimeout(d time.Duration) Option { return func(r *Runner) { r.Timeout = d } }

// WithValidatePDF enables parsing of PDF artifacts after compilation.
func WithValidatePDF(v bool) Option { return func(r *Runner) { r.ValidatePDF = v } }

// WithOpener replaces the viewer used by Show.
func WithOpener(o Opener) Option { return func(r *Runner) { r.Opener = o } }

// WithCache enables the artifact cache.
func WithCache(c cache.Cache) Option { return func(r *Runner) { r.Cache = c } }

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option { return func(r *Runner) { r.Logger = l } }

// NewRunner creates a runner for s. If s is nil the default external engine
// is used.
func NewRunner(s Strategy, opts ...Option) *Runner {
	if s == nil {
		s = NewExternal(DefaultEngine)
	}
	r := &Runner{Strategy: s}
	for _, opt := range opts {
		opt(r)
	}
	if r.TempRoot == "" {
		r.TempRoot = os.TempDir()
	}
	if r.Opener == nil {
		r.Opener = BrowserOpener{}
	}
	if r.Cache == nil {
		r.Cache = cache.NewNullCache()
	}
	if r.Keyer == nil {
		r.Keyer = cache.NewDefaultKeyer()
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	return r
}

// Compile turns document into an artifact.
//
// The returned Result is never nil. On failure its State is StateFailed and
// Workspace names the directory left behind for inspection.
func (r *Runner) Compile(ctx context.Context, document string) (*Result, error) {
	start := time.Now()
	name := r.Strategy.Name()
	res := &Result{State: StateAssembled, Strategy: name}
	hooks := observability.Compile()
	hooks.OnCompileStart(ctx, name)

	finish := func(err error) (*Result, error) {
		res.Duration = time.Since(start)
		if err != nil {
			res.State = StateFailed
			r.Logger.Debug("compilation failed", "strategy", name, "workspace", res.Workspace, "error", err)
		} else {
			res.State = StateSucceeded
			r.Logger.Debug("compilation succeeded", "strategy", name, "path", res.Path, "cached", res.Cached, "duration", res.Duration)
		}
		hooks.OnCompileComplete(ctx, name, res.Duration, err)
		return res, err
	}

	if r.Scratch == ScratchShared {
		sharedMu.Lock()
		defer sharedMu.Unlock()
	}

	ws, err := PrepareWorkspace(r.TempRoot, r.Scratch)
	if err != nil {
		return finish(err)
	}
	res.Workspace = ws.Dir
	artifact := ws.File(r.Strategy.Extension())
	key := r.Keyer.ArtifactKey(name, cache.Hash([]byte(document)))

	if r.restore(ctx, key, artifact) {
		res.Cached = true
		res.Path = artifact
		return finish(nil)
	}

	res.State = StateDispatched
	r.Logger.Debug("dispatching", "strategy", name, "workspace", ws.Dir, "bytes", len(document))

	dctx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	if err := r.Strategy.Dispatch(dctx, ws, document); err != nil {
		return finish(err)
	}
	if err := verifyArtifact(artifact); err != nil {
		return finish(err)
	}
	if r.ValidatePDF && r.Strategy.Extension() == "pdf" {
		if err := ValidatePDF(artifact); err != nil {
			return finish(err)
		}
	}

	r.store(ctx, key, artifact)
	res.Path = artifact
	return finish(nil)
}

// Show compiles document and opens the artifact in the default viewer.
//
// If compilation succeeds but the viewer cannot be launched, the successful
// Result is returned together with an ErrCodeOpen error.
func (r *Runner) Show(ctx context.Context, document string) (*Result, error) {
	res, err := r.Compile(ctx, document)
	if err != nil {
		return res, err
	}
	r.Logger.Debug("opening artifact", "path", res.Path)
	err = r.Opener.Open(res.Path)
	observability.Compile().OnReveal(ctx, res.Path, err)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeOpen, err, "open %s", res.Path)
	}
	return res, nil
}

// CompilePicture compiles the standalone document of p.
func (r *Runner) CompilePicture(ctx context.Context, p *pgf.Picture) (*Result, error) {
	return r.Compile(ctx, p.Standalone())
}

// ShowPicture compiles the standalone document of p and opens it.
func (r *Runner) ShowPicture(ctx context.Context, p *pgf.Picture) (*Result, error) {
	return r.Show(ctx, p.Standalone())
}

// Close releases the artifact cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// restore copies a cached artifact into place. Cache errors count as misses.
func (r *Runner) restore(ctx context.Context, key, artifact string) bool {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit || len(data) == 0 {
		observability.Cache().OnCacheMiss(ctx, "artifact")
		return false
	}
	if err := os.WriteFile(artifact, data, 0o644); err != nil {
		r.Logger.Warn("could not restore cached artifact", "path", artifact, "error", err)
		return false
	}
	observability.Cache().OnCacheHit(ctx, "artifact")
	return true
}

func (r *Runner) store(ctx context.Context, key, artifact string) {
	data, err := os.ReadFile(artifact)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("could not cache artifact", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
}
