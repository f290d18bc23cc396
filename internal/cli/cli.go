package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pgfplots/pkg/cache"
	"github.com/matzehuels/pgfplots/pkg/compile"
)

// appName is the application name used for directories and display.
const appName = "pgfplots"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// compileFlags are the flags shared by compile, show and serve. Zero values
// defer to the config file.
type compileFlags struct {
	engine   string
	scratch  string
	tempRoot string
	timeout  time.Duration
	noCache  bool
	validate bool
}

// effective merges the flags that were set on the command line into the
// loaded config.
func (c *CLI) effective(changed func(string) bool, f compileFlags) (Config, error) {
	cfg := c.config
	if changed("engine") {
		cfg.Engine = f.engine
	}
	if changed("scratch") {
		cfg.Scratch = f.scratch
	}
	if changed("temp-root") {
		cfg.TempRoot = f.tempRoot
	}
	if changed("timeout") {
		cfg.Timeout = Duration(f.timeout)
	}
	if changed("no-cache") {
		cfg.Cache = !f.noCache
	}
	if changed("validate-pdf") {
		cfg.ValidatePDF = f.validate
	}
	return cfg, cfg.validate()
}

// newRunner creates a compile runner for cfg.
func (c *CLI) newRunner(cfg Config) (*compile.Runner, error) {
	store, err := newCache(!cfg.Cache)
	if err != nil {
		return nil, err
	}
	mode, err := compile.ParseScratchMode(cfg.Scratch)
	if err != nil {
		return nil, err
	}
	return compile.NewRunner(cfg.strategy(),
		compile.WithScratch(mode),
		compile.WithTempRoot(cfg.TempRoot),
		compile.WithTimeout(time.Duration(cfg.Timeout)),
		compile.WithValidatePDF(cfg.ValidatePDF),
		compile.WithCache(store),
		compile.WithLogger(c.Logger),
	), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pgfplots/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/pgfplots/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
