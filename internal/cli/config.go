package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pgfplots/pkg/compile"
	"github.com/matzehuels/pgfplots/pkg/errors"
)

// engineStarTeX selects the embedded plain TeX engine instead of an executable.
const engineStarTeX = "star-tex"

// Config is the contents of config.toml. Command-line flags override it.
//
//	engine       = "lualatex"
//	scratch      = "unique"
//	temp_root    = "/tmp/figures"
//	timeout      = "2m"
//	open         = false
//	cache        = true
//	validate_pdf = false
type Config struct {
	Engine      string   `toml:"engine"`
	Scratch     string   `toml:"scratch"`
	TempRoot    string   `toml:"temp_root"`
	Timeout     Duration `toml:"timeout"`
	Open        bool     `toml:"open"`
	Cache       bool     `toml:"cache"`
	ValidatePDF bool     `toml:"validate_pdf"`
}

// Duration is a time.Duration written as "90s" or "2m" in TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid timeout %q", text)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func defaultConfig() Config {
	return Config{
		Engine:  compile.DefaultEngine,
		Scratch: compile.ScratchUnique.String(),
		Timeout: Duration(2 * time.Minute),
		Cache:   true,
	}
}

// loadConfig reads path over the defaults. An empty path means the default
// location, where a missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown key %s", path, undecoded[0])
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Engine != engineStarTeX {
		if err := errors.ValidateEngineName(c.Engine); err != nil {
			return err
		}
	}
	if _, err := compile.ParseScratchMode(c.Scratch); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must not be negative")
	}
	return nil
}

// strategy returns the compile strategy selected by Engine.
func (c Config) strategy() compile.Strategy {
	if c.Engine == engineStarTeX {
		return compile.StarTeX()
	}
	return compile.NewExternal(c.Engine)
}

// configCommand creates the config command printing the effective settings.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				if dir, err := configDir(); err == nil {
					path = filepath.Join(dir, "config.toml")
				}
			}
			cfg := c.config
			printLine(styleTitle.Render("Configuration"))
			printKeyValue("file", path)
			printKeyValue("engine", cfg.Engine)
			printKeyValue("scratch", cfg.Scratch)
			printKeyValue("temp_root", orDefault(cfg.TempRoot, os.TempDir()))
			printKeyValue("timeout", time.Duration(cfg.Timeout).String())
			printKeyValue("open", strconv.FormatBool(cfg.Open))
			printKeyValue("cache", strconv.FormatBool(cfg.Cache))
			printKeyValue("validate_pdf", strconv.FormatBool(cfg.ValidatePDF))
			return nil
		},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
