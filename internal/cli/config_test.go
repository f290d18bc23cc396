package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/pgfplots/pkg/compile"
	"github.com/matzehuels/pgfplots/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
engine = "lualatex"
scratch = "shared"
timeout = "30s"
cache = false
validate_pdf = true
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := Config{
		Engine:      "lualatex",
		Scratch:     "shared",
		Timeout:     Duration(30 * time.Second),
		Cache:       false,
		ValidatePDF: true,
	}
	if cfg != want {
		t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if err := os.MkdirAll(filepath.Join(home, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, appName, "config.toml"), []byte(`engine = "xelatex"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Engine != "xelatex" {
		t.Errorf("Engine = %s", cfg.Engine)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidFormat},
		{"bad timeout", `timeout = "soon"`, errors.ErrCodeInvalidFormat},
		{"bad engine", `engine = "pdflatex; rm -rf /"`, errors.ErrCodeInvalidEngine},
		{"bad scratch", `scratch = "global"`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestEffectiveFlagsOverrideConfig(t *testing.T) {
	c := &CLI{config: defaultConfig()}
	c.config.Engine = "lualatex"

	changed := map[string]bool{"scratch": true, "no-cache": true}
	cfg, err := c.effective(func(name string) bool { return changed[name] }, compileFlags{
		engine:  "ignored",
		scratch: "shared",
		noCache: true,
	})
	if err != nil {
		t.Fatalf("effective: %v", err)
	}
	if cfg.Engine != "lualatex" {
		t.Errorf("unchanged flag overrode config: engine = %s", cfg.Engine)
	}
	if cfg.Scratch != "shared" || cfg.Cache {
		t.Errorf("changed flags not applied: %+v", cfg)
	}
}

func TestConfigStrategy(t *testing.T) {
	if got := (Config{Engine: engineStarTeX}).strategy().Name(); got != "embedded:star-tex" {
		t.Errorf("star-tex strategy = %s", got)
	}
	s, ok := (Config{Engine: "lualatex"}).strategy().(*compile.External)
	if !ok || s.Engine != "lualatex" {
		t.Errorf("external strategy = %#v", s)
	}
}
