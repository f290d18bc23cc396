package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/pgfplots/pkg/compile"
	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/figure"
)

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	compileFlags
	output        string // artifact destination
	open          bool   // open the copied artifact afterwards
	keepWorkspace bool   // keep the scratch directory after copying
}

// addCompileFlags registers the flags shared by compile, show and serve.
func addCompileFlags(fs *pflag.FlagSet, f *compileFlags) {
	fs.StringVarP(&f.engine, "engine", "e", compile.DefaultEngine, "TeX engine executable, or star-tex for the embedded plain TeX engine")
	fs.StringVar(&f.scratch, "scratch", "unique", "scratch directory mode: unique, shared")
	fs.StringVar(&f.tempRoot, "temp-root", "", "parent of scratch directories (default system temp)")
	fs.DurationVar(&f.timeout, "timeout", 0, "abort the engine after this long (default from config, 2m)")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	fs.BoolVar(&f.validate, "validate-pdf", false, "check that the PDF artifact parses")
}

// compileCommand creates the compile command.
func (c *CLI) compileCommand() *cobra.Command {
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile [figure|document.tex]",
		Short: "Compile a figure or LaTeX document",
		Long: `Compile a figure file (.json, .yaml, .toml) or a complete LaTeX document (.tex).

The artifact is copied next to the input (figure.yaml -> figure.pdf) or to
--output. On failure the scratch directory is kept and its path printed so
the engine log can be inspected.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocumentFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.effective(cmd.Flags().Changed, opts.compileFlags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("open") {
				opts.open = cfg.Open
			}
			return c.runCompile(cmd.Context(), args[0], cfg, opts)
		},
	}

	addCompileFlags(cmd.Flags(), &opts.compileFlags)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "artifact path (default: input with the artifact extension)")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the artifact in the default viewer")
	cmd.Flags().BoolVar(&opts.keepWorkspace, "keep-workspace", false, "keep the scratch directory after success")
	registerEngineCompletion(cmd)

	return cmd
}

func (c *CLI) runCompile(ctx context.Context, input string, cfg Config, opts compileOpts) error {
	document, err := loadDocument(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(cfg)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx), input)
	spinner := newSpinnerWithContext(ctx, "Compiling "+filepath.Base(input)+"...")
	spinner.Start()
	res, err := runner.Compile(ctx, document)
	if err != nil {
		prog.failed(res, err)
		spinner.StopWithError("Compilation failed")
		if res.Workspace != "" {
			printDetail("Workspace: %s", res.Workspace)
		}
		return err
	}
	spinner.Stop()

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + runner.Strategy.Extension()
	}
	if err := copyFile(res.Path, output); err != nil {
		return err
	}
	if !opts.keepWorkspace && runner.Scratch == compile.ScratchUnique {
		if err := os.RemoveAll(res.Workspace); err != nil {
			loggerFromContext(ctx).Warn("could not remove workspace", "dir", res.Workspace, "error", err)
		}
	}

	prog.done(res)
	printResult(res)
	printFile(output)

	if opts.open {
		if err := (compile.BrowserOpener{}).Open(output); err != nil {
			return errors.Wrap(errors.ErrCodeOpen, err, "open %s", output)
		}
	}
	return nil
}

// showCommand creates the show command: compile and open in one step.
func (c *CLI) showCommand() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "show [figure|document.tex]",
		Short: "Compile a figure and open it in the default viewer",
		Long: `Compile a figure or LaTeX document and open the artifact where it was built.

The scratch directory is kept so the viewer can read the file.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocumentFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.effective(cmd.Flags().Changed, flags)
			if err != nil {
				return err
			}
			return c.runShow(cmd.Context(), args[0], cfg)
		},
	}

	addCompileFlags(cmd.Flags(), &flags)
	registerEngineCompletion(cmd)
	return cmd
}

func (c *CLI) runShow(ctx context.Context, input string, cfg Config) error {
	document, err := loadDocument(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cfg)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx), input)
	spinner := newSpinnerWithContext(ctx, "Compiling "+filepath.Base(input)+"...")
	spinner.Start()
	res, err := runner.Show(ctx, document)
	spinner.Stop()
	if res.State == compile.StateSucceeded {
		prog.done(res)
	} else {
		prog.failed(res, err)
	}

	if err != nil && errors.Is(err, errors.ErrCodeOpen) {
		printWarning("Could not open viewer")
		printFile(res.Path)
		return err
	}
	if err != nil {
		printError("Compilation failed")
		if res.Workspace != "" {
			printDetail("Workspace: %s", res.Workspace)
		}
		return err
	}
	printResult(res)
	printFile(res.Path)
	return nil
}

// loadDocument returns the LaTeX document for input: .tex files verbatim,
// anything else as a figure file wrapped in a standalone document.
func loadDocument(input string) (string, error) {
	if strings.EqualFold(filepath.Ext(input), ".tex") {
		data, err := os.ReadFile(input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
			}
			return "", errors.Wrap(errors.ErrCodeIO, err, "read %s", input)
		}
		return string(data), nil
	}
	pic, err := figure.LoadPicture(input)
	if err != nil {
		return "", err
	}
	return pic.Standalone(), nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read %s", src)
	}
	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", dst)
	}
	return nil
}
