package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/figure"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output .tex path; stdout when empty
	picture bool   // write only the tikzpicture environment
}

// renderCommand creates the render command, which writes LaTeX source for a
// figure file without compiling it.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [figure]",
		Short: "Write the LaTeX source of a figure",
		Long: `Render a figure file (.json, .yaml or .toml) to a standalone LaTeX document.

With --picture only the tikzpicture environment is written, ready to be
\input into a larger document.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFigureFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.picture, "picture", false, "write only the tikzpicture environment")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	pic, err := figure.LoadPicture(input)
	if err != nil {
		return err
	}
	src := pic.Standalone()
	if opts.picture {
		src = pic.String()
	}

	if opts.output == "" {
		_, err := fmt.Fprintln(os.Stdout, src)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(src+"\n"), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", opts.output)
	}
	logger.Debug("wrote source", "path", opts.output, "axes", len(pic.Axes))
	printSuccess("Rendered %s", input)
	printFile(opts.output)
	printNextStep("Compile it", appName+" compile "+input)
	return nil
}
