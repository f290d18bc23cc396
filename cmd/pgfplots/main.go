package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pgfplots/internal/cli"
	pgferrors "github.com/matzehuels/pgfplots/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, pgferrors.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The root command loads the config in its own PreRun; wrap it so the
	// log level is set first.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// exitCode distinguishes bad input (2) from failed compilations (1).
func exitCode(err error) int {
	switch pgferrors.GetCode(err) {
	case pgferrors.ErrCodeInvalidInput, pgferrors.ErrCodeInvalidFormat,
		pgferrors.ErrCodeInvalidPath, pgferrors.ErrCodeInvalidEngine,
		pgferrors.ErrCodeFileNotFound:
		return 2
	}
	return 1
}
