package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pgfplots/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The config file is loaded before any subcommand runs, and the CLI logger is
// attached to the command context for use via loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pgfplots builds and compiles PGFPlots figures",
		Long: `pgfplots turns figure descriptions (JSON, YAML or TOML) into PGFPlots LaTeX
source, compiles them with a TeX engine and opens the result.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pgfplots/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.compileCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
