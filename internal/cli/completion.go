package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pgfplots/pkg/compile"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pgfplots.

To load completions:

Bash:
  $ source <(pgfplots completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ pgfplots completion bash > /etc/bash_completion.d/pgfplots
  # macOS:
  $ pgfplots completion bash > $(brew --prefix)/etc/bash_completion.d/pgfplots

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pgfplots completion zsh > "${fpath[1]}/_pgfplots"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pgfplots completion fish | source

  # To load completions for each session, execute once:
  $ pgfplots completion fish > ~/.config/fish/completions/pgfplots.fish

PowerShell:
  PS> pgfplots completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> pgfplots completion powershell > pgfplots.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// figureExtensions are the inputs accepted by render.
var figureExtensions = []string{"json", "yaml", "yml", "toml"}

// completeFigureFiles completes figure files for the first argument.
func completeFigureFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return figureExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeDocumentFiles completes figure files and .tex documents.
func completeDocumentFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return append(append([]string{}, figureExtensions...), "tex"), cobra.ShellCompDirectiveFilterFileExt
}

// registerEngineCompletion offers the common engines for --engine.
func registerEngineCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("engine", cobra.FixedCompletions(
		[]string{compile.PdfLaTeX, compile.LuaLaTeX, compile.XeLaTeX, engineStarTeX},
		cobra.ShellCompDirectiveNoFileComp,
	))
	_ = cmd.RegisterFlagCompletionFunc("scratch", cobra.FixedCompletions(
		[]string{compile.ScratchUnique.String(), compile.ScratchShared.String()},
		cobra.ShellCompDirectiveNoFileComp,
	))
}
