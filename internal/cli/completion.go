package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion <bash|zsh|fish|powershell>",
		Short:                 "Generate shell completion scripts",
		GroupID:               "utility",
		DisableFlagsInUseLine: true,
		Long: `Generate a shell completion script for dnsdumper and write it to stdout.

Load completions in the current session:
  bash:       source <(dnsdumper completion bash)
  zsh:        source <(dnsdumper completion zsh)
  fish:       dnsdumper completion fish | source
  powershell: dnsdumper completion powershell | Out-String | Invoke-Expression

To load them for every session, write the script to your shell's completion
directory, e.g. /etc/bash_completion.d/dnsdumper, "${fpath[1]}/_dnsdumper" or
~/.config/fish/completions/dnsdumper.fish.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: completionShells,
		// buildDeps creates the config dir and file; skip it during completion.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}
