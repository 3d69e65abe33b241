package config

import "github.com/spf13/cobra"

// CompleteOutputFormat provides shell completion candidates for the --output flag.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return formatNames(), cobra.ShellCompDirectiveNoFileComp
}

// CompleteResolver suggests executables for the --resolver flag.
func CompleteResolver(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"dig"}, cobra.ShellCompDirectiveDefault
}

// RegisterFlagCompletions attaches completion functions to the global flags.
func RegisterFlagCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("output", CompleteOutputFormat)
	_ = cmd.RegisterFlagCompletionFunc("resolver", CompleteResolver)
	_ = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
}
