package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbckr/dnsdumper/internal/version"
)

func newVersionCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the dnsdumper version",
		Args:    cobra.NoArgs,
		GroupID: "utility",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeResult(cmd.OutOrStdout(), d, version.Get())
		},
	}
}
