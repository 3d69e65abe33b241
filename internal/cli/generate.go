package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/generator"
)

const defaultGenerateCount = 10

func newGenerateCmd(d *deps) *cobra.Command {
	var (
		opts  generator.Options
		quiet bool
	)

	cmd := &cobra.Command{
		Use:     "generate [count]",
		Short:   "Generate realistic-sounding random domain names",
		GroupID: "utility",
		Long: `Generate random domain names for testing and demos.

Names combine common business nouns, adjectives and suffixes ("smartsystems",
"datacloudlabs") under a TLD picked with real-world weighting. With
--international, names use words with non-ASCII characters; add --punycode to
emit their ASCII (xn--) form.`,
		Example: `  # Ten domains
  dnsdumper generate

  # 100 German IDN domains in punycode
  dnsdumper generate 100 --international --punycode`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			count := defaultGenerateCount
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: domain count must be a positive integer, got %q", apperr.ErrInvalidInput, args[0])
				}
				count = n
			}

			domains, err := generator.New(nil).Generate(count, opts)
			if err != nil {
				return err
			}
			if err := writeResult(cmd.OutOrStdout(), d, domains); err != nil {
				return err
			}
			if !quiet {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "\nGenerated %d domain names.\n", len(domains))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.International, "international", false, "use words with international characters")
	cmd.Flags().StringVar(&opts.Language, "language", "german", "language of international words")
	cmd.Flags().BoolVar(&opts.Punycode, "punycode", false, "convert international names to punycode")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the summary line")
	_ = cmd.RegisterFlagCompletionFunc("language", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"german"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
