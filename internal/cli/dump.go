package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbckr/dnsdumper/internal/enumerate"
	"github.com/tbckr/dnsdumper/internal/output"
	"github.com/tbckr/dnsdumper/internal/progress"
	"github.com/tbckr/dnsdumper/internal/query"
	"github.com/tbckr/dnsdumper/internal/ratelimit"
	"github.com/tbckr/dnsdumper/internal/record"
	"github.com/tbckr/dnsdumper/internal/report"
	"github.com/tbckr/dnsdumper/internal/resolver"
	"github.com/tbckr/dnsdumper/internal/scan"
	"github.com/tbckr/dnsdumper/internal/validate"
)

type dumpOptions struct {
	csvFile       string
	jsonFile      string
	quiet         bool
	noSubdomains  bool
	subdomainList string
}

func newDumpCmd(d *deps) *cobra.Command {
	var opts dumpOptions

	cmd := &cobra.Command{
		Use:     "dump [domain...]",
		Short:   "Dump the DNS records of one or more domains",
		GroupID: "dns",
		Long: `Dump the DNS records of a domain and its common subdomains.

The domain itself is queried for A, AAAA, CNAME, MX, NS, TXT, SOA, PTR, SRV,
CAA, DNSKEY and DS. SOA, NS and MX additionally get a full-output query whose
text is included in the report. Every subdomain, RFC service name and custom
entry is then queried for A, AAAA and CNAME in batches of --batch-size.

Entries in --subdomain-list that contain a dot and are not plain labels of the
target domain are queried verbatim. Names and record types without any answer
are left out of the report.

Multiple domains can be supplied as arguments or piped via stdin (one per line).`,
		Example: `  # Dump a domain
  dnsdumper dump example.com

  # Main domain records only, as JSON
  dnsdumper dump --no-subdomains -o json example.com

  # Extra names, and a CSV copy of the report
  dnsdumper dump --subdomain-list names.txt --csv example.csv example.com

  # Bulk input from stdin
  cat domains.txt | dnsdumper dump -q`,
		Args: cobra.ArbitraryArgs,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := resolveInputs(cmd, args)
			if err != nil {
				return err
			}
			return runDump(cmd, d, opts, inputs)
		},
	}

	cmd.Flags().StringVar(&opts.csvFile, "csv", "", "also write the report as CSV to `FILE`")
	cmd.Flags().StringVar(&opts.jsonFile, "json", "", "also write the report as JSON to `FILE`")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress and summary output")
	cmd.Flags().BoolVar(&opts.noSubdomains, "no-subdomains", false, "query the main domain only")
	cmd.Flags().StringVar(&opts.subdomainList, "subdomain-list", "", "read extra subdomain labels and full domains from `FILE`")
	_ = cmd.MarkFlagFilename("csv", "csv")
	_ = cmd.MarkFlagFilename("json", "json")
	_ = cmd.MarkFlagFilename("subdomain-list")

	return cmd
}

func runDump(cmd *cobra.Command, d *deps, opts dumpOptions, inputs []string) error {
	domains := make([]string, len(inputs))
	for i, in := range inputs {
		domains[i] = validate.Normalize(in)
	}

	executor := query.NewExecutor(resolver.NewDig(d.cfg.Resolver), query.Options{
		Server:        d.cfg.Server,
		Timeout:       d.cfg.Timeout,
		DetailTimeout: d.cfg.DetailTimeout,
		Limiter:       ratelimit.New(d.cfg.RateLimit),
	}, d.logger)
	if err := executor.Available(); err != nil {
		return err
	}

	enumerator := enumerate.New(d.logger)
	var custom *enumerate.CustomList
	if opts.subdomainList != "" {
		custom = enumerator.LoadCustom(opts.subdomainList)
	}
	plans := make([]enumerate.Plan, len(domains))
	for i, domain := range domains {
		plan, err := enumerator.Enumerate(domain, enumerate.Options{
			Custom:  custom,
			SkipRFC: d.cfg.SkipRFC,
		})
		if err != nil {
			return err
		}
		plans[i] = plan
	}

	reporter := progress.New(cmd.ErrOrStderr(), d.logger, opts.quiet)
	scanner := scan.New(executor, scan.Options{
		Concurrency: d.cfg.Concurrency,
		BatchSize:   d.cfg.BatchSize,
		Progress:    reporter.Update,
	}, d.logger)

	reports := make(report.Reports, 0, len(domains))
	for i, domain := range domains {
		var targets []record.Target
		if !opts.noSubdomains {
			targets = plans[i].Targets(domain)
		}
		d.logger.Info("dumping DNS records",
			"domain", domain,
			"server", d.cfg.Server,
			"names", len(targets)/len(record.SubdomainTypes),
		)
		r, err := scanner.Run(cmd.Context(), domain, targets)
		reporter.Finish()
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	if err := writeResult(cmd.OutOrStdout(), d, reports); err != nil {
		return err
	}
	for _, f := range []struct {
		path   string
		format output.Format
	}{
		{opts.csvFile, output.FormatCSV},
		{opts.jsonFile, output.FormatJSON},
	} {
		if f.path == "" {
			continue
		}
		if err := output.WriteFile(f.path, f.format, reports); err != nil {
			return err
		}
		d.logger.Info("report saved", "format", string(f.format), "file", f.path)
	}

	if opts.quiet {
		return nil
	}
	if err := reports.WriteSummary(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
