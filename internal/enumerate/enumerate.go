// Package enumerate builds the set of names probed for a domain: the built-in
// subdomain labels, optionally the RFC service names, and entries from a
// user-supplied list.
package enumerate

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"

	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/input"
	"github.com/tbckr/dnsdumper/internal/record"
	"github.com/tbckr/dnsdumper/internal/validate"
)

// CustomList is a user-supplied list of labels and full domains. It is read
// once by LoadCustom and classified again for every target domain.
type CustomList struct {
	Path    string
	Entries []string
	// Err is set when the file could not be read; it wraps
	// apperr.ErrCustomFileUnreadable.
	Err error
}

// Options controls which lists contribute to a Plan.
type Options struct {
	// Custom is an optional list from LoadCustom.
	Custom *CustomList
	// SkipRFC drops the RFCServices list from the base label set.
	SkipRFC bool
}

// Plan is the outcome of enumeration for one domain.
type Plan struct {
	// Labels are joined with the target domain before querying.
	Labels []string
	// FullDomains are queried verbatim.
	FullDomains []string
	// AddedLabels counts custom labels that were not already built in.
	AddedLabels int
	// Warnings collects recoverable problems, such as an unreadable custom file.
	Warnings []error
}

// Names returns every name to query in enumeration order: labels joined with
// domain first, then full domains.
func (p Plan) Names(domain string) []string {
	names := make([]string, 0, len(p.Labels)+len(p.FullDomains))
	for _, l := range p.Labels {
		names = append(names, l+"."+domain)
	}
	return append(names, p.FullDomains...)
}

// Targets returns the subdomain-phase query targets for domain.
func (p Plan) Targets(domain string) []record.Target {
	return record.Targets(p.Names(domain), record.SubdomainTypes)
}

// Enumerator produces Plans. It keeps no state between calls.
type Enumerator struct {
	logger *slog.Logger
}

// New creates an Enumerator that reports warnings to logger.
func New(logger *slog.Logger) *Enumerator {
	return &Enumerator{logger: logger}
}

// LoadCustom reads the newline-separated list at path. Blank lines and '#'
// comments are ignored. A missing or unreadable file is logged once and
// recorded in the returned list's Err.
func (e *Enumerator) LoadCustom(path string) *CustomList {
	list := &CustomList{Path: path}
	entries, err := readCustomFile(path)
	if err != nil {
		list.Err = fmt.Errorf("%w: %w", apperr.ErrCustomFileUnreadable, err)
		e.logger.Warn("using built-in subdomain list only", "file", path, "error", list.Err)
		return list
	}
	list.Entries = entries
	e.logger.Info("loaded custom subdomain list", "file", path, "entries", len(entries))
	return list
}

// Enumerate builds the Plan for domain. An invalid domain is rejected with
// apperr.ErrInvalidInput; an unreadable custom list only adds a warning and
// leaves the built-in lists in place.
func (e *Enumerator) Enumerate(domain string, opts Options) (Plan, error) {
	domain = validate.Normalize(domain)
	if !validate.IsDomain(domain) {
		return Plan{}, fmt.Errorf("%w: not a valid domain name: %q", apperr.ErrInvalidInput, domain)
	}

	base := Standard
	if !opts.SkipRFC {
		base = append(append([]string{}, Standard...), RFCServices...)
	}
	plan := Plan{Labels: lo.Uniq(base)}

	custom := opts.Custom
	if custom == nil {
		e.logger.Debug("using built-in subdomain list", "labels", len(plan.Labels))
		return plan, nil
	}
	if custom.Err != nil {
		plan.Warnings = append(plan.Warnings, custom.Err)
		return plan, nil
	}

	seen := make(map[string]struct{}, len(plan.Labels))
	for _, l := range plan.Labels {
		seen[l] = struct{}{}
	}
	for _, raw := range custom.Entries {
		entry := validate.Normalize(raw)
		switch Classify(entry, domain) {
		case KindFullDomain:
			if !validate.IsDomain(entry) {
				e.logger.Debug("skipping malformed custom entry", "entry", raw)
				continue
			}
			plan.FullDomains = append(plan.FullDomains, entry)
		default:
			if !validate.IsDomain(entry + "." + domain) {
				e.logger.Debug("skipping malformed custom entry", "entry", raw)
				continue
			}
			if _, dup := seen[entry]; dup {
				continue
			}
			seen[entry] = struct{}{}
			plan.Labels = append(plan.Labels, entry)
			plan.AddedLabels++
		}
	}

	e.logger.Debug("classified custom subdomain list",
		"domain", domain,
		"file", custom.Path,
		"new_labels", plan.AddedLabels,
		"full_domains", len(plan.FullDomains),
		"total_labels", len(plan.Labels),
	)
	return plan, nil
}

func readCustomFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return input.ReadList(f)
}
