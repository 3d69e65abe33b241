// Package scan runs the two query phases for a domain: every main record type
// against the domain itself, then A/AAAA/CNAME against each enumerated name in
// fixed-size batches.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/tbckr/dnsdumper/internal/record"
	"github.com/tbckr/dnsdumper/internal/report"
	"github.com/tbckr/dnsdumper/internal/worker"
)

const (
	// DefaultConcurrency is the number of queries in flight at once.
	DefaultConcurrency = 20
	// DefaultBatchSize is the number of subdomain targets per batch.
	DefaultBatchSize = 50
)

// Querier resolves single targets. *query.Executor satisfies it.
type Querier interface {
	Available() error
	Query(ctx context.Context, t record.Target) *record.RecordSet
	QueryDetailed(ctx context.Context, t record.Target) *record.RecordSet
}

// Progress is reported after each completed subdomain batch.
type Progress struct {
	Domain    string
	Batch     int
	Batches   int
	Completed int
	Total     int
}

// ProgressFunc receives progress updates. It is called from the coordinating
// goroutine only.
type ProgressFunc func(Progress)

// Options configures a Scanner. Zero values fall back to the defaults.
type Options struct {
	Concurrency int
	BatchSize   int
	Progress    ProgressFunc
}

// Scanner schedules queries and folds their outcomes into a report.
type Scanner struct {
	querier Querier
	opts    Options
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Scanner around querier.
func New(querier Querier, opts Options, logger *slog.Logger) *Scanner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Scanner{querier: querier, opts: opts, logger: logger, now: time.Now}
}

// Run dumps domain. subTargets are the subdomain-phase targets, usually from
// enumerate.Plan.Targets; nil skips the subdomain phase.
//
// The resolver is checked before anything is queried; if it is unavailable
// Run returns the error and no report. Individual query failures never fail
// the run. If ctx is canceled between batches, Run stops and returns ctx.Err().
func (s *Scanner) Run(ctx context.Context, domain string, subTargets []record.Target) (*report.Report, error) {
	if err := s.querier.Available(); err != nil {
		return nil, err
	}

	agg := report.NewAggregator(domain, s.now().UTC())

	mainTargets := record.Targets([]string{domain}, record.MainTypes)
	s.logger.Debug("querying main domain", "domain", domain, "types", len(mainTargets))
	for _, res := range s.run(ctx, mainTargets, s.querier.QueryDetailed) {
		agg.AddMain(res.Input, res.Output)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dumping %s: %w", domain, err)
	}

	batches := lo.Chunk(subTargets, s.opts.BatchSize)
	completed := 0
	for i, batch := range batches {
		s.logger.Debug("querying subdomain batch", "domain", domain, "batch", i+1, "batches", len(batches), "targets", len(batch))
		for _, res := range s.run(ctx, batch, s.querier.Query) {
			agg.AddSubdomain(res.Input, res.Output)
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dumping %s: %w", domain, err)
		}
		completed += len(batch)
		if s.opts.Progress != nil {
			s.opts.Progress(Progress{
				Domain:    domain,
				Batch:     i + 1,
				Batches:   len(batches),
				Completed: completed,
				Total:     len(subTargets),
			})
		}
	}

	r := agg.Report()
	s.logger.Debug("dump finished", "domain", domain, "records", r.Summary().Total())
	return r, nil
}

func (s *Scanner) run(ctx context.Context, targets []record.Target, fn func(context.Context, record.Target) *record.RecordSet) []worker.Result[record.Target, *record.RecordSet] {
	return worker.Run(ctx, targets, s.opts.Concurrency, func(ctx context.Context, t record.Target) (*record.RecordSet, error) {
		return fn(ctx, t), nil
	})
}
