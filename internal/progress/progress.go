// Package progress renders subdomain batch progress: a progress bar on an
// interactive terminal, log lines otherwise.
package progress

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/tbckr/dnsdumper/internal/output"
	"github.com/tbckr/dnsdumper/internal/scan"
)

// Reporter consumes scan.Progress updates. Its Update method is a
// scan.ProgressFunc.
type Reporter struct {
	w      io.Writer
	logger *slog.Logger
	quiet  bool
	tty    bool

	domain string
	bar    *progressbar.ProgressBar
}

// New creates a Reporter writing to w. quiet suppresses all output.
func New(w io.Writer, logger *slog.Logger, quiet bool) *Reporter {
	return &Reporter{w: w, logger: logger, quiet: quiet, tty: output.IsTerminal(w)}
}

// Update records a finished batch.
func (r *Reporter) Update(p scan.Progress) {
	if r.quiet {
		return
	}
	if !r.tty {
		r.logger.Info("subdomain batch complete",
			"domain", p.Domain,
			"batch", fmt.Sprintf("%d/%d", p.Batch, p.Batches),
			"completed", p.Completed,
			"total", p.Total,
		)
		return
	}
	if r.bar == nil || r.domain != p.Domain {
		r.Finish()
		r.domain = p.Domain
		r.bar = progressbar.NewOptions(p.Total,
			progressbar.OptionSetWriter(r.w),
			progressbar.OptionSetDescription("Querying "+p.Domain),
			progressbar.OptionShowCount(),
			progressbar.OptionFullWidth(),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = r.bar.Set(p.Completed)
	if p.Completed >= p.Total {
		r.Finish()
	}
}

// Finish closes the current progress bar, if any.
func (r *Reporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
	r.domain = ""
}
