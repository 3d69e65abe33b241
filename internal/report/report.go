// Package report holds the aggregated DNS dump of a domain and renders it as
// text, plain lines, CSV or JSON.
package report

import (
	"sort"
	"time"

	"github.com/tbckr/dnsdumper/internal/record"
)

// Records maps a record type to the values found for it.
type Records map[record.Type]*record.RecordSet

// Report is the DNS dump of one domain. It is read-only once returned by
// Aggregator.Report.
type Report struct {
	Domain     string             `json:"domain"`
	Timestamp  string             `json:"timestamp"`
	Records    Records            `json:"records"`
	Subdomains map[string]Records `json:"subdomains"`

	// order lists subdomain names in enumeration order.
	order []string
}

// Names returns the subdomain names in enumeration order, or sorted when the
// report was not built by an Aggregator (e.g. decoded from JSON).
func (r *Report) Names() []string {
	if len(r.order) == len(r.Subdomains) {
		return r.order
	}
	names := make([]string, 0, len(r.Subdomains))
	for n := range r.Subdomains {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsEmpty reports whether no record was found at all.
func (r *Report) IsEmpty() bool {
	return len(r.Records) == 0 && len(r.Subdomains) == 0
}

// Aggregator folds query outcomes into a Report. It is not safe for concurrent
// use: only the coordinating goroutine may call it, between batches.
type Aggregator struct {
	r    *Report
	seen map[string]bool
}

// NewAggregator starts an empty report for domain stamped with ts.
func NewAggregator(domain string, ts time.Time) *Aggregator {
	return &Aggregator{
		r: &Report{
			Domain:     domain,
			Timestamp:  ts.Format(time.RFC3339),
			Records:    Records{},
			Subdomains: map[string]Records{},
		},
		seen: map[string]bool{},
	}
}

// AddMain records a main-domain outcome. Empty outcomes are omitted.
func (a *Aggregator) AddMain(t record.Target, rs *record.RecordSet) {
	if rs.IsEmpty() {
		return
	}
	a.r.Records[t.Type] = rs
}

// AddSubdomain records a subdomain or full-domain outcome keyed by name, then type.
func (a *Aggregator) AddSubdomain(t record.Target, rs *record.RecordSet) {
	if !a.seen[t.Name] {
		a.seen[t.Name] = true
		a.r.order = append(a.r.order, t.Name)
		a.r.Subdomains[t.Name] = Records{}
	}
	if rs.IsEmpty() {
		return
	}
	a.r.Subdomains[t.Name][t.Type] = rs
}

// Report drops names without any record and returns the finished report.
func (a *Aggregator) Report() *Report {
	kept := a.r.order[:0]
	for _, name := range a.r.order {
		if len(a.r.Subdomains[name]) == 0 {
			delete(a.r.Subdomains, name)
			continue
		}
		kept = append(kept, name)
	}
	a.r.order = kept
	return a.r
}

// Summary holds record totals for a report.
type Summary struct {
	MainRecords      int `json:"main_records"`
	MainTypes        int `json:"main_types"`
	SubdomainRecords int `json:"subdomain_records"`
	Subdomains       int `json:"subdomains"`
}

// Total is the number of records across the main domain and all subdomains.
func (s Summary) Total() int {
	return s.MainRecords + s.SubdomainRecords
}

// Summary counts the records in r.
func (r *Report) Summary() Summary {
	s := Summary{MainTypes: len(r.Records), Subdomains: len(r.Subdomains)}
	for _, rs := range r.Records {
		s.MainRecords += rs.Count
	}
	for _, recs := range r.Subdomains {
		for _, rs := range recs {
			s.SubdomainRecords += rs.Count
		}
	}
	return s
}
