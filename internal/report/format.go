package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/tbckr/dnsdumper/internal/output"
	"github.com/tbckr/dnsdumper/internal/record"
)

var (
	headingColor = color.New(color.Bold)
	countColor   = color.New(color.FgGreen)
)

// csvHeader is the column layout of CSV output. Main-domain rows leave
// Subdomain empty.
var csvHeader = []string{"Domain", "Subdomain", "Record Type", "Value", "Timestamp"}

// orderedTypes returns the types present in recs: MainTypes order first, then
// anything else by type code.
func orderedTypes(recs Records) []record.Type {
	types := make([]record.Type, 0, len(recs))
	for _, t := range record.MainTypes {
		if _, ok := recs[t]; ok {
			types = append(types, t)
		}
	}
	var extra []record.Type
	for t := range recs {
		if !slices.Contains(record.MainTypes, t) {
			extra = append(extra, t)
		}
	}
	slices.Sort(extra)
	return append(types, extra...)
}

// WriteText renders the report for humans: main-domain records, detailed
// SOA/NS/MX output and a grouped subdomain table.
func (r *Report) WriteText(w io.Writer) error {
	rule := strings.Repeat("=", 60)
	if _, err := fmt.Fprintf(w, "%s\n", rule); err != nil {
		return err
	}
	if _, err := headingColor.Fprintf(w, "DNS RECORDS FOR: %s\n", r.Domain); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Extracted on: %s\n%s\n\n", r.Timestamp, rule); err != nil {
		return err
	}

	if _, err := headingColor.Fprintln(w, "MAIN DOMAIN RECORDS"); err != nil {
		return err
	}
	types := orderedTypes(r.Records)
	if len(types) == 0 {
		if _, err := fmt.Fprintln(w, "No main domain records found."); err != nil {
			return err
		}
	} else {
		var rows [][]string
		for _, t := range types {
			for _, v := range r.Records[t].Values {
				rows = append(rows, []string{t.String(), v})
			}
		}
		table := output.NewGroupedTable(w, 20, 20)
		table.Header([]string{"Type", "Value"})
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		for _, t := range types {
			if d := r.Records[t].Detailed; d != "" {
				if _, err := headingColor.Fprintf(w, "\nDetailed %s information:\n", t); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(w, d); err != nil {
					return err
				}
			}
		}
	}

	names := r.Names()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "\nNo subdomain records found.")
		return err
	}
	if _, err := headingColor.Fprintf(w, "\nSUBDOMAIN RECORDS (%d found)\n", len(names)); err != nil {
		return err
	}
	var rows [][]string
	for _, name := range names {
		recs := r.Subdomains[name]
		for _, t := range orderedTypes(recs) {
			for _, v := range recs[t].Values {
				rows = append(rows, []string{name, t.String(), v})
			}
		}
	}
	table := output.NewGroupedTable(w, 20, 40)
	table.Header([]string{"Name", "Type", "Value"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// WritePlain renders one record per line as "name TYPE value", main domain first.
func (r *Report) WritePlain(w io.Writer) error {
	for _, t := range orderedTypes(r.Records) {
		for _, v := range r.Records[t].Values {
			if _, err := fmt.Fprintf(w, "%s %s %s\n", r.Domain, t, v); err != nil {
				return err
			}
		}
	}
	for _, name := range r.Names() {
		recs := r.Subdomains[name]
		for _, t := range orderedTypes(recs) {
			for _, v := range recs[t].Values {
				if _, err := fmt.Fprintf(w, "%s %s %s\n", name, t, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WriteCSV renders a header and one row per record value.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	if err := r.writeCSVRows(cw); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func (r *Report) writeCSVRows(cw *csv.Writer) error {
	for _, t := range orderedTypes(r.Records) {
		for _, v := range r.Records[t].Values {
			if err := cw.Write([]string{r.Domain, "", t.String(), v, r.Timestamp}); err != nil {
				return err
			}
		}
	}
	for _, name := range r.Names() {
		recs := r.Subdomains[name]
		for _, t := range orderedTypes(recs) {
			for _, v := range recs[t].Values {
				if err := cw.Write([]string{r.Domain, name, t.String(), v, r.Timestamp}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WriteSummary prints record totals.
func (r *Report) WriteSummary(w io.Writer) error {
	s := r.Summary()
	if _, err := headingColor.Fprintf(w, "Summary for %s:\n", r.Domain); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Main domain: %s DNS records across %d record types\n",
		countColor.Sprint(s.MainRecords), s.MainTypes); err != nil {
		return err
	}
	if s.Subdomains > 0 {
		if _, err := fmt.Fprintf(w, "  Subdomains: %s records across %d subdomains\n",
			countColor.Sprint(s.SubdomainRecords), s.Subdomains); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  Total: %s DNS records\n", countColor.Sprint(s.Total()))
	return err
}

// Reports is the result of dumping several domains in one run.
type Reports []*Report

// IsEmpty reports whether no report holds any record.
func (rs Reports) IsEmpty() bool {
	for _, r := range rs {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// MarshalJSON encodes a single report as an object and several as an array.
func (rs Reports) MarshalJSON() ([]byte, error) {
	if len(rs) == 1 {
		return json.Marshal(rs[0])
	}
	return json.Marshal([]*Report(rs))
}

// WriteText renders every report, separated by a blank line.
func (rs Reports) WriteText(w io.Writer) error {
	for i, r := range rs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}

// WritePlain renders every report's records, one per line.
func (rs Reports) WritePlain(w io.Writer) error {
	for _, r := range rs {
		if err := r.WritePlain(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders a single header followed by the rows of every report.
func (rs Reports) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rs {
		if err := r.writeCSVRows(cw); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary prints the totals of every report.
func (rs Reports) WriteSummary(w io.Writer) error {
	for _, r := range rs {
		if err := r.WriteSummary(w); err != nil {
			return err
		}
	}
	return nil
}
