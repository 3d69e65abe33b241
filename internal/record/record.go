// Package record holds the data model shared by the enumerator, executor,
// scheduler and report: record types, query targets and record sets.
package record

import (
	"strings"

	"github.com/tbckr/dnsdumper/internal/output"
)

// Target is a single (name, record type) pair to query. Targets are immutable.
type Target struct {
	Name string
	Type Type
}

// Targets builds the cross product of names and types, name-major.
func Targets(names []string, types []Type) []Target {
	targets := make([]Target, 0, len(names)*len(types))
	for _, n := range names {
		for _, t := range types {
			targets = append(targets, Target{Name: n, Type: t})
		}
	}
	return targets
}

// RecordSet holds the values returned by one successful query.
// Count always equals len(Values).
type RecordSet struct {
	Values   []string `json:"values"`
	Count    int      `json:"count"`
	Detailed string   `json:"detailed,omitempty"`
}

// NewRecordSet splits raw resolver output into a RecordSet, one value per line.
// It returns nil when the output holds no values (the record is absent).
func NewRecordSet(raw string) *RecordSet {
	var values []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(output.Sanitize(line))
		if line != "" {
			values = append(values, line)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return &RecordSet{Values: values, Count: len(values)}
}

// IsEmpty reports whether the set holds no values.
func (r *RecordSet) IsEmpty() bool {
	return r == nil || len(r.Values) == 0
}
