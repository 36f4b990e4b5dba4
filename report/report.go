// Package report defines the JSON-serializable result of a scan.
package report

import (
	"sort"
	"time"

	"github.com/gofrs/uuid"
)

// Report is the result of scanning one or more javap listings. Reports
// marshal cleanly to JSON for archival and CI tooling.
type Report struct {
	ID             string        `json:"id"`
	GeneratedAt    time.Time     `json:"generated_at"`
	Source         string        `json:"source,omitempty"`
	ScannedClasses int           `json:"scanned_classes"`
	ScannedMethods int           `json:"scanned_methods"`
	Classes        []ClassReport `json:"classes,omitempty"`
}

// ClassReport groups the findings for one class. Classes without any
// flagged method do not appear in a report.
type ClassReport struct {
	Name       string         `json:"name"`
	SourceFile string         `json:"source_file,omitempty"`
	Methods    []MethodReport `json:"methods"`
}

// MethodReport lists the source lines in one method whose bytecode
// matches a known compiler-generated close sequence.
type MethodReport struct {
	Name        string `json:"name"`
	Descriptor  string `json:"descriptor,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Lines       []int  `json:"lines"`
}

// New creates an empty report with a fresh ID and timestamp.
func New(source string) (*Report, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Report{
		ID:          id.String(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
	}, nil
}

// Merge combines the parts into one report with a fresh ID. Classes
// keep the order of the parts, so the merged report is deterministic
// no matter how the individual scans were scheduled.
func Merge(source string, parts ...*Report) (*Report, error) {
	merged, err := New(source)
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		if part == nil {
			continue
		}
		merged.ScannedClasses += part.ScannedClasses
		merged.ScannedMethods += part.ScannedMethods
		merged.Classes = append(merged.Classes, part.Classes...)
	}
	return merged, nil
}

// FlaggedLines returns the total number of flagged lines across all
// classes in the report.
func (r *Report) FlaggedLines() int {
	total := 0
	for _, class := range r.Classes {
		for _, method := range class.Methods {
			total += len(method.Lines)
		}
	}
	return total
}

// FlaggedMethods returns the number of methods with at least one finding.
func (r *Report) FlaggedMethods() int {
	total := 0
	for _, class := range r.Classes {
		total += len(class.Methods)
	}
	return total
}

// HasFindings reports whether any method was flagged.
func (r *Report) HasFindings() bool {
	return r.FlaggedMethods() > 0
}

// Lines returns the class's flagged lines across all of its methods,
// sorted and de-duplicated. Generated close blocks attributed to the
// same source line in different methods collapse to one entry.
func (c ClassReport) Lines() []int {
	seen := make(map[int]struct{})
	var lines []int
	for _, method := range c.Methods {
		for _, line := range method.Lines {
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			lines = append(lines, line)
		}
	}
	sort.Ints(lines)
	return lines
}
