/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Outcome is the per entity result of a run
type Outcome struct {
	URN    string
	Status string
	Detail string
}

// Outcome statuses
const (
	StatusMigrated  = "migrated"
	StatusInSync    = "in-sync"
	StatusValidated = "validated"
	StatusSkipped   = "skipped"
	StatusUnmatched = "unmatched"
	StatusFailed    = "failed"
)

// Report accumulates the totals of one migration run. A report is
// created fresh each run and discarded after being printed and written
// to the run log.
type Report struct {
	RunID     string
	TargetEnv string
	DryRun    bool

	Loaded     int
	Skipped    int
	Invalid    int
	Duplicates int
	Mutated    int
	Matched    int
	Unmatched  int
	Generated  int
	Submitted  int
	Failed     int

	Outcomes []Outcome
	Warnings []string
}

// NewReport starts a report for one run
func NewReport(targetEnv string, dryRun bool) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		TargetEnv: targetEnv,
		DryRun:    dryRun,
	}
}

// AddOutcome records the result for one entity
func (r *Report) AddOutcome(urn, status, detail string) {
	r.Outcomes = append(r.Outcomes, Outcome{URN: urn, Status: status, Detail: detail})
}

// AddWarning records a non fatal problem surfaced to the user
func (r *Report) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Summary renders the tail-able summary block
func (r *Report) Summary() string {
	mode := "live"
	if r.DryRun {
		mode = "dry-run"
	}
	var b strings.Builder
	separator := strings.Repeat("=", 44)
	b.WriteString(separator + "\n")
	b.WriteString("MIGRATION PROCESSING SUMMARY\n")
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Run ID:               %s\n", r.RunID)
	fmt.Fprintf(&b, "Target environment:   %s\n", r.TargetEnv)
	fmt.Fprintf(&b, "Mode:                 %s\n", mode)
	fmt.Fprintf(&b, "Entities loaded:      %d\n", r.Loaded)
	fmt.Fprintf(&b, "Entries skipped:      %d\n", r.Skipped)
	fmt.Fprintf(&b, "Invalid entities:     %d\n", r.Invalid)
	fmt.Fprintf(&b, "Duplicate URNs:       %d\n", r.Duplicates)
	fmt.Fprintf(&b, "Fields mutated:       %d\n", r.Mutated)
	fmt.Fprintf(&b, "Entities matched:     %d\n", r.Matched)
	fmt.Fprintf(&b, "Entities unmatched:   %d\n", r.Unmatched)
	fmt.Fprintf(&b, "Proposals generated:  %d\n", r.Generated)
	fmt.Fprintf(&b, "Proposals submitted:  %d\n", r.Submitted)
	fmt.Fprintf(&b, "Proposals failed:     %d\n", r.Failed)
	if len(r.Warnings) > 0 {
		b.WriteString(separator + "\n")
		fmt.Fprintf(&b, "Warnings (%d):\n", len(r.Warnings))
		for _, warning := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", warning)
		}
	}
	b.WriteString(separator + "\n")
	return b.String()
}

// WriteLog writes the summary and the per entity outcomes to
// migration.log under the output directory
func (r *Report) WriteLog(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(r.Summary())
	for _, outcome := range r.Outcomes {
		fmt.Fprintf(&b, "%-12s %s", outcome.Status, outcome.URN)
		if outcome.Detail != "" {
			fmt.Fprintf(&b, " (%s)", outcome.Detail)
		}
		b.WriteString("\n")
	}
	return os.WriteFile(filepath.Join(dir, "migration.log"), []byte(b.String()), 0644)
}
