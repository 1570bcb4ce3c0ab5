/*
 * Copyright (c) DataOps Cloud, Inc.
 */

// Package migrate implements the metadata migration pipeline: load a
// source-environment export, rewrite environment specific strings,
// match entities against the target environment, diff the metadata
// facets and emit change proposals. One pass per invocation, no
// persisted state between runs.
package migrate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
)

// Options configure one migration run
type Options struct {
	InputPath     string
	TargetEnv     string
	MutationsPath string
	OutputDir     string
	DryRun        bool
	Verbose       bool
}

// Pipeline runs the linear stage sequence loader, mutation applier,
// matcher, differ, emitter, report writer. target may be nil in dry
// run mode, in which case the run validates structure only.
type Pipeline struct {
	options   Options
	target    TargetSource
	submitter Submitter
}

// NewPipeline assembles a pipeline for one run
func NewPipeline(options Options, target TargetSource, submitter Submitter) *Pipeline {
	return &Pipeline{
		options:   options,
		target:    target,
		submitter: submitter,
	}
}

// Run executes one pass. Only an InputError aborts: validation,
// match and submission failures degrade to per entity skips with
// accumulated warnings in the report.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := NewReport(p.options.TargetEnv, p.options.DryRun)

	entities, skipped, err := LoadEntities(p.options.InputPath)
	if err != nil {
		return report, err
	}
	report.Loaded = len(entities)
	report.Skipped = skipped
	logrus.Debugf("Loaded %d entities (%d entries skipped) from %s\n",
		report.Loaded, report.Skipped, p.options.InputPath)

	mutations := LoadMutations(p.options.MutationsPath)

	// duplicate URNs are processed, not deduplicated, and surfaced in
	// the report
	seen := make(map[string]int, len(entities))
	for _, entity := range entities {
		seen[entity.URN]++
		if seen[entity.URN] > 1 {
			report.Duplicates++
			report.AddWarning(fmt.Sprintf(
				"duplicate URN %s in export, processed again", entity.URN))
		}
	}

	for _, entity := range entities {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		p.processEntity(ctx, entity, mutations, report)
	}

	if p.options.OutputDir != "" {
		if err := report.WriteLog(p.options.OutputDir); err != nil {
			logrus.Warnf("Could not write run log: %s\n", err.Error())
		}
	}
	return report, nil
}

func (p *Pipeline) processEntity(
	ctx context.Context,
	entity *Entity,
	mutations *Mutations,
	report *Report,
) {
	if err := validateEntity(entity); err != nil {
		report.Invalid++
		report.AddWarning(err.Error())
		report.AddOutcome(entity.URN, StatusSkipped, err.Error())
		logrus.Warnf("%s\n", err.Error())
		return
	}

	report.Mutated += mutations.ApplyToEntity(entity)

	if p.target == nil {
		// structure-only dry run, nothing to match against
		report.AddOutcome(entity.URN, StatusValidated, "")
		if p.options.Verbose {
			logrus.Infof("Validated %s\n", entity.URN)
		}
		return
	}

	target, ok, err := p.target.Lookup(ctx, entity)
	if err != nil {
		report.Unmatched++
		report.AddWarning(fmt.Sprintf("target lookup for %s: %s", entity.URN, err.Error()))
		report.AddOutcome(entity.URN, StatusUnmatched, err.Error())
		logrus.Warnf("Target lookup failed for %s: %s\n", entity.URN, err.Error())
		return
	}
	if !ok {
		matchErr := MatchError{URN: entity.URN}
		report.Unmatched++
		report.AddWarning(matchErr.Error())
		report.AddOutcome(entity.URN, StatusUnmatched, "")
		logrus.Warnf("%s\n", matchErr.Error())
		return
	}
	report.Matched++

	changes := DiffEntities(entity, target)
	if len(changes) == 0 {
		report.AddOutcome(entity.URN, StatusInSync, "")
		if p.options.Verbose {
			logrus.Infof("No changes for %s\n", entity.URN)
		}
		return
	}

	proposals := BuildProposals(target, changes)
	report.Generated += len(proposals)

	failed := 0
	for _, proposal := range proposals {
		if err := p.submitter.Submit(ctx, proposal); err != nil {
			failed++
			report.Failed++
			report.AddWarning(err.Error())
			logrus.Warnf("%s\n", err.Error())
			continue
		}
		report.Submitted++
	}
	detail := fmt.Sprintf("%d proposals", len(proposals))
	if failed > 0 {
		report.AddOutcome(entity.URN, StatusFailed, fmt.Sprintf(
			"%d of %d proposals failed", failed, len(proposals)))
		return
	}
	report.AddOutcome(entity.URN, StatusMigrated, detail)
	if p.options.Verbose {
		logrus.Infof("Migrated %s (%s)\n", entity.URN, detail)
	}
}

// validateEntity enforces the minimum shape required to migrate
func validateEntity(entity *Entity) error {
	if entity.URN == "" {
		return &ValidationError{URN: entity.URN, Reason: "missing urn"}
	}
	if !util.IsValidURN(entity.URN) {
		return &ValidationError{URN: entity.URN, Reason: "urn does not match urn:li:<type>:<id>"}
	}
	if entity.Type == "" {
		return &ValidationError{URN: entity.URN, Reason: "missing entity type"}
	}
	return nil
}
