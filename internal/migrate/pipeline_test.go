/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const piiExport = `[{
	"urn": "urn:li:dataset:(platform,foo,PROD)",
	"type": "dataset",
	"tags": {"tags": [{"tag": {"urn": "urn:li:tag:pii"}}]}
}]`

const bareTarget = `[{
	"urn": "urn:li:dataset:(platform,foo,PROD)",
	"type": "dataset"
}]`

func runPipeline(
	t *testing.T,
	input, target string,
	options Options,
) (*Report, string, error) {
	t.Helper()
	dir := t.TempDir()
	options.InputPath = writeFixture(t, "input.json", input)
	if options.OutputDir == "" {
		options.OutputDir = filepath.Join(dir, "out")
	}

	var targetSource TargetSource
	if target != "" {
		source, err := NewFileTargetSource(writeFixture(t, "target.json", target))
		assert.NilError(t, err)
		targetSource = source
	}

	pipeline := NewPipeline(options, targetSource,
		&DirEmitter{Dir: options.OutputDir})
	report, err := pipeline.Run(context.Background())
	return report, options.OutputDir, err
}

func TestPipelineEmitsSingleTagAddition(t *testing.T) {
	report, outputDir, err := runPipeline(t, piiExport, bareTarget,
		Options{TargetEnv: "prod", DryRun: true})
	assert.NilError(t, err)

	assert.Check(t, is.Equal(1, report.Loaded))
	assert.Check(t, is.Equal(1, report.Matched))
	assert.Check(t, is.Equal(1, report.Generated))
	assert.Check(t, is.Equal(1, report.Submitted))

	entries, err := os.ReadDir(outputDir)
	assert.NilError(t, err)
	proposals := make([]string, 0)
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".json" {
			proposals = append(proposals, entry.Name())
		}
	}
	assert.Assert(t, is.Len(proposals, 1))

	body, err := os.ReadFile(filepath.Join(outputDir, proposals[0]))
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(body), `"urn:li:tag:pii"`))
	assert.Check(t, is.Contains(string(body), `"operation": "ADD"`))
	assert.Check(t, is.Contains(string(body), `"aspectName": "globalTags"`))
}

func TestPipelineDryRunIsIdempotent(t *testing.T) {
	readProposals := func(t *testing.T, dir string) map[string]string {
		entries, err := os.ReadDir(dir)
		assert.NilError(t, err)
		proposals := make(map[string]string)
		for _, entry := range entries {
			if filepath.Ext(entry.Name()) != ".json" {
				continue
			}
			body, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			assert.NilError(t, err)
			proposals[entry.Name()] = string(body)
		}
		return proposals
	}

	_, firstDir, err := runPipeline(t, piiExport, bareTarget,
		Options{TargetEnv: "prod", DryRun: true})
	assert.NilError(t, err)
	_, secondDir, err := runPipeline(t, piiExport, bareTarget,
		Options{TargetEnv: "prod", DryRun: true})
	assert.NilError(t, err)

	assert.Check(t, is.DeepEqual(
		readProposals(t, firstDir), readProposals(t, secondDir)))
}

func TestPipelineInvalidURNIsReportedNotFatal(t *testing.T) {
	input := `[
		{"urn": "not-a-urn", "type": "dataset"},
		{"urn": "urn:li:tag:pii", "type": "tag"}
	]`
	target := `[{"urn": "urn:li:tag:pii", "type": "tag"}]`

	report, _, err := runPipeline(t, input, target,
		Options{TargetEnv: "prod", DryRun: true})
	assert.NilError(t, err)

	assert.Check(t, is.Equal(1, report.Invalid))
	assert.Check(t, is.Equal(1, report.Matched))
	assert.Assert(t, is.Len(report.Outcomes, 2))
	assert.Check(t, is.Equal(StatusSkipped, report.Outcomes[0].Status))
}

func TestPipelineDuplicateURNsProcessedTwice(t *testing.T) {
	input := `[
		{"urn": "urn:li:tag:pii", "type": "tag"},
		{"urn": "urn:li:tag:pii", "type": "tag"}
	]`
	target := `[{"urn": "urn:li:tag:pii", "type": "tag"}]`

	report, _, err := runPipeline(t, input, target,
		Options{TargetEnv: "prod", DryRun: true})
	assert.NilError(t, err)

	assert.Check(t, is.Equal(1, report.Duplicates))
	assert.Check(t, is.Equal(2, report.Matched))
	assert.Check(t, is.Len(report.Outcomes, 2))
}

func TestPipelineUnmatchedEntityIsSkippedWithWarning(t *testing.T) {
	input := `[{"urn": "urn:li:tag:orphan", "type": "tag"}]`
	target := `[{"urn": "urn:li:tag:pii", "type": "tag"}]`

	report, _, err := runPipeline(t, input, target,
		Options{TargetEnv: "prod", DryRun: true})
	assert.NilError(t, err)

	assert.Check(t, is.Equal(1, report.Unmatched))
	assert.Check(t, is.Equal(0, report.Generated))
	assert.Assert(t, is.Len(report.Warnings, 1))
	assert.Check(t, is.Contains(report.Warnings[0], "urn:li:tag:orphan"))
}

func TestPipelineStructureOnlyWithoutTarget(t *testing.T) {
	report, _, err := runPipeline(t, piiExport, "",
		Options{TargetEnv: "prod", DryRun: true})
	assert.NilError(t, err)

	assert.Check(t, is.Equal(0, report.Generated))
	assert.Assert(t, is.Len(report.Outcomes, 1))
	assert.Check(t, is.Equal(StatusValidated, report.Outcomes[0].Status))
}

func TestPipelineMissingMutationsFileProceeds(t *testing.T) {
	report, _, err := runPipeline(t, piiExport, bareTarget, Options{
		TargetEnv:     "prod",
		DryRun:        true,
		MutationsPath: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(0, report.Mutated))
	assert.Check(t, is.Equal(1, report.Generated))
}

func TestPipelineMutationsRewriteBeforeMatching(t *testing.T) {
	input := `[{
		"urn": "urn:li:dataset:(platform,foo,DEV)",
		"type": "dataset",
		"tags": {"tags": [{"tag": {"urn": "urn:li:tag:pii"}}]}
	}]`
	mutationsPath := writeFixture(t, "mutations.json",
		`[{"match": ",DEV)", "replace": ",PROD)"}]`)

	report, _, err := runPipeline(t, input, bareTarget, Options{
		TargetEnv:     "prod",
		DryRun:        true,
		MutationsPath: mutationsPath,
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(1, report.Mutated))
	assert.Check(t, is.Equal(1, report.Matched))
	assert.Check(t, is.Equal(1, report.Generated))
}

type failingSubmitter struct {
	calls int
}

func (f *failingSubmitter) Submit(ctx context.Context, proposal ChangeProposal) error {
	f.calls++
	return &SubmissionError{
		URN:    proposal.EntityURN,
		Aspect: proposal.AspectName,
		Err:    fmt.Errorf("boom"),
	}
}

func TestPipelineSubmissionFailureContinuesRun(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.json")
	assert.NilError(t, os.WriteFile(inputPath, []byte(piiExport), 0644))
	targetPath := filepath.Join(dir, "target.json")
	assert.NilError(t, os.WriteFile(targetPath, []byte(bareTarget), 0644))

	targetSource, err := NewFileTargetSource(targetPath)
	assert.NilError(t, err)

	submitter := failingSubmitter{}
	pipeline := NewPipeline(Options{
		InputPath: inputPath,
		TargetEnv: "prod",
	}, targetSource, &submitter)

	report, err := pipeline.Run(context.Background())
	assert.NilError(t, err)
	assert.Check(t, is.Equal(1, submitter.calls))
	assert.Check(t, is.Equal(1, report.Failed))
	assert.Check(t, is.Equal(0, report.Submitted))
	assert.Assert(t, is.Len(report.Outcomes, 1))
	assert.Check(t, is.Equal(StatusFailed, report.Outcomes[0].Status))
}

func TestPipelineInputErrorAborts(t *testing.T) {
	pipeline := NewPipeline(Options{
		InputPath: filepath.Join(t.TempDir(), "missing.json"),
		TargetEnv: "prod",
		DryRun:    true,
	}, nil, &DirEmitter{Dir: t.TempDir()})

	_, err := pipeline.Run(context.Background())
	inputErr := &InputError{}
	assert.Check(t, errors.As(err, &inputErr))
}

func TestReportSummaryAndLog(t *testing.T) {
	report, outputDir, err := runPipeline(t, piiExport, bareTarget,
		Options{TargetEnv: "staging", DryRun: true})
	assert.NilError(t, err)

	summary := report.Summary()
	assert.Check(t, is.Contains(summary, "MIGRATION PROCESSING SUMMARY"))
	assert.Check(t, is.Contains(summary, "Target environment:   staging"))
	assert.Check(t, is.Contains(summary, "Mode:                 dry-run"))
	assert.Check(t, is.Contains(summary, "Proposals generated:  1"))

	body, err := os.ReadFile(filepath.Join(outputDir, "migration.log"))
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(body), "migrated"))
	assert.Check(t, is.Contains(string(body), "urn:li:dataset:(platform,foo,PROD)"))
}
