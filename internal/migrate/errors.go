/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import "fmt"

// InputError aborts the run: the export file is missing, not valid
// JSON, or contains no usable entities.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("input file %s is unusable", e.Path)
	}
	return fmt.Sprintf("input file %s: %s", e.Path, e.Err.Error())
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ValidationError marks an entity that cannot be processed. The run
// continues, the entity is skipped.
type ValidationError struct {
	URN    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entity %q: %s", e.URN, e.Reason)
}

// MatchError marks a source entity without a target counterpart. The
// run continues, the entity is skipped.
type MatchError struct {
	URN string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("no target entity found for %s", e.URN)
}

// SubmissionError wraps a change proposal the target API rejected.
// The run continues, earlier submissions are not rolled back.
type SubmissionError struct {
	URN    string
	Aspect string
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submitting %s for %s: %s", e.Aspect, e.URN, e.Err.Error())
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
