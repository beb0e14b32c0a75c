// Package harness provides an evaluation harness for the translation
// pipeline: named suites of English source sentences with expectations
// on the produced target forms.
package harness

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/yaduha/ovp/internal/translator"
)

// Suite is a named collection of translation cases.
type Suite struct {
	Name        string
	Description string
	Cases       []Case
	Setup       func(ctx context.Context, p *translator.Pipeline) error
	Teardown    func(ctx context.Context, p *translator.Pipeline) error
}

// Case is a single source sentence with its expectations.
type Case struct {
	Name       string
	Source     string
	Expect     Expectation
	Skip       bool
	SkipReason string
}

// Expectation defines what we expect from a translation.
type Expectation struct {
	Success        bool
	Target         *string
	TargetContains *string
	Shape          *string
	ErrorContains  *string
	Validate       func(*translator.Result) error
}

// Result captures one case's execution.
type Result struct {
	Suite      string              `json:"suite,omitempty"`
	Case       string              `json:"case"`
	Passed     bool                `json:"passed"`
	Duration   time.Duration       `json:"duration"`
	Error      string              `json:"error,omitempty"`
	Response   *translator.Result  `json:"response,omitempty"`
	Skipped    bool                `json:"skipped,omitempty"`
	SkipReason string              `json:"skip_reason,omitempty"`
}

// SuiteResult aggregates results for a suite run.
type SuiteResult struct {
	RunID    uuid.UUID     `json:"run_id"`
	Name     string        `json:"name"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration"`
	Results  []Result      `json:"results"`
}

// Runner executes suites against a translation pipeline.
type Runner struct {
	pipeline *translator.Pipeline
	verbose  bool
}

// NewRunner creates a runner over the pipeline.
func NewRunner(p *translator.Pipeline) *Runner {
	return &Runner{pipeline: p}
}

// WithVerbose enables verbose output.
func (r *Runner) WithVerbose(v bool) *Runner {
	r.verbose = v
	return r
}

// Run executes a suite and returns results. Case failures are reported
// in the result, not as an error; only setup failure aborts the run.
func (r *Runner) Run(ctx context.Context, suite Suite) (*SuiteResult, error) {
	start := time.Now()
	result := &SuiteResult{RunID: uuid.New(), Name: suite.Name}

	if suite.Setup != nil {
		if err := suite.Setup(ctx, r.pipeline); err != nil {
			return nil, fmt.Errorf("setup failed: %w", err)
		}
	}

	for _, tc := range suite.Cases {
		tcResult := r.runCase(ctx, tc)
		tcResult.Suite = suite.Name
		result.Results = append(result.Results, tcResult)
		switch {
		case tcResult.Skipped:
			result.Skipped++
		case tcResult.Passed:
			result.Passed++
		default:
			result.Failed++
		}
	}

	if suite.Teardown != nil {
		if err := suite.Teardown(ctx, r.pipeline); err != nil {
			fmt.Printf("teardown warning: %v\n", err)
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (r *Runner) runCase(ctx context.Context, tc Case) Result {
	start := time.Now()
	result := Result{Case: tc.Name}

	if tc.Skip {
		result.Skipped = true
		result.SkipReason = tc.SkipReason
		return result
	}

	resp, err := r.pipeline.Translate(ctx, tc.Source)
	result.Duration = time.Since(start)
	result.Response = resp

	if err != nil {
		if tc.Expect.Success {
			result.Error = err.Error()
			return result
		}
		if tc.Expect.ErrorContains != nil && !strings.Contains(err.Error(), *tc.Expect.ErrorContains) {
			result.Error = fmt.Sprintf("expected error containing %q, got %q", *tc.Expect.ErrorContains, err.Error())
			return result
		}
		result.Passed = true
		return result
	}

	if !tc.Expect.Success {
		result.Error = fmt.Sprintf("expected failure, got %q", resp.Target)
		return result
	}

	if tc.Expect.Target != nil && resp.Target != *tc.Expect.Target {
		result.Error = fmt.Sprintf("expected %q, got %q", *tc.Expect.Target, resp.Target)
		return result
	}

	if tc.Expect.TargetContains != nil && !strings.Contains(resp.Target, *tc.Expect.TargetContains) {
		result.Error = fmt.Sprintf("expected target containing %q, got %q", *tc.Expect.TargetContains, resp.Target)
		return result
	}

	if tc.Expect.Shape != nil && resp.Shape != *tc.Expect.Shape {
		result.Error = fmt.Sprintf("expected shape %q, got %q", *tc.Expect.Shape, resp.Shape)
		return result
	}

	if tc.Expect.Validate != nil {
		if err := tc.Expect.Validate(resp); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	result.Passed = true
	return result
}

// Report writes a tabular summary of a suite run.
func (sr *SuiteResult) Report(w io.Writer) {
	fmt.Fprintf(w, "suite %s (run %s)\n", sr.Name, sr.RunID)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tSTATUS\tTARGET\tDETAIL")
	for _, res := range sr.Results {
		status := "FAIL"
		switch {
		case res.Skipped:
			status = "SKIP"
		case res.Passed:
			status = "PASS"
		}
		target := ""
		if res.Response != nil {
			target = res.Response.Target
		}
		detail := res.Error
		if res.Skipped {
			detail = res.SkipReason
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", res.Case, status, target, detail)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d passed, %d failed, %d skipped in %s\n", sr.Passed, sr.Failed, sr.Skipped, sr.Duration.Round(time.Millisecond))
}
