package framework

import (
	"fmt"
	"strings"
)

// Category says what a passing outcome actually proves.
type Category int

const (
	// Correctness outcomes verified the shape of the business response.
	Correctness Category = iota
	// Liveness outcomes only verified that the endpoint exists and answered
	// with one of several tolerated status codes.
	Liveness
)

func (c Category) String() string {
	if c == Liveness {
		return "liveness"
	}
	return "correctness"
}

// TestOutcome is the recorded result of one step. It is a value type: once
// handed to Results.Record it is never changed.
type TestOutcome struct {
	Name     string
	Passed   bool
	Details  string
	Category Category
}

// Results accumulates outcomes in the order they were recorded. Counters only
// ever go up, and there is no deduplication.
//
// Results is owned by the single goroutine that runs the suites; it has no
// locking of its own.
type Results struct {
	Outcomes []TestOutcome
	Passed   int
	Failed   int
	Skipped  int

	// Fault is set when the run was aborted by an unexpected error inside
	// the harness itself.
	Fault error
	// Interrupted is set when the run was cancelled from outside.
	Interrupted bool
}

// Record appends an outcome and counts it as passed or failed.
func (r *Results) Record(o TestOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// RecordSkipped counts a step that did not run. Skips are not part of the
// outcome list.
func (r *Results) RecordSkipped() {
	r.Skipped++
}

// Failures returns the failed outcomes in recording order.
func (r Results) Failures() []TestOutcome {
	var ret []TestOutcome
	for _, o := range r.Outcomes {
		if !o.Passed {
			ret = append(ret, o)
		}
	}
	return ret
}

// OK is true when nothing failed and the run was neither aborted nor interrupted.
func (r Results) OK() bool {
	return r.Failed == 0 && r.Fault == nil && !r.Interrupted
}

// Summary computes the totals for the final report.
func (r Results) Summary() Summary {
	s := Summary{
		Total:   r.Passed + r.Failed,
		Passed:  r.Passed,
		Failed:  r.Failed,
		Skipped: r.Skipped,
	}
	for _, o := range r.Outcomes {
		if o.Passed && o.Category == Liveness {
			s.LivenessOnly++
		}
	}
	return s
}

// Summary holds the aggregate counts of a run. Skipped steps are not part of
// Total.
type Summary struct {
	Total        int
	Passed       int
	Failed       int
	Skipped      int
	LivenessOnly int
}

// PassRate returns the percentage of passed outcomes. The second value is
// false when nothing was recorded.
func (s Summary) PassRate() (float64, bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(s.Passed) / float64(s.Total) * 100, true
}

// ExitCode maps a finished run to the process exit code.
func ExitCode(r Results) int {
	if r.OK() {
		return 0
	}
	return 1
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name is the last path element.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Child returns a new ID one level below this one.
func (t TestID) Child(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
