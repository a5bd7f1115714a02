package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const sectionRule = "============================================================"

var (
	passLabel  = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	skipLabel  = color.New(color.FgYellow).SprintFunc()
	errorLabel = color.New(color.FgRed).SprintFunc()
	header     = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// ConsoleTestLogger prints one line per step, plus a detail line, and a
// header whenever a new suite starts.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	if len(id.Path) != 1 {
		return
	}
	fmt.Fprintf(c.Out, "\n%s\n%s %s\n%s\n", sectionRule, header("TESTING:"), id.Name(), sectionRule)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "%s %s\n", errorLabel("ERROR:"), line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, outcome TestOutcome, debugOutput CapturedOutput) {
	label := passLabel("PASS")
	if !outcome.Passed {
		label = failLabel("FAIL")
	} else if outcome.Category == Liveness {
		label = passLabel("PASS") + " (liveness)"
	}
	fmt.Fprintf(c.Out, "%s: %s\n", label, id.Name())
	if outcome.Details != "" {
		fmt.Fprintf(c.Out, "   %s\n", outcome.Details)
	}
	if len(debugOutput) > 0 &&
		((!outcome.Passed && c.DebugOutputOnFailure) || (outcome.Passed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Out, "%s: %s\n", skipLabel("SKIP"), id.Name())
	} else {
		fmt.Fprintf(c.Out, "%s: %s (%s)\n", skipLabel("SKIP"), id.Name(), reason)
	}
}

// PrintResults writes the final summary block.
func PrintResults(out io.Writer, results Results) {
	s := results.Summary()

	fmt.Fprintf(out, "\n%s\n%s\n%s\n", sectionRule, header("TEST SUMMARY"), sectionRule)

	rate := "n/a"
	if r, ok := s.PassRate(); ok {
		rate = fmt.Sprintf("%.1f%%", r)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"Total Tests", fmt.Sprint(s.Total)})
	table.Append([]string{"Passed", fmt.Sprint(s.Passed)})
	table.Append([]string{"Failed", fmt.Sprint(s.Failed)})
	table.Append([]string{"Skipped", fmt.Sprint(s.Skipped)})
	table.Append([]string{"Liveness-only passes", fmt.Sprint(s.LivenessOnly)})
	table.Append([]string{"Pass Rate", rate})
	table.Render()

	if failures := results.Failures(); len(failures) > 0 {
		fmt.Fprintln(out, "Failed steps:")
		for _, f := range failures {
			fmt.Fprintf(out, "  %s %s\n", failLabel("-"), f.Name)
		}
	}
	if results.Interrupted {
		fmt.Fprintln(out, skipLabel("Testing interrupted by user"))
	}
	if results.Fault != nil {
		fmt.Fprintln(out, errorLabel("Run aborted by an unexpected error"))
	}
	fmt.Fprintln(out, sectionRule)
}
