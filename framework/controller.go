package framework

import (
	"context"
	"fmt"
)

// Phase is the state of a Controller.
type Phase int

const (
	NotStarted Phase = iota
	LoggingIn
	RunningSuites
	Summarizing
	Done
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case LoggingIn:
		return "logging in"
	case RunningSuites:
		return "running suites"
	case Summarizing:
		return "summarizing"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Suite is a named, ordered group of steps for one resource domain.
type Suite struct {
	Name string
	Run  func(*Context)
}

// Controller runs suites in their declared order and turns the results into
// an exit code.
type Controller struct {
	Suites []Suite

	// PreRun, if set, must succeed before any suite runs. If it fails the
	// controller goes straight to Done with exit code 1 and prints no summary.
	PreRun func(ctx context.Context) error

	Filter       Filter
	TestLogger   TestLogger
	DebugLogger  Logger
	PrintSummary func(Results)

	phase Phase
}

// Phase returns the phase the controller is currently in.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Run executes the whole pipeline and returns the results with the exit code.
func (c *Controller) Run(ctx context.Context) (Results, int) {
	var results Results
	logger := c.DebugLogger
	if logger == nil {
		logger = NullLogger()
	}
	testLogger := c.TestLogger
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}

	c.enter(NotStarted, logger)

	if c.PreRun != nil {
		c.enter(LoggingIn, logger)
		if err := c.PreRun(ctx); err != nil {
			testLogger.TestError(TestID{Path: []string{"login"}}, fmt.Errorf("cannot proceed without authentication: %w", err))
			c.enter(Done, logger)
			return results, 1
		}
	}

	c.enter(RunningSuites, logger)
	err := Run(ctx, c.Filter, testLogger, logger, &results, func(t *Context) {
		for _, s := range c.Suites {
			t.Run(s.Name, s.Run)
		}
	})
	if err != nil {
		logger.Printf("Run stopped early: %s", err)
	}

	c.enter(Summarizing, logger)
	if c.PrintSummary != nil {
		c.PrintSummary(results)
	}
	c.enter(Done, logger)
	return results, ExitCode(results)
}

func (c *Controller) enter(p Phase, logger Logger) {
	c.phase = p
	logger.Printf("Controller: %s", p)
}
