package framework

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrInterrupted is returned by Run when the run's context was cancelled.
var ErrInterrupted = errors.New("test run interrupted")

type interruptSignal struct{}

type environment struct {
	ctx         context.Context
	results     *Results
	testLogger  TestLogger
	filter      Filter
	debugLogger Logger
}

// Context is the scope of a suite. It is used similarly to *testing.T: Run
// starts a nested group, Step runs a single check and records its outcome.
type Context struct {
	env *environment
	id  TestID
}

// StepContext is the scope of one step. Its debug output is captured and
// handed to the TestLogger when the step finishes.
type StepContext struct {
	env         *environment
	id          TestID
	debugLogger *CapturingLogger
	skipped     bool
	skipReason  string
}

// Run executes action with a root Context and records everything into results.
//
// A panic that escapes a step is treated as a fault in the harness itself:
// the remaining suites are abandoned, results.Fault is set and the error is
// returned. Outcomes recorded so far are kept. Cancelling ctx stops the run
// before the next step, sets results.Interrupted and returns ErrInterrupted.
func Run(
	ctx context.Context,
	filter Filter,
	testLogger TestLogger,
	debugLogger Logger,
	results *Results,
	action func(*Context),
) (err error) {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	env := &environment{
		ctx:         ctx,
		results:     results,
		testLogger:  testLogger,
		filter:      filter,
		debugLogger: debugLogger,
	}
	c := &Context{env: env}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(interruptSignal); ok {
			results.Interrupted = true
			err = ErrInterrupted
			return
		}
		err = fmt.Errorf("unexpected panic in test run: %+v\n%s", r, string(debug.Stack()))
		results.Fault = err
		testLogger.TestError(c.id, err)
	}()

	action(c)
	if ctx.Err() != nil {
		results.Interrupted = true
		return ErrInterrupted
	}
	return nil
}

func (c *Context) ID() TestID {
	return c.id
}

// Context returns the context.Context of the whole run.
func (c *Context) Context() context.Context {
	return c.env.ctx
}

// Run starts a named group of steps.
func (c *Context) Run(name string, action func(*Context)) {
	c.checkInterrupted()
	id := c.id.Child(name)
	c.env.debugLogger.Printf("Starting %s", id)
	c.env.testLogger.TestStarted(id)
	action(&Context{env: c.env, id: id})
}

// Step runs a single step and records exactly one thing for it: the outcome
// returned by action, or a skip if the step was filtered out or action called
// SkipWithReason.
//
// If the run is cancelled while action is blocked, nothing is recorded for
// the step and the run stops.
func (c *Context) Step(name string, action func(*StepContext) TestOutcome) {
	c.checkInterrupted()
	id := c.id.Child(name)
	c.env.testLogger.TestStarted(id)

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.results.RecordSkipped()
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}

	s := &StepContext{
		env:         c.env,
		id:          id,
		debugLogger: &CapturingLogger{},
	}
	outcome, ok := s.run(action)
	if !ok {
		c.env.results.RecordSkipped()
		c.env.testLogger.TestSkipped(id, s.skipReason)
		return
	}
	c.checkInterrupted()

	if outcome.Name == "" {
		outcome.Name = id.String()
	}
	c.env.results.Record(outcome)
	c.env.testLogger.TestFinished(id, outcome, s.debugLogger.Output())
}

func (c *Context) checkInterrupted() {
	if c.env.ctx.Err() != nil {
		panic(interruptSignal{})
	}
}

func (s *StepContext) run(action func(*StepContext) TestOutcome) (outcome TestOutcome, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if r == s && s.skipped {
				ok = false
				return
			}
			panic(r)
		}
	}()
	return action(s), true
}

func (s *StepContext) ID() TestID {
	return s.id
}

// Context returns the context.Context of the whole run; blocking calls made
// by the step should use it.
func (s *StepContext) Context() context.Context {
	return s.env.ctx
}

// SkipWithReason stops the step immediately and records it as skipped.
func (s *StepContext) SkipWithReason(reason string) {
	s.skipped = true
	s.skipReason = reason
	panic(s)
}

func (s *StepContext) Debug(message string, args ...interface{}) {
	s.debugLogger.Printf(message, args...)
}

func (s *StepContext) DebugLogger() Logger {
	return s.debugLogger
}
