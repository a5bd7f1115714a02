package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerRunsSuitesInOrder(t *testing.T) {
	var order []string
	suite := func(name string, passed bool) Suite {
		return Suite{Name: name, Run: func(c *Context) {
			order = append(order, name)
			c.Step("step", func(*StepContext) TestOutcome { return TestOutcome{Passed: passed} })
		}}
	}
	summaries := 0
	c := &Controller{
		Suites:       []Suite{suite("auth", true), suite("health", true), suite("wallet", false)},
		PrintSummary: func(Results) { summaries++ },
	}
	assert.Equal(t, NotStarted, c.Phase())

	results, code := c.Run(context.Background())
	assert.Equal(t, []string{"auth", "health", "wallet"}, order)
	assert.Equal(t, 2, results.Passed)
	assert.Equal(t, 1, results.Failed)
	assert.Equal(t, 1, code)
	assert.Equal(t, 1, summaries)
	assert.Equal(t, Done, c.Phase())
}

func TestControllerExitsZeroWhenEverythingPasses(t *testing.T) {
	c := &Controller{Suites: []Suite{{Name: "health", Run: func(c *Context) {
		c.Step("ping", func(*StepContext) TestOutcome { return TestOutcome{Passed: true} })
	}}}}
	_, code := c.Run(context.Background())
	assert.Equal(t, 0, code)
}

func TestControllerStopsWhenLoginFails(t *testing.T) {
	suiteRan := false
	summaries := 0
	logger := &recordingTestLogger{}
	var phaseDuringLogin Phase
	c := &Controller{
		Suites:       []Suite{{Name: "auth", Run: func(*Context) { suiteRan = true }}},
		TestLogger:   logger,
		PrintSummary: func(Results) { summaries++ },
	}
	c.PreRun = func(context.Context) error {
		phaseDuringLogin = c.Phase()
		return errors.New("login failed: status 401")
	}

	results, code := c.Run(context.Background())
	assert.Equal(t, LoggingIn, phaseDuringLogin)
	assert.Equal(t, 1, code)
	assert.False(t, suiteRan)
	assert.Equal(t, 0, summaries)
	assert.Empty(t, results.Outcomes)
	assert.Equal(t, Done, c.Phase())

	errs := logger.ofKind("error")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "cannot proceed without authentication: login failed: status 401", errs[0].detail)
	}
}

func TestControllerSummarizesAfterFault(t *testing.T) {
	summaries := 0
	c := &Controller{
		Suites: []Suite{
			{Name: "auth", Run: func(c *Context) {
				c.Step("ok", func(*StepContext) TestOutcome { return TestOutcome{Passed: true} })
			}},
			{Name: "health", Run: func(*Context) { panic("unexpected") }},
		},
		PrintSummary: func(Results) { summaries++ },
	}
	results, code := c.Run(context.Background())
	assert.Equal(t, 1, code)
	assert.Equal(t, 1, summaries)
	assert.Error(t, results.Fault)
	assert.Equal(t, 1, results.Passed)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "running suites", RunningSuites.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}
