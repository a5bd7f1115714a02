package wallettests

import (
	"fmt"
	"time"

	"github.com/web3-wallet/wallet-endpoint-tests/check"
	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/framework"
)

const (
	quickTimeout = time.Second * 15
	slowTimeout  = time.Second * 30
)

// Step declares one request and how to judge its response.
type Step struct {
	Name string

	// Requires names fixtures that must exist before the step can run. If any
	// is missing the step is skipped and no request is made.
	Requires []string

	Request func(*RunState) client.RequestSpec
	Expect  check.Policy
	// Details renders the detail line. Nil means status plus body preview.
	Details check.Renderer
	// Capture runs after evaluation, whatever the outcome, so it must do its
	// own checking before storing anything.
	Capture func(*RunState, client.Envelope)
}

// T is the scope of one suite. It is similar to testing.T, but each Step is
// an HTTP exchange with the backend and its outcome goes into the run's
// results instead of failing a Go test.
type T struct {
	context *framework.Context
	harness *Harness
}

// Run starts a nested group.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, harness: t.harness})
	})
}

// State returns the state shared by all suites of the run.
func (t *T) State() *RunState {
	return t.harness.state
}

// Step runs one declared step and records its outcome.
func (t *T) Step(step Step) {
	t.context.Step(step.Name, func(sc *framework.StepContext) framework.TestOutcome {
		state := t.harness.state
		for _, name := range step.Requires {
			if _, ok := state.Fixture(name); !ok {
				sc.SkipWithReason(fmt.Sprintf("no %s available", name))
			}
		}

		spec := step.Request(state)
		sc.Debug("Reproduce with: %s", spec.CurlCommand(t.harness.executor.BaseURL()))
		env := t.harness.executor.WithLogger(sc.DebugLogger()).Execute(sc.Context(), spec, state)

		outcome := check.Evaluate(step.Name, env, step.Expect, step.Details)
		if step.Capture != nil {
			step.Capture(state, env)
		}
		return outcome
	})
}
