package wallettests

import (
	"context"

	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/framework"
)

// Harness owns everything one run shares between suites.
type Harness struct {
	executor    *client.Executor
	state       *RunState
	credentials Credentials
}

// NewHarness creates a harness with an empty RunState.
func NewHarness(executor *client.Executor, credentials Credentials) *Harness {
	return &Harness{
		executor:    executor,
		state:       NewRunState(),
		credentials: credentials,
	}
}

// State returns the run's state.
func (h *Harness) State() *RunState {
	return h.state
}

// Suites returns the suites in the order they must run. Later suites depend
// on the token obtained by the first one.
func (h *Harness) Suites() []framework.Suite {
	return []framework.Suite{
		h.suite("AuthController", DoAuthTests),
		h.suite("HealthController", DoHealthTests),
		h.suite("BlockchainController", DoBlockchainTests),
		h.suite("WalletController", DoWalletTests),
		h.suite("TokenController", DoTokenTests),
		h.suite("TransactionController", DoTransactionTests),
	}
}

func (h *Harness) suite(name string, action func(*T)) framework.Suite {
	return framework.Suite{
		Name: name,
		Run: func(c *framework.Context) {
			action(&T{context: c, harness: h})
		},
	}
}

// PreRunLogin logs in before any suite runs, for callers that want the whole
// run to stop when authentication is impossible.
func (h *Harness) PreRunLogin(ctx context.Context) error {
	ok, env := Login(ctx, h.executor, h.state, h.credentials)
	if !ok {
		return loginFailure(env)
	}
	return nil
}
