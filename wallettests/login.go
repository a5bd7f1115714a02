package wallettests

import (
	"context"
	"fmt"

	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/servicedef"
)

const loginPath = "/api/v1/auth/login"

func loginRequest(creds Credentials) client.RequestSpec {
	return client.RequestSpec{
		Path:   loginPath,
		Method: "POST",
		Body: servicedef.LoginParams{
			Username: creds.Username,
			Password: creds.Password,
		},
	}
}

// Login authenticates and, on success, stores the bearer token in state. It
// succeeds only for a 200 response whose object body has a "token" field; in
// every other case state is left as it was.
func Login(ctx context.Context, exec *client.Executor, state *RunState, creds Credentials) (bool, client.Envelope) {
	env := exec.Execute(ctx, loginRequest(creds), nil)
	return captureToken(state, env), env
}

func captureToken(state *RunState, env client.Envelope) bool {
	if env.Status != 200 {
		return false
	}
	token, ok := env.Body.FieldString("token")
	if !ok {
		return false
	}
	state.setToken(token)
	return true
}

func loginFailure(env client.Envelope) error {
	return fmt.Errorf("login failed: status %d, response: %s", env.Status, env.Body)
}
