package wallettests

import (
	"fmt"

	"github.com/web3-wallet/wallet-endpoint-tests/check"
	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/servicedef"
)

func DoAuthTests(t *T) {
	creds := t.harness.credentials

	// 400 means the user is already registered from an earlier run.
	t.Step(Step{
		Name: "POST /api/v1/auth/register - New user registration",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:   "/api/v1/auth/register",
				Method: "POST",
				Body: servicedef.RegisterParams{
					Username: creds.Username,
					Email:    creds.Email,
					Password: creds.Password,
				},
			}
		},
		Expect:  check.TolerateStatus(200, 201, 400),
		Details: check.StatusAndPreview(0),
	})

	t.Step(Step{
		Name: "POST /api/v1/auth/login - User login",
		Request: func(*RunState) client.RequestSpec {
			return loginRequest(creds)
		},
		Expect:  check.ExpectField(200, "token"),
		Details: tokenReceived,
		Capture: func(s *RunState, e client.Envelope) {
			captureToken(s, e)
		},
	})
}

func tokenReceived(e client.Envelope) string {
	token, ok := e.Body.FieldString("token")
	if e.Status != 200 || !ok {
		return check.StatusAndPreview(0)(e)
	}
	if r := []rune(token); len(r) > 20 {
		token = string(r[:20])
	}
	return fmt.Sprintf("Status: %d, Token received: %s...", e.Status, token)
}
