package wallettests

import (
	"github.com/web3-wallet/wallet-endpoint-tests/check"
	"github.com/web3-wallet/wallet-endpoint-tests/client"
)

func DoHealthTests(t *T) {
	t.Step(Step{
		Name: "GET /api/v1/ping - Health check",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{Path: "/api/v1/ping"}
		},
		Expect: check.ExpectFieldValue(200, "status", "ok"),
	})

	t.Step(Step{
		Name: "GET /actuator/health - Spring actuator health",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{Path: "/actuator/health"}
		},
		Expect: check.ExpectFieldValue(200, "status", "UP"),
	})
}
