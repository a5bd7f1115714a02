package wallettests

import (
	"fmt"

	"github.com/web3-wallet/wallet-endpoint-tests/check"
	"github.com/web3-wallet/wallet-endpoint-tests/client"
)

func DoBlockchainTests(t *T) {
	t.Step(Step{
		Name: "GET /api/v1/blockNumber - Get current block number",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{Path: "/api/v1/blockNumber", RequiresAuth: true, Timeout: quickTimeout}
		},
		Expect: check.ExpectScalar(200),
		Details: func(e client.Envelope) string {
			return fmt.Sprintf("Status: %d, Block Number: %s", e.Status, check.Truncate(e.Body.String(), check.DefaultPreviewLimit))
		},
	})
}
