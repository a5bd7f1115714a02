package wallettests

import (
	"github.com/web3-wallet/wallet-endpoint-tests/check"
	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/servicedef"
)

func DoTransactionTests(t *T) {
	t.Step(Step{
		Name: "POST /api/v1/transaction/estimate-gas - Estimate transaction gas",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:   "/api/v1/transaction/estimate-gas",
				Method: "POST",
				Body: servicedef.GasEstimateParams{
					From:  TestAddress,
					To:    RecipientAddress,
					Value: "0.01",
				},
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect:  check.TolerateStatus(200, 400, 500),
		Details: check.StatusAndPreview(150),
	})

	t.Step(Step{
		Name: "GET /api/v1/transaction/history/{address} - Get transaction history",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:         "/api/v1/transaction/history/" + TestAddress,
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect:  check.TolerateStatus(200, 400, 500),
		Details: check.StatusAndPreview(150),
	})

	// Signed with a key that has no funds, so the backend is expected to refuse.
	t.Step(Step{
		Name: "POST /api/v1/transaction/send - Send ETH transaction",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:   "/api/v1/transaction/send",
				Method: "POST",
				Body: servicedef.SendTransactionParams{
					From:       TestAddress,
					To:         RecipientAddress,
					Value:      "0.001",
					PrivateKey: DummyPrivateKey,
					GasPrice:   "20",
				},
				RequiresAuth: true,
				Timeout:      slowTimeout,
			}
		},
		Expect:  check.TolerateStatus(200, 400, 500),
		Details: check.StatusAndPreview(150),
	})

	t.Step(Step{
		Name: "GET /api/v1/transaction/{hash}/status - Get transaction status",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:         "/api/v1/transaction/" + TestTxHash + "/status",
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect:  check.TolerateStatus(200, 404, 500),
		Details: check.StatusAndPreview(150),
	})
}
