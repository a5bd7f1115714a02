package wallettests

import (
	"fmt"

	"github.com/web3-wallet/wallet-endpoint-tests/check"
	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoWalletTests(t *T) {
	t.Step(Step{
		Name: "GET /api/v1/wallets - List all wallets",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{Path: "/api/v1/wallets", RequiresAuth: true}
		},
		Expect: check.ExpectArray(200),
		Details: func(e client.Envelope) string {
			count := "N/A"
			if e.Body.IsArray() {
				count = fmt.Sprint(e.Body.Len())
			}
			return fmt.Sprintf("Status: %d, Wallets count: %s", e.Status, count)
		},
	})

	t.Step(Step{
		Name: "POST /api/v1/wallet/create - Create traditional wallet",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{Path: "/api/v1/wallet/create", Method: "POST", RequiresAuth: true, Timeout: quickTimeout}
		},
		Expect:  check.ExpectField(200, "address"),
		Details: check.StatusAndField("Address", "address"),
	})

	hdWallet := check.ExpectField(200, "mnemonic")
	t.Step(Step{
		Name: fmt.Sprintf("POST /api/wallets?words=%d - Create HD wallet with %d-word mnemonic", hdWalletWords, hdWalletWords),
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:         fmt.Sprintf("/api/wallets?words=%d", hdWalletWords),
				Method:       "POST",
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect: hdWallet,
		Details: func(e client.Envelope) string {
			if hdWallet.Accept(e) {
				return check.StatusAndField("Address", "address")(e)
			}
			return check.StatusAndPreview(0)(e)
		},
		Capture: func(s *RunState, e client.Envelope) {
			if hdWallet.Accept(e) {
				s.SetFixture(FixtureHDWallet, e.Body.Value())
			}
		},
	})

	t.Step(Step{
		Name:     "POST /api/wallets/derive - Derive key from mnemonic",
		Requires: []string{FixtureHDWallet},
		Request: func(s *RunState) client.RequestSpec {
			mnemonic, _, _ := s.HDWallet()
			return client.RequestSpec{
				Path:   "/api/wallets/derive",
				Method: "POST",
				Body: servicedef.DeriveKeyParams{
					Mnemonic: mnemonic,
					Account:  ldvalue.NewOptionalInt(0),
					Change:   ldvalue.NewOptionalInt(0),
					Index:    1,
				},
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect:  check.ExpectField(200, "address"),
		Details: check.StatusAndField("Address", "address"),
	})

	t.Step(Step{
		Name: "GET /api/v1/wallet/{address}/balance - Get wallet balance",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:         "/api/v1/wallet/" + TestAddress + "/balance",
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect:  check.ExpectObject(200),
		Details: check.StatusAndField("Balance", "balance"),
	})

	t.Step(Step{
		Name:     "POST /api/wallets/derive-with-private - Derive with private key",
		Requires: []string{FixtureHDWallet},
		Request: func(s *RunState) client.RequestSpec {
			mnemonic, _, _ := s.HDWallet()
			return client.RequestSpec{
				Path:   "/api/wallets/derive-with-private",
				Method: "POST",
				Body: servicedef.DeriveKeyParams{
					Mnemonic: mnemonic,
					Account:  ldvalue.NewOptionalInt(0),
					Change:   ldvalue.NewOptionalInt(0),
					Index:    0,
				},
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect: check.ExpectField(200, "privateKey"),
		// Only whether the key is present; the key itself stays out of the report.
		Details: func(e client.Envelope) string {
			return fmt.Sprintf("Status: %d, Has privateKey: %t", e.Status, e.Body.HasField("privateKey"))
		},
	})

	t.Step(Step{
		Name:     "POST /api/wallets/xpub - Get extended public key",
		Requires: []string{FixtureHDWallet},
		Request: func(s *RunState) client.RequestSpec {
			mnemonic, _, _ := s.HDWallet()
			return client.RequestSpec{
				Path:   "/api/wallets/xpub",
				Method: "POST",
				Body: servicedef.XpubParams{
					Mnemonic: mnemonic,
					Account:  ldvalue.NewOptionalInt(0),
				},
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect: check.ExpectField(200, "xpub"),
	})

	t.Step(Step{
		Name: "POST /api/v1/wallet/import - Import wallet from private key",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:         "/api/v1/wallet/import",
				Method:       "POST",
				Body:         servicedef.ImportWalletParams{PrivateKeyHex: TestPrivateKey},
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect:  check.ExpectField(200, "address"),
		Details: check.StatusAndField("Address", "address"),
	})

	// Signing is deliberately unimplemented on the backend.
	t.Step(Step{
		Name: "POST /api/v1/wallet/sign - Sign message (should return 501)",
		Request: func(*RunState) client.RequestSpec {
			return client.RequestSpec{
				Path:         "/api/v1/wallet/sign",
				Method:       "POST",
				Body:         servicedef.SignMessageParams{Message: "test message", PrivateKey: "dummy"},
				RequiresAuth: true,
				Timeout:      quickTimeout,
			}
		},
		Expect: check.ExpectStatus(501),
	})

	// 404 means the address was outside the searched range.
	t.Step(Step{
		Name:     "POST /api/wallets/find-path - Find derivation path for address",
		Requires: []string{FixtureHDWallet},
		Request: func(s *RunState) client.RequestSpec {
			mnemonic, address, _ := s.HDWallet()
			return client.RequestSpec{
				Path:   "/api/wallets/find-path",
				Method: "POST",
				Body: servicedef.FindPathParams{
					Mnemonic:      mnemonic,
					TargetAddress: address,
				},
				RequiresAuth: true,
				Timeout:      slowTimeout,
			}
		},
		Expect:  check.TolerateStatus(200, 404),
		Details: check.StatusAndPreview(150),
	})
}
