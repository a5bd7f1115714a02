package wallettests

// Fixed inputs sent to the backend. None of these keys control real funds.
const (
	TestAddress      = "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb7"
	RecipientAddress = "0x5aAeb6053f3E94C9b9A09f33669435E7Ef1BeAed"
	USDTContract     = "0xdAC17F958D2ee523a2206206994597C13D831ec7"

	// TestPrivateKey is the well-known key used by the import step.
	TestPrivateKey = "0x4c0883a69102937d6231471b5dbb6204fe512961708279f8c5c1d5e5e9f5f5a0"
	// DummyPrivateKey is used where the backend is expected to reject the
	// operation anyway.
	DummyPrivateKey = "0x0000000000000000000000000000000000000000000000000000000000000001"

	TestTxHash = "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

	hdWalletWords = 12
)

// Credentials identifies the test user.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// DefaultCredentials is the account the suites register and log in with.
var DefaultCredentials = Credentials{
	Username: "endpointtest",
	Email:    "endpointtest@example.com",
	Password: "test123456",
}
