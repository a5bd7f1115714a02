// Package servicedef holds the JSON request bodies sent to the wallet backend.
package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

type RegisterParams struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DeriveKeyParams selects the BIP-44 path m/44'/60'/account'/change/index.
// Account and Change are nullable on the backend side.
type DeriveKeyParams struct {
	Mnemonic string              `json:"mnemonic"`
	Account  ldvalue.OptionalInt `json:"account,omitempty"`
	Change   ldvalue.OptionalInt `json:"change,omitempty"`
	Index    int                 `json:"index"`
}

type XpubParams struct {
	Mnemonic string              `json:"mnemonic"`
	Account  ldvalue.OptionalInt `json:"account,omitempty"`
}

type ImportWalletParams struct {
	PrivateKeyHex string `json:"privateKeyHex"`
}

type SignMessageParams struct {
	Message    string `json:"message"`
	PrivateKey string `json:"privateKey"`
}

type FindPathParams struct {
	Mnemonic      string `json:"mnemonic"`
	TargetAddress string `json:"targetAddress"`
}

type TokenTransferParams struct {
	From          string `json:"from"`
	To            string `json:"to"`
	TokenContract string `json:"tokenContract"`
	Amount        string `json:"amount"`
	PrivateKey    string `json:"privateKey"`
	GasPrice      string `json:"gasPrice"`
}

type GasEstimateParams struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

type SendTransactionParams struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Value      string `json:"value"`
	PrivateKey string `json:"privateKey"`
	GasPrice   string `json:"gasPrice"`
}
