package wallettests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// FixtureHDWallet is the response of a successful HD wallet creation. It is
// guaranteed to be a JSON object with a "mnemonic" field.
const FixtureHDWallet = "hdWallet"

// RunState holds what one run learns along the way: the bearer token from
// login and payloads captured for later steps. It starts empty and lives only
// as long as the run.
type RunState struct {
	token    ldvalue.OptionalString
	fixtures map[string]ldvalue.Value
}

// NewRunState returns an empty state.
func NewRunState() *RunState {
	return &RunState{fixtures: make(map[string]ldvalue.Value)}
}

// BearerToken returns the token obtained from login, if any.
func (s *RunState) BearerToken() (string, bool) {
	if !s.token.IsDefined() {
		return "", false
	}
	return s.token.StringValue(), true
}

// Only Login calls this.
func (s *RunState) setToken(token string) {
	s.token = ldvalue.NewOptionalString(token)
}

// Fixture returns a captured payload by name.
func (s *RunState) Fixture(name string) (ldvalue.Value, bool) {
	v, ok := s.fixtures[name]
	return v, ok
}

// SetFixture stores a payload for later steps, replacing any previous one.
func (s *RunState) SetFixture(name string, value ldvalue.Value) {
	s.fixtures[name] = value
}

// HDWallet returns the mnemonic and address of the wallet created earlier in
// the run. Address may be empty if the backend did not return one.
func (s *RunState) HDWallet() (mnemonic, address string, ok bool) {
	w, ok := s.Fixture(FixtureHDWallet)
	if !ok {
		return "", "", false
	}
	return w.GetByKey("mnemonic").StringValue(), w.GetByKey("address").StringValue(), true
}
