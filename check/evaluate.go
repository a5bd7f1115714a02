package check

import (
	"fmt"
	"unicode/utf8"

	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/framework"
)

// DefaultPreviewLimit is how much of a response body goes into outcome details.
const DefaultPreviewLimit = 100

// Renderer turns a response into the detail line of an outcome.
type Renderer func(client.Envelope) string

// StatusAndPreview renders "Status: <code>, Response: <body>" with the body
// cut to limit characters.
func StatusAndPreview(limit int) Renderer {
	return func(e client.Envelope) string {
		return fmt.Sprintf("Status: %d, Response: %s", e.Status, Truncate(e.Body.String(), limit))
	}
}

// StatusAndField renders the status plus one field of the body, for example
// "Status: 200, Address: 0xabc". Non-object bodies show "Error" and a missing
// field shows "N/A".
func StatusAndField(label, field string) Renderer {
	return func(e client.Envelope) string {
		value := "Error"
		if e.Body.IsObject() {
			value = "N/A"
			if s, ok := e.Body.FieldString(field); ok {
				value = Truncate(s, DefaultPreviewLimit)
			}
		}
		return fmt.Sprintf("Status: %d, %s: %s", e.Status, label, value)
	}
}

// Truncate shortens s to at most limit characters, marking the cut with "...".
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// Evaluate applies policy to a response. It never panics: a predicate that
// panics produces a failed outcome carrying the panic message, and a renderer
// that panics is replaced by the default one.
func Evaluate(name string, e client.Envelope, policy Policy, render Renderer) framework.TestOutcome {
	out := framework.TestOutcome{Name: name, Category: policy.Category}

	passed, err := accept(policy.Accept, e)
	if err != nil {
		out.Details = fmt.Sprintf("Status: %d, acceptance check failed: %s", e.Status, err)
		return out
	}
	out.Passed = passed
	out.Details = details(render, e)
	return out
}

func accept(p Predicate, e client.Envelope) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			err = fmt.Errorf("%v", r)
		}
	}()
	if p == nil {
		return false, fmt.Errorf("no acceptance policy")
	}
	return p(e), nil
}

func details(render Renderer, e client.Envelope) (s string) {
	fallback := StatusAndPreview(DefaultPreviewLimit)
	if render == nil {
		return fallback(e)
	}
	defer func() {
		if r := recover(); r != nil {
			s = fallback(e)
		}
	}()
	return render(e)
}
