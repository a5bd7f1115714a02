package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Predicate decides whether a response is acceptable.
type Predicate func(client.Envelope) bool

// Policy is the acceptance rule of one step.
type Policy struct {
	Description string
	Category    framework.Category
	Accept      Predicate
}

// ExpectStatus accepts exactly one status code, whatever the body.
func ExpectStatus(code int) Policy {
	return Policy{
		Description: fmt.Sprintf("status %d", code),
		Accept: func(e client.Envelope) bool {
			return e.Status == code
		},
	}
}

// ExpectObject accepts a JSON object with the given status.
func ExpectObject(code int) Policy {
	return Policy{
		Description: fmt.Sprintf("status %d with a JSON object", code),
		Accept: func(e client.Envelope) bool {
			return e.Status == code && e.Body.IsObject()
		},
	}
}

// ExpectArray accepts a JSON array with the given status.
func ExpectArray(code int) Policy {
	return Policy{
		Description: fmt.Sprintf("status %d with a JSON array", code),
		Accept: func(e client.Envelope) bool {
			return e.Status == code && e.Body.IsArray()
		},
	}
}

// ExpectScalar accepts a plain string or number with the given status.
func ExpectScalar(code int) Policy {
	return Policy{
		Description: fmt.Sprintf("status %d with a string or number", code),
		Accept: func(e client.Envelope) bool {
			return e.Status == code && e.Body.IsScalar()
		},
	}
}

// ExpectField accepts a JSON object that has the named field.
func ExpectField(code int, field string) Policy {
	return Policy{
		Description: fmt.Sprintf("status %d with field %q", code, field),
		Accept: func(e client.Envelope) bool {
			return e.Status == code && e.Body.HasField(field)
		},
	}
}

// ExpectFieldValue accepts a JSON object whose named field is the given string.
func ExpectFieldValue(code int, field, value string) Policy {
	return Policy{
		Description: fmt.Sprintf("status %d with %s=%q", code, field, value),
		Accept: func(e client.Envelope) bool {
			v := e.Body.Field(field)
			return e.Status == code && v.Type() == ldvalue.StringType && v.StringValue() == value
		},
	}
}

// TolerateStatus accepts any of the given status codes. It only proves that
// the endpoint exists and answers, so its outcomes are liveness checks.
func TolerateStatus(codes ...int) Policy {
	accepted := make(map[int]bool, len(codes))
	var names []string
	for _, c := range codes {
		accepted[c] = true
		names = append(names, fmt.Sprint(c))
	}
	sort.Strings(names)
	return Policy{
		Description: "any status of " + strings.Join(names, ", "),
		Category:    framework.Liveness,
		Accept: func(e client.Envelope) bool {
			return accepted[e.Status]
		},
	}
}
