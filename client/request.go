package client

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/alessio/shellescape"
)

// RequestSpec describes one request to the service under test.
type RequestSpec struct {
	Path   string
	Method string
	// Body is encoded as JSON. A nil Body sends no payload.
	Body         interface{}
	ExtraHeaders map[string]string
	// RequiresAuth attaches the current bearer token, if there is one. A
	// missing token is not an error; the request is sent without it.
	RequiresAuth bool
	// Timeout bounds the whole call. Zero means the executor's default.
	Timeout time.Duration
}

func (s RequestSpec) method() string {
	if s.Method == "" {
		return "GET"
	}
	return s.Method
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// CurlCommand renders a shell command that repeats this request. The token is
// never included; a $TOKEN placeholder stands in for it.
func (s RequestSpec) CurlCommand(baseURL string) string {
	var cmd commandBuilder
	cmd.add("curl", "-sS", "-X", s.method())

	names := make([]string, 0, len(s.ExtraHeaders))
	for k := range s.ExtraHeaders {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		cmd.add("-H", k+": "+s.ExtraHeaders[k])
	}
	if s.RequiresAuth {
		cmd = append(cmd, "-H", `"Authorization: Bearer $TOKEN"`)
	}
	if s.Body != nil {
		cmd.add("-H", "Content-Type: application/json")
		if data, err := json.Marshal(s.Body); err == nil {
			cmd.add("-d", string(data))
		}
	}
	cmd.add(baseURL + s.Path)
	return cmd.String()
}
