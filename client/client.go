package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/web3-wallet/wallet-endpoint-tests/framework"
)

// DefaultTimeout applies to requests that do not set their own.
const DefaultTimeout = 30 * time.Second

// Credentials supplies the bearer token for authenticated requests.
type Credentials interface {
	BearerToken() (string, bool)
}

// Executor sends requests to the service under test. It never returns an
// error: every outcome, including a failure to connect, is folded into an
// Envelope.
type Executor struct {
	baseURL        string
	http           *http.Client
	defaultTimeout time.Duration
	logger         framework.Logger
}

// NewExecutor creates an Executor for the service at baseURL.
func NewExecutor(baseURL string, defaultTimeout time.Duration, logger framework.Logger) *Executor {
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultTimeout
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Executor{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		http:           &http.Client{},
		defaultTimeout: defaultTimeout,
		logger:         logger,
	}
}

// BaseURL returns the URL that request paths are appended to.
func (e *Executor) BaseURL() string {
	return e.baseURL
}

// WithLogger returns a copy of the Executor that writes to a different logger.
func (e *Executor) WithLogger(logger framework.Logger) *Executor {
	if logger == nil {
		logger = framework.NullLogger()
	}
	e1 := *e
	e1.logger = logger
	return &e1
}

// Execute sends one request and waits for the complete response, or until
// the request's timeout expires or ctx is cancelled.
//
// Creds may be nil. It is only read, and only when spec.RequiresAuth is set.
func (e *Executor) Execute(ctx context.Context, spec RequestSpec, creds Credentials) Envelope {
	url := e.baseURL + spec.Path
	method := spec.method()

	var body io.Reader
	if spec.Body != nil {
		data, err := json.Marshal(spec.Body)
		if err != nil {
			return e.failed(method, url, fmt.Errorf("encoding request body: %w", err))
		}
		e.logger.Printf("Request body: %s", string(data))
		body = bytes.NewReader(data)
	}

	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = e.defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return e.failed(method, url, err)
	}
	for k, v := range spec.ExtraHeaders {
		req.Header.Set(k, v)
	}
	if spec.RequiresAuth && creds != nil {
		if token, ok := creds.BearerToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	e.logger.Printf("Sending %s %s (timeout %s)", method, url, timeout)
	start := time.Now()
	resp, err := e.http.Do(req)
	if err != nil {
		return e.failed(method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return e.failed(method, url, fmt.Errorf("reading response body: %w", err))
	}
	e.logger.Printf("Got status %d after %s: %s", resp.StatusCode, time.Since(start).Round(time.Millisecond), string(data))

	return Envelope{Status: resp.StatusCode, Body: ParsePayload(data)}
}

func (e *Executor) failed(method, url string, err error) Envelope {
	e.logger.Printf("%s %s failed: %s", method, url, err)
	return TransportFailure(err)
}
