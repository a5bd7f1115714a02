package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedToken string

func (f fixedToken) BearerToken() (string, bool) { return string(f), f != "" }

type capturedRequest struct {
	method  string
	path    string
	headers http.Header
	body    string
}

type requestRecorder struct {
	lock     sync.Mutex
	requests []capturedRequest
}

func (r *requestRecorder) wrap(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		r.lock.Lock()
		r.requests = append(r.requests, capturedRequest{
			method:  req.Method,
			path:    req.URL.RequestURI(),
			headers: req.Header.Clone(),
			body:    string(body),
		})
		r.lock.Unlock()
		h.ServeHTTP(w, req)
	})
}

func (r *requestRecorder) only(t *testing.T) capturedRequest {
	r.lock.Lock()
	defer r.lock.Unlock()
	require.Len(t, r.requests, 1)
	return r.requests[0]
}

func jsonHandler(status int, body string) http.Handler {
	return httphelpers.HandlerWithResponse(status,
		http.Header{"Content-Type": []string{"application/json"}}, []byte(body))
}

func TestExecuteParsesJSONResponse(t *testing.T) {
	httphelpers.WithServer(jsonHandler(200, `{"status":"ok"}`), func(server *httptest.Server) {
		e := NewExecutor(server.URL, 0, nil)
		env := e.Execute(context.Background(), RequestSpec{Path: "/api/v1/ping"}, nil)
		assert.Equal(t, 200, env.Status)
		assert.True(t, env.Body.IsObject())
		assert.Equal(t, "ok", env.Body.Field("status").StringValue())
	})
}

func TestExecuteKeepsNonJSONBodyAsRawText(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(500, nil, []byte("boom"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		env := NewExecutor(server.URL, 0, nil).Execute(context.Background(), RequestSpec{Path: "/"}, nil)
		assert.Equal(t, 500, env.Status)
		assert.False(t, env.Body.IsStructured())
		assert.Equal(t, "boom", env.Body.Raw())
	})
}

func TestExecuteReturnsErrorStatusesAsEnvelopes(t *testing.T) {
	for _, status := range []int{400, 401, 404, 501} {
		httphelpers.WithServer(jsonHandler(status, `{"error":"nope"}`), func(server *httptest.Server) {
			env := NewExecutor(server.URL, 0, nil).Execute(context.Background(), RequestSpec{Path: "/"}, nil)
			assert.Equal(t, status, env.Status)
			assert.True(t, env.Body.HasField("error"))
		})
	}
}

func TestExecuteTransportFailure(t *testing.T) {
	var url string
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		url = server.URL
	})
	env := NewExecutor(url, time.Second, nil).Execute(context.Background(), RequestSpec{Path: "/api/v1/ping"}, nil)
	assert.Equal(t, 0, env.Status)
	assert.False(t, env.Reached())
	assert.NotEmpty(t, env.Body.String())
}

func TestExecuteSendsBodyAndHeaders(t *testing.T) {
	var rec requestRecorder
	httphelpers.WithServer(rec.wrap(jsonHandler(200, `{}`)), func(server *httptest.Server) {
		spec := RequestSpec{
			Path:         "/api/v1/wallet/sign",
			Method:       "POST",
			Body:         map[string]string{"message": "hi"},
			ExtraHeaders: map[string]string{"X-Trace": "1"},
			RequiresAuth: true,
		}
		NewExecutor(server.URL+"/", 0, nil).Execute(context.Background(), spec, fixedToken("tok"))
	})

	r := rec.only(t)
	assert.Equal(t, "POST", r.method)
	assert.Equal(t, "/api/v1/wallet/sign", r.path)
	assert.Equal(t, "Bearer tok", r.headers.Get("Authorization"))
	assert.Equal(t, "application/json", r.headers.Get("Content-Type"))
	assert.Equal(t, "1", r.headers.Get("X-Trace"))
	assert.JSONEq(t, `{"message":"hi"}`, r.body)
}

func TestExecuteOmitsAuthorizationWithoutToken(t *testing.T) {
	var rec requestRecorder
	httphelpers.WithServer(rec.wrap(jsonHandler(200, `[]`)), func(server *httptest.Server) {
		e := NewExecutor(server.URL, 0, nil)
		e.Execute(context.Background(), RequestSpec{Path: "/api/v1/wallets", RequiresAuth: true}, fixedToken(""))
	})
	r := rec.only(t)
	assert.Equal(t, "", r.headers.Get("Authorization"))
	assert.Equal(t, "", r.headers.Get("Content-Type"))
	assert.Equal(t, "", r.body)
}

func TestExecuteOmitsAuthorizationWhenNotRequired(t *testing.T) {
	var rec requestRecorder
	httphelpers.WithServer(rec.wrap(jsonHandler(200, `{}`)), func(server *httptest.Server) {
		NewExecutor(server.URL, 0, nil).Execute(context.Background(), RequestSpec{Path: "/actuator/health"}, fixedToken("tok"))
	})
	assert.Equal(t, "", rec.only(t).headers.Get("Authorization"))
}

func TestExecuteTimesOut(t *testing.T) {
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		defer close(release)
		start := time.Now()
		spec := RequestSpec{Path: "/api/wallets/find-path", Timeout: time.Millisecond * 100}
		env := NewExecutor(server.URL, 0, nil).Execute(context.Background(), spec, nil)
		assert.Equal(t, 0, env.Status)
		assert.Less(t, int64(time.Since(start)), int64(time.Second*5))
	})
}

func TestExecuteStopsWhenContextIsCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(time.Millisecond * 50)
			cancel()
		}()
		env := NewExecutor(server.URL, time.Minute, nil).Execute(ctx, RequestSpec{Path: "/"}, nil)
		assert.Equal(t, 0, env.Status)
	})
}

func TestAwaitServiceAcceptsAnyStatus(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(503), func(server *httptest.Server) {
		err := AwaitService(context.Background(), server.URL, time.Second, io.Discard)
		assert.NoError(t, err)
	})
}

func TestAwaitServiceGivesUp(t *testing.T) {
	var url string
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		url = server.URL
	})
	err := AwaitService(context.Background(), url, time.Millisecond*250, io.Discard)
	assert.Error(t, err)
}
