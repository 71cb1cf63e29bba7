package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerIgnoresRequest(t *testing.T) {
	h := NewHandler("1.0.0")

	tests := []struct {
		name   string
		method string
		target string
		body   string
		header map[string]string
	}{
		{name: "get root", method: http.MethodGet, target: "/"},
		{name: "post anything", method: http.MethodPost, target: "/anything", body: `{"x": 1}`},
		{name: "put nested path", method: http.MethodPut, target: "/a/b/c?q=1", body: "payload"},
		{name: "delete", method: http.MethodDelete, target: "/users/7"},
		{name: "patch", method: http.MethodPatch, target: "/"},
		{name: "options", method: http.MethodOptions, target: "*"},
		{name: "custom method", method: "PURGE", target: "/cache"},
		{name: "accept json", method: http.MethodGet, target: "/", header: map[string]string{"Accept": "application/json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			assert.Equal(t, "Hello World\nVersion: 1.0.0\n", rec.Body.String())
		})
	}
}

func TestBody(t *testing.T) {
	assert.Equal(t, "Hello World\nVersion: 2.3.4-beta\n", Body("2.3.4-beta"))
	assert.Equal(t, "Hello World\nVersion: \n", Body(""))
}

func TestHandlerConcurrentRequestsAreIdentical(t *testing.T) {
	ts := httptest.NewServer(NewHandler("1.0.0"))
	t.Cleanup(ts.Close)

	const n = 32
	bodies := make([]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodPost
			}
			req, err := http.NewRequest(method, ts.URL+"/path/"+strings.Repeat("x", i), strings.NewReader("body"))
			if err != nil {
				errs[i] = err
				return
			}
			resp, err := ts.Client().Do(req)
			if err != nil {
				errs[i] = err
				return
			}
			defer resp.Body.Close()
			b, err := io.ReadAll(resp.Body)
			errs[i] = err
			bodies[i] = string(b)
		}(i)
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, bodies[0], bodies[i])
	}
	assert.Equal(t, "Hello World\nVersion: 1.0.0\n", bodies[0])
}
