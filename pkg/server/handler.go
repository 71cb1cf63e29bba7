// Package server implements the greeting endpoint and its TCP listener.
package server

import (
	"net/http"
)

// ContentType is the exact Content-Type of every greeting response.
const ContentType = "text/plain"

// Body returns the greeting body for version.
func Body(version string) string {
	return "Hello World\nVersion: " + version + "\n"
}

// NewHandler returns the greeting handler. Every request, whatever its method,
// path, headers or body, receives 200 with the same body. The body is built
// once here so handler invocations share only immutable data.
func NewHandler(version string) http.Handler {
	body := []byte(Body(version))

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}
