package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareAssignsRequestIDAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := New("server", DEBUG, &buf)

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})
	handler := NewHTTPLogger(logger).Middleware(mux)

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	id := rec.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatalf("expected a request id header")
	}

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != "WARN" || e.Category != CategoryHTTP || e.RequestID != id {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Fields["status"] != float64(http.StatusTeapot) || e.Fields["size"] != float64(2) {
		t.Fatalf("unexpected status/size %+v", e.Fields)
	}
	if e.Fields["remote_addr"] != "127.0.0.1" || e.Fields["query"] != "x=1" {
		t.Fatalf("unexpected request fields %+v", e.Fields)
	}
	headers, _ := e.Fields["request_headers"].(map[string]any)
	if _, leaked := headers["Authorization"]; leaked {
		t.Fatalf("sensitive header leaked: %+v", headers)
	}
	if headers["Accept"] != "text/html" {
		t.Fatalf("expected Accept header logged, got %+v", headers)
	}
	if e.Duration == nil {
		t.Fatalf("expected duration")
	}
}

func TestMiddlewareReusesIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := NewHTTPLogger(New("server", DEBUG, &buf)).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming id to be echoed, got %q", got)
	}
	if e := decodeLines(t, &buf)[0]; e.Level != "INFO" || e.RequestID != "abc-123" {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestMiddlewareRespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := NewHTTPLogger(New("server", ERROR, &buf)).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	if buf.Len() != 0 {
		t.Fatalf("404 should be filtered at ERROR level, got %s", buf.String())
	}
}
