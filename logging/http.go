package logging

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request identifier assigned by the middleware.
const RequestIDHeader = "X-Request-ID"

// HTTPLogger logs HTTP requests handled by the site server.
type HTTPLogger struct {
	logger *Logger
}

// NewHTTPLogger creates a new HTTP logger.
func NewHTTPLogger(logger *Logger) *HTTPLogger {
	return &HTTPLogger{logger: logger}
}

// responseRecorder captures status and size for logging.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
}

func (r *responseRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
		r.ResponseWriter.WriteHeader(status)
	}
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func (r *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := r.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("responseRecorder does not support hijacking")
}

func (r *responseRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Middleware returns an HTTP middleware that tags each request with an ID and
// logs method, path, status, size and duration.
func (h *HTTPLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.New().String()
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			status:         http.StatusOK,
		}
		recorder.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(recorder, r)

		duration := time.Since(start).Milliseconds()

		fields := map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"query":       r.URL.RawQuery,
			"status":      recorder.status,
			"size":        recorder.size,
			"remote_addr": stripHostPort(r.RemoteAddr),
			"user_agent":  r.UserAgent(),
			"referer":     r.Referer(),
		}

		headers := make(map[string]string)
		for name, values := range r.Header {
			if !isSensitiveHeader(name) {
				headers[name] = strings.Join(values, ", ")
			}
		}
		if len(headers) > 0 {
			fields["request_headers"] = headers
		}

		entry := Entry{
			Timestamp: time.Now().UTC(),
			Level:     INFO.String(),
			Category:  CategoryHTTP,
			Message:   fmt.Sprintf("%s %s %d", r.Method, r.URL.Path, recorder.status),
			Fields:    fields,
			RequestID: requestID,
			Duration:  &duration,
		}

		if recorder.status >= 400 {
			entry.Level = WARN.String()
		}
		if recorder.status >= 500 {
			entry.Level = ERROR.String()
		}
		if ParseLevel(entry.Level) < h.logger.minLevel {
			return
		}

		h.logger.write(entry)
	})
}

func isSensitiveHeader(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "auth") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "cookie") ||
		strings.Contains(lower, "key") ||
		strings.Contains(lower, "secret")
}

func stripHostPort(value string) string {
	host, _, err := net.SplitHostPort(value)
	if err != nil {
		return value
	}
	return host
}
