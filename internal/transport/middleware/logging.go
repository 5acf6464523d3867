package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/employee-management/pkg/logger"
)

// sensitiveFields are JSON keys and header names never written to logs.
var sensitiveFields = []string{
	"password",
	"password_hash",
	"token",
	"authorization",
	"secret",
	"credential",
}

// LoggingMiddleware logs one line per request with method, path, status and
// duration. Request bodies are logged with credential fields masked; response
// bodies are captured only for error statuses.
func LoggingMiddleware(lg *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// the trace-id middleware stores a per-request logger in context
			reqLog := logger.From(r.Context())
			if reqLog == nil {
				reqLog = lg
			}

			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			}
			if q := r.URL.RawQuery; q != "" {
				fields = append(fields, "query", q)
			}
			if status >= 400 && sw.body.Len() > 0 {
				fields = append(fields, "response", maskSensitive(sw.body.Bytes()))
			}

			switch {
			case status >= 500:
				reqLog.Error("request", fields...)
			case status >= 400:
				reqLog.Warn("request", fields...)
			default:
				reqLog.Info("request", fields...)
			}
		})
	}
}

// statusWriter records the status code and buffers error response bodies
// so they can be logged.
type statusWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status >= 400 {
		sw.body.Write(b)
	}
	return sw.ResponseWriter.Write(b)
}

// maskSensitive replaces credential-bearing JSON fields with a placeholder.
// Non-JSON payloads are dropped entirely when they look sensitive.
func maskSensitive(body []byte) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		if containsSensitive(strings.ToLower(string(body))) {
			return "[filtered]"
		}
		return string(body)
	}

	masked, err := json.Marshal(maskValue(data))
	if err != nil {
		return "[filtered]"
	}
	return string(masked)
}

func maskValue(data any) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			if containsSensitive(strings.ToLower(key)) {
				out[key] = "[filtered]"
			} else {
				out[key] = maskValue(value)
			}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = maskValue(item)
		}
		return out
	default:
		return v
	}
}

func containsSensitive(s string) bool {
	for _, field := range sensitiveFields {
		if strings.Contains(s, field) {
			return true
		}
	}
	return false
}
