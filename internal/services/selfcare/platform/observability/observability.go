// Package observability provides request logging and Prometheus metrics for
// the selfcare HTTP surface.
package observability

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"go.opentelemetry.io/otel/trace"
)

// RequestLogger writes one key=value line per request. The trace id is
// appended when the request carries a sampled span.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			recorder := newStatusRecorder(w)
			next.ServeHTTP(recorder, r)
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s%s",
				r.Method,
				r.URL.Path,
				recorder.Status(),
				recorder.bytes,
				time.Since(started).Round(time.Microsecond),
				httpx.RequestIDFrom(r),
				traceField(r),
			)
		})
	}
}

func traceField(r *http.Request) string {
	spanContext := trace.SpanContextFromContext(r.Context())
	if !spanContext.HasTraceID() {
		return ""
	}
	return " trace_id=" + spanContext.TraceID().String()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// Status returns the written status, defaulting to 200.
func (r *statusRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r *statusRecorder) statusLabel() string {
	return strconv.Itoa(r.Status())
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
