package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gcsfwd/pkg/utils/ctxutil"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := ctxutil.Logger(ctx).With("request_id", uuid.NewString())

		// X-Cloud-Trace-Context: TRACE_ID/SPAN_ID;o=OPTIONS
		if trace := r.Header.Get("X-Cloud-Trace-Context"); trace != "" {
			traceID, _, _ := strings.Cut(trace, "/")
			logger = logger.With("trace_id", traceID)
		}

		ctx = ctxutil.WithLogger(ctx, logger)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		ts := time.Now()
		next.ServeHTTP(sw, r.WithContext(ctx))
		latency := time.Since(ts)

		logger.Info("HTTP Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"headers", r.Header,
			"latency", latency,
		)
	})
}
