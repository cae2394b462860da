package route

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventcal/src-server/metric"

	"github.com/google/uuid"
)

type RequestIDCtxKeyType string

const (
	RequestIDCtxKey    RequestIDCtxKeyType = "request-id"
	RequestIDHeaderKey string              = "X-Request-ID"
)

// RequestID returns the id assigned by LogMiddleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDCtxKey).(string)
	return id
}

// CorsMiddleware opens the API to any origin and answers every preflight
// with 204 before routing.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// LogMiddleware tags each request with an id, logs it once finished and
// counts it by the matched route pattern.
func LogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeaderKey)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeaderKey, requestID)

		startTimer := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		r = r.WithContext(context.WithValue(r.Context(), RequestIDCtxKey, requestID))
		next.ServeHTTP(recorder, r)

		routePattern := r.Pattern
		if routePattern == "" {
			routePattern = "unmatched"
		}
		metric.HTTPRequests.WithLabelValues(routePattern, strconv.Itoa(recorder.status)).Inc()
		slog.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(startTimer),
			"request_id", requestID)
	})
}
