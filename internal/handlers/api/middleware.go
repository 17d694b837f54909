package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gabapcia/recoverywallet/internal/pkg/logger"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// responseRecorder captures the status written by a handler, and the body when
// keepBody is set, while still forwarding both to the client.
type responseRecorder struct {
	http.ResponseWriter
	status   int
	keepBody bool
	body     bytes.Buffer
}

func newResponseRecorder(w http.ResponseWriter, keepBody bool) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, status: http.StatusOK, keepBody: keepBody}
}

func (rec *responseRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	if rec.keepBody {
		rec.body.Write(b)
	}
	return rec.ResponseWriter.Write(b)
}

// requestLogging tags the request context with a request id and logs one line
// per handled request.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := logger.Derive(r.Context(),
			"request.id", id,
			"http.method", r.Method,
			"http.path", r.URL.Path,
		)

		start := time.Now()
		rec := newResponseRecorder(w, false)
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "request handled",
			"http.status", rec.status,
			"duration", time.Since(start),
		)
	})
}
