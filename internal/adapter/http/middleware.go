package adapthttp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const requestIDHeader = "X-Request-Id"

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// withMiddleware wraps next so that metrics observe the request the mux sees
// and panics are turned into a 500 before logging records the status.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return s.requestIDMiddleware(
		s.loggingMiddleware(
			s.metricsMiddleware(
				s.recoveryMiddleware(next),
			),
		),
	)
}

// requestIDMiddleware propagates a valid incoming request id or assigns a
// new one.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				panicRecoveries.Inc()
				s.logger.Error("panic recovered",
					"requestID", requestIDFrom(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"error", fmt.Sprint(v),
				)
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		s.logger.Info("request",
			"requestID", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		)
	})
}
