package adapthttp

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bmicalc/internal/domain"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	s := &Server{logger: slog.New(slog.NewTextHandler(&buf, nil))}

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})
	handler := s.requestIDMiddleware(s.loggingMiddleware(nextHandler))

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "GET") || !strings.Contains(logOutput, "/test-path") || !strings.Contains(logOutput, "418") {
		t.Errorf("Log output missing expected fields. Got: %s", logOutput)
	}
	if id := w.Header().Get(requestIDHeader); id == "" || !strings.Contains(logOutput, id) {
		t.Errorf("Log output missing request id %q. Got: %s", id, logOutput)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind domain.ErrorKind
		want int
	}{
		{domain.KindMissingField, http.StatusBadRequest},
		{domain.KindInvalidValue, http.StatusBadRequest},
		{domain.KindImplausibleUnit, http.StatusBadRequest},
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindInternal, http.StatusInternalServerError},
		{domain.ErrorKind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := statusFor(tc.kind); got != tc.want {
			t.Errorf("statusFor(%s) = %d; want %d", tc.kind, got, tc.want)
		}
	}
}
