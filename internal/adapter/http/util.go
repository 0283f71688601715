package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"bmicalc/internal/domain"
)

// maxBodyBytes caps request bodies at 100 KiB.
const maxBodyBytes = 100 << 10

const msgInternal = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps a domain error kind to an HTTP status code.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingField, domain.KindInvalidValue, domain.KindImplausibleUnit:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the JSON error envelope. Internal errors are
// logged and replaced by a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(domain.KindOf(err))

	var de *domain.Error
	if status == http.StatusInternalServerError || !errors.As(err, &de) {
		s.logger.Error("request failed",
			"requestID", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
		return
	}
	writeJSON(w, status, errorResponse{Error: de.Message})
}

// parseCalculateRequest reads weight and height from a JSON or urlencoded
// form body. An empty body yields absent values.
func parseCalculateRequest(w http.ResponseWriter, r *http.Request) (calculateRequest, error) {
	var req calculateRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, domain.WrapError(domain.KindInvalidValue, "Invalid form body", err)
		}
		if r.PostForm.Has("weight") {
			req.Weight = domain.Text(r.PostForm.Get("weight"))
		}
		if r.PostForm.Has("height") {
			req.Height = domain.Text(r.PostForm.Get("height"))
		}
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return calculateRequest{}, nil
		}
		return req, domain.WrapError(domain.KindInvalidValue, "Invalid JSON body", fmt.Errorf("invalid json: %w", err))
	}
	return req, nil
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error: fmt.Sprintf("Route %s %s not found", r.Method, r.URL.RequestURI()),
	})
}

// fallback handles requests no API route matched. Static files are served
// from webDir when configured; everything else is a JSON 404.
func (s *Server) fallback() http.Handler {
	if s.webDir == "" {
		return http.HandlerFunc(routeNotFound)
	}

	dir := s.webDir
	indexPath := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			routeNotFound(w, r)
			return
		}

		reqPath := path.Clean("/" + r.URL.Path)
		target := indexPath
		if reqPath != "/" {
			target = filepath.Join(dir, filepath.FromSlash(reqPath))
		}

		if fi, err := os.Stat(target); err == nil && !fi.IsDir() {
			http.ServeFile(w, r, target)
			return
		}
		routeNotFound(w, r)
	})
}
