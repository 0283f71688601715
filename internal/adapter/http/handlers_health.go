package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	n, err := s.bmi.Count(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC(),
		Calculations: n,
	})
}
