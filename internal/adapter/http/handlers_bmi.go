package adapthttp

import (
	"fmt"
	"net/http"
	"strconv"

	"bmicalc/internal/domain"
)

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req, err := parseCalculateRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.bmi.Calculate(r.Context(), req.Weight, req.Height)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordResponse{Success: true, Data: rec})
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	items, err := s.bmi.History(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.CalculationRecord{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Success: true, Count: len(items), Data: items})
}

func (s *Server) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeError(w, r, domain.ErrCalculationNotFound)
		return
	}
	rec, err := s.bmi.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordResponse{Success: true, Data: rec})
}

func (s *Server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeError(w, r, domain.ErrCalculationNotFound)
		return
	}
	rec, err := s.bmi.Delete(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{
		Success: true,
		Message: "Calculation deleted successfully",
		Data:    &rec,
	})
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	n, err := s.bmi.Clear(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{
		Success: true,
		Message: fmt.Sprintf("Deleted %d calculations", n),
	})
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	st, err := s.bmi.Statistics(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if st.Categories == nil {
		st.Categories = map[domain.Category]int{}
	}
	writeJSON(w, http.StatusOK, statisticsResponse{Success: true, Data: st})
}

// pathID parses the {id} wildcard. Anything that is not an integer cannot
// name a stored calculation.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
