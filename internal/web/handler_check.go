package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"firstaidcheck/internal/catalog"
	"firstaidcheck/internal/service"
)

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) handleListBoxes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"boxes": catalog.Boxes()})
}

func (s *Server) handleListChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := s.service.ListChecks(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"checks": checks})
}

func (s *Server) handleSubmitCheck(w http.ResponseWriter, r *http.Request) {
	var in service.CheckInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	id, err := s.service.SubmitCheck(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}

	status := http.StatusCreated
	if in.ID != 0 {
		status = http.StatusOK
	}
	s.writeJSON(w, status, map[string]int64{"check_id": id})
}

// handleNewCheckForm seeds a blank check form: one entry per catalog item
// with zero quantity.
func (s *Server) handleNewCheckForm(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ReconcileForDisplay(r.Context(), nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleEditCheckForm seeds an edit form for an existing check, reconciled
// against the current catalog.
func (s *Server) handleEditCheckForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid check id"})
		return
	}

	items, err := s.service.ReconcileForDisplay(r.Context(), &id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGetCheck(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid check id"})
		return
	}

	check, items, err := s.service.GetCheckDetails(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"check": check, "items": items})
}

func (s *Server) handleDeleteCheck(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid check id"})
		return
	}

	if err := s.service.DeleteCheck(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRestockAdvice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid check id"})
		return
	}

	advice, err := s.service.SuggestRestock(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, advice)
}
