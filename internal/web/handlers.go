package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleHealthz reports that the diagnostics server itself is up. It says
// nothing about the probed environment - that is what the report is for.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReport runs the full probe suite and returns the report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report := s.report(r.Context())
	writeJSON(w, http.StatusOK, report)
}

// handleProbe runs the full probe suite and returns a single named result.
func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	report := s.report(r.Context())
	result, ok := report.Result(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown probe: "+name)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
