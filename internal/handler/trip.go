package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetTripBySlug handles GET /api/trips/slug/{slug}. Only visible trips are
// returned.
func (s *Server) GetTripBySlug(w http.ResponseWriter, r *http.Request) {
	trip, err := s.d.Trips.GetBySlug(r.Context(), chi.URLParam(r, "slug"), true)
	if err != nil {
		s.fail(w, r, "Trip", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trip": trip})
}
