package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetSettingsByPageKey handles GET /api/product-page-settings/key/{pageKey}.
// Inactive settings answer 404.
func (s *Server) GetSettingsByPageKey(w http.ResponseWriter, r *http.Request) {
	settings, err := s.d.Settings.GetByPageKey(r.Context(), chi.URLParam(r, "pageKey"), true)
	if err != nil {
		s.fail(w, r, "Page settings", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}
