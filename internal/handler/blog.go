package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetBlogBySlug handles GET /api/blogs/slug/{slug}.
func (s *Server) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	blog, err := s.d.Blogs.GetBySlug(r.Context(), chi.URLParam(r, "slug"), true)
	if err != nil {
		s.fail(w, r, "Blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"blog": blog})
}
