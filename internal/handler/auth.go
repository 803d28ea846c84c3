package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-agency/backend/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// resetRequestedMessage is returned whether or not the account exists.
const resetRequestedMessage = "If an account exists for this e-mail, a reset code has been sent"

func (s *Server) authRoutes(r chi.Router) {
	r.With(s.limiter.Limit("login")).Post("/login", s.Login)
	r.With(s.limiter.Limit("forgot-password")).Post("/forgot-password", s.ForgotPassword)
	r.With(s.limiter.Limit("reset-password")).Post("/reset-password", s.ResetPassword)
	r.With(s.authed).Get("/me", s.Me)
}

// Login handles POST /api/auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		s.badRequest(w, "email and password are required")
		return
	}
	session, err := s.d.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(w, r, "User", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   session.Token,
		"user":    session.User,
	})
}

// Me handles GET /api/auth/me.
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}
	user, err := s.d.Auth.Me(r.Context(), id.UserID)
	if err != nil {
		s.fail(w, r, "User", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// ForgotPassword handles POST /api/auth/forgot-password. The response is
// the same for known and unknown addresses.
func (s *Server) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Email == "" {
		s.badRequest(w, "email is required")
		return
	}
	if err := s.d.Auth.RequestPasswordReset(r.Context(), req.Email); err != nil {
		s.fail(w, r, "User", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": resetRequestedMessage})
}

// ResetPassword handles POST /api/auth/reset-password.
func (s *Server) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Code == "" || req.NewPassword == "" {
		s.badRequest(w, "email, code and newPassword are required")
		return
	}
	if err := s.d.Auth.ResetPassword(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		s.fail(w, r, "User", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password has been reset"})
}
