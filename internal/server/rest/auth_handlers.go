package rest

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/server/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
	All          bool   `json:"all"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, loginResource)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		s.writeError(w, r, common.ErrorValidation, loginResource)
		return
	}

	result, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err, loginResource)
		return
	}

	s.logger.Info(r.Context(), "Logged in", "user_id", result.User.ID)
	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, noResource)
		return
	}
	if req.RefreshToken == "" {
		s.writeError(w, r, common.ErrRefreshTokenRequired, noResource)
		return
	}

	accessToken, err := s.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		s.writeError(w, r, err, noResource)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{AccessToken: accessToken})
}

func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, noResource)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	msg, err := s.auth.Logout(r.Context(), id, req.RefreshToken, req.All)
	if err != nil {
		s.writeError(w, r, err, noResource)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
