package rest

import (
	"net/http"

	"github.com/dmitrijs2005/corpdesk/internal/server/auth"
	"github.com/dmitrijs2005/corpdesk/internal/server/services"
)

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

func (s *HTTPServer) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	u, err := s.users.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) createUser(w http.ResponseWriter, r *http.Request) {
	var in services.NewUser
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	u, err := s.users.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	s.logger.Info(r.Context(), "User created", "user_id", u.ID, "role", u.Role)
	writeJSON(w, http.StatusCreated, u)
}

func (s *HTTPServer) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	var in services.UserUpdate
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	caller, _ := auth.IdentityFromContext(r.Context())
	u, err := s.users.Update(r.Context(), caller, id, in)
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	u, err := s.users.Delete(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, userResource)
		return
	}
	s.logger.Info(r.Context(), "User deleted", "user_id", u.ID)
	writeJSON(w, http.StatusOK, u)
}
