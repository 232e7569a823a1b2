package rest

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/dmitrijs2005/corpdesk/internal/common"
)

// Handler builds the full middleware stack around the route table.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	bearer := func(h http.HandlerFunc) http.Handler { return chain(h, s.authenticate) }
	admin := func(h http.HandlerFunc) http.Handler { return chain(h, s.authenticate, s.requireAdmin) }
	selfOrAdmin := func(h http.HandlerFunc) http.Handler { return chain(h, s.authenticate, s.requireSelfOrAdmin) }

	mux.HandleFunc("GET /health", s.health)

	mux.HandleFunc("POST /auth/login", s.login)
	mux.HandleFunc("POST /auth/refresh", s.refresh)
	mux.Handle("POST /auth/logout", bearer(s.logout))

	mux.Handle("GET /users", admin(s.listUsers))
	mux.Handle("POST /users", admin(s.createUser))
	mux.Handle("GET /users/{id}", selfOrAdmin(s.getUser))
	mux.Handle("PATCH /users/{id}", selfOrAdmin(s.updateUser))
	mux.Handle("DELETE /users/{id}", selfOrAdmin(s.deleteUser))

	mux.Handle("GET /customers", bearer(s.listCustomers))
	mux.Handle("GET /customers/{id}", bearer(s.getCustomer))
	mux.Handle("POST /customers", bearer(s.createCustomer))

	mux.Handle("GET /admins", admin(s.listAdmins))
	mux.Handle("GET /admins/{id}", admin(s.getAdmin))
	mux.Handle("POST /admins", admin(s.createAdmin))

	mux.Handle("GET /company", bearer(s.listCompanies))
	mux.Handle("GET /company/{id}", bearer(s.getCompany))
	mux.Handle("POST /company", admin(s.createCompany))
	mux.Handle("PATCH /company/{id}", admin(s.updateCompany))
	mux.Handle("DELETE /company/{id}", admin(s.deleteCompany))

	mux.Handle("GET /cprojects", bearer(s.listProjects))
	mux.Handle("GET /cprojects/{id}", bearer(s.getProject))
	mux.Handle("POST /cprojects", bearer(s.createProject))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errNotFound, noResource)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{common.AuthorizationHeaderName, "Content-Type", common.RequestIDHeaderName},
		ExposedHeaders: []string{common.RequestIDHeaderName},
		MaxAge:         86400,
	})

	return chain(mux, s.requestID, s.logRequests, s.recoverPanics, c.Handler, s.limitBody)
}
