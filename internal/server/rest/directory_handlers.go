package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

func createdStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// byID serves the single-row /<resource>/{id} routes.
func byID[T any](s *HTTPServer, res resource, get func(context.Context, int64) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err, res)
			return
		}
		v, err := get(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err, res)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func listAll[T any](s *HTTPServer, res resource, all func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := all(r.Context())
		if err != nil {
			s.writeError(w, r, err, res)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(items))
	}
}

func (s *HTTPServer) listCustomers(w http.ResponseWriter, r *http.Request) {
	listAll(s, customerResource, s.directory.ListCustomers)(w, r)
}

func (s *HTTPServer) getCustomer(w http.ResponseWriter, r *http.Request) {
	byID(s, customerResource, s.directory.GetCustomer)(w, r)
}

func (s *HTTPServer) createCustomer(w http.ResponseWriter, r *http.Request) {
	var in models.Customer
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, customerResource)
		return
	}
	c, created, err := s.directory.CreateCustomer(r.Context(), &in)
	if err != nil {
		s.writeError(w, r, err, customerResource)
		return
	}
	writeJSON(w, createdStatus(created), c)
}

func (s *HTTPServer) listAdmins(w http.ResponseWriter, r *http.Request) {
	listAll(s, adminResource, s.directory.ListAdmins)(w, r)
}

func (s *HTTPServer) getAdmin(w http.ResponseWriter, r *http.Request) {
	byID(s, adminResource, s.directory.GetAdmin)(w, r)
}

func (s *HTTPServer) createAdmin(w http.ResponseWriter, r *http.Request) {
	var in models.Admin
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, adminResource)
		return
	}
	a, created, err := s.directory.CreateAdmin(r.Context(), &in)
	if err != nil {
		s.writeError(w, r, err, adminResource)
		return
	}
	writeJSON(w, createdStatus(created), a)
}

type companyUpdate struct {
	Cname      *string `json:"cname"`
	Caddress   *string `json:"caddress"`
	Cgst       *string `json:"cgst"`
	Cphone     *string `json:"cphone"`
	CownerName *string `json:"cowner_name"`
}

func (s *HTTPServer) listCompanies(w http.ResponseWriter, r *http.Request) {
	listAll(s, companyResource, s.directory.ListCompanies)(w, r)
}

func (s *HTTPServer) getCompany(w http.ResponseWriter, r *http.Request) {
	byID(s, companyResource, s.directory.GetCompany)(w, r)
}

func (s *HTTPServer) createCompany(w http.ResponseWriter, r *http.Request) {
	var in models.Company
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, companyResource)
		return
	}
	c, created, err := s.directory.CreateCompany(r.Context(), &in)
	if err != nil {
		s.writeError(w, r, err, companyResource)
		return
	}
	writeJSON(w, createdStatus(created), c)
}

func (s *HTTPServer) updateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err, companyResource)
		return
	}
	var in companyUpdate
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, companyResource)
		return
	}
	c, err := s.directory.UpdateCompany(r.Context(), id, models.CompanyPatch(in))
	if err != nil {
		s.writeError(w, r, err, companyResource)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *HTTPServer) deleteCompany(w http.ResponseWriter, r *http.Request) {
	byID(s, companyResource, s.directory.DeleteCompany)(w, r)
}

func (s *HTTPServer) listProjects(w http.ResponseWriter, r *http.Request) {
	listAll(s, projectResource, s.directory.ListProjects)(w, r)
}

func (s *HTTPServer) getProject(w http.ResponseWriter, r *http.Request) {
	byID(s, projectResource, s.directory.GetProject)(w, r)
}

func (s *HTTPServer) createProject(w http.ResponseWriter, r *http.Request) {
	var in models.Project
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, projectResource)
		return
	}
	p, err := s.directory.CreateProject(r.Context(), &in)
	if err != nil {
		s.writeError(w, r, err, projectResource)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
