package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/server/services"
)

var (
	errInvalidID   = errors.New("invalid id")
	errInvalidJSON = errors.New("invalid json")
	errNotFound    = errors.New("route not found")
)

// resource carries the codes whose wording depends on the route.
type resource struct {
	notFound string
	invalid  string
	noFields string
	// allowed is echoed back with the noFields code.
	allowed []string
}

var (
	userResource     = resource{notFound: "user_not_found", invalid: "all_fields_required", noFields: "no_updatable_fields", allowed: services.UpdatableUserFields}
	customerResource = resource{notFound: "customer_not_found", invalid: "all_fields_required"}
	adminResource    = resource{notFound: "admin_not_found", invalid: "all_fields_required"}
	companyResource  = resource{notFound: "company_not_found", invalid: "required_fields_missing", noFields: "no_fields_to_update", allowed: companyUpdatableFields}
	projectResource  = resource{notFound: "cprojects_not_found", invalid: "all_fields_required"}
	loginResource    = resource{invalid: "email_and_password_required"}
	noResource       = resource{}
)

var companyUpdatableFields = []string{"cname", "caddress", "cgst", "cphone", "cowner_name"}

type errorBody struct {
	Error   string   `json:"error"`
	Allowed []string `json:"allowed,omitempty"`
}

// statusFor maps err to an HTTP status and a stable error code.
func statusFor(err error, res resource) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, errInvalidID):
		return http.StatusBadRequest, "invalid_id"
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, "invalid_json"
	case errors.Is(err, errNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, common.ErrTokenMissing):
		return http.StatusUnauthorized, "token_missing"
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusForbidden, "invalid_or_expired_token"
	case errors.Is(err, common.ErrInvalidRefreshToken):
		return http.StatusForbidden, "invalid_refresh_token"
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusForbidden, "refresh_token_expired"
	case errors.Is(err, common.ErrRefreshTokenRequired):
		return http.StatusBadRequest, "refresh_token_required"
	case errors.Is(err, common.ErrAdminAccessRequired):
		return http.StatusForbidden, "admin_access_required"
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, common.ErrDuplicateKey):
		return http.StatusConflict, "duplicate_key"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, orDefault(res.notFound, "not_found")
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, orDefault(res.invalid, "validation_failed")
	case errors.Is(err, common.ErrNoFields):
		return http.StatusBadRequest, orDefault(res.noFields, "no_fields_to_update")
	default:
		return http.StatusInternalServerError, "internal_server_error"
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client is gone if this fails
	json.NewEncoder(w).Encode(v)
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error, res resource) {
	status, code := statusFor(err, res)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
	body := errorBody{Error: code}
	if errors.Is(err, common.ErrNoFields) {
		body.Allowed = res.allowed
	}
	writeJSON(w, status, body)
}
