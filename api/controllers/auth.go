package controllers

import (
	"net/http"

	"github.com/agrisense-io/agrisense-backend/api/responses"
	"github.com/agrisense-io/agrisense-backend/api/validators"
	"github.com/agrisense-io/agrisense-backend/internal/auth"
	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
	"github.com/agrisense-io/agrisense-backend/pkg/logger"
	"github.com/agrisense-io/agrisense-backend/pkg/metrics"
)

// AuthRegister wires the registration endpoint into the HTTP layer.
func AuthRegister(svc auth.Service, logg *logger.Logger, m *metrics.HTTPMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			m.IncAuthOutcome("register", "failure")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Register(r.Context(), body)
		if err != nil {
			m.IncAuthOutcome("register", "failure")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncAuthOutcome("register", "success")
		responses.WriteJSON(w, http.StatusCreated, result)
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger, m *metrics.HTTPMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			m.IncAuthOutcome("login", "failure")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			m.IncAuthOutcome("login", "failure")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncAuthOutcome("login", "success")
		responses.WriteJSON(w, http.StatusOK, result)
	}
}
