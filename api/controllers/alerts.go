package controllers

import (
	"net/http"

	"github.com/agrisense-io/agrisense-backend/api/responses"
	"github.com/agrisense-io/agrisense-backend/api/validators"
	"github.com/agrisense-io/agrisense-backend/internal/dashboard"
	"github.com/agrisense-io/agrisense-backend/internal/telemetry"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
	"github.com/agrisense-io/agrisense-backend/pkg/logger"
)

// Alerts lists alerts filtered by severity/resolved, newest first.
func Alerts(repo *telemetry.AlertRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", telemetry.DefaultLimit, 1, telemetry.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := telemetry.AlertFilter{
			Resolved: validators.ParseQueryBool(r, "resolved"),
			Limit:    limit,
		}

		if raw := validators.QueryString(r, "severity", 16); raw != "" {
			severity, err := enums.ParseAlertSeverity(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid severity"))
				return
			}
			filter.Severity = severity
		}

		rows, err := repo.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch alerts"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, rows)
	}
}

// Stats returns the dashboard's headline aggregates.
func Stats(svc *telemetry.StatsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Collect(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, stats)
	}
}

// Summary computes the classification summary over the newest readings.
func Summary(repo *telemetry.ReadingRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", telemetry.DefaultLimit, 1, telemetry.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.List(r.Context(), telemetry.ReadingFilter{Limit: limit})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch summary data"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, dashboard.Summarize(rows))
	}
}
