package controllers

import (
	"net/http"

	"github.com/agrisense-io/agrisense-backend/api/responses"
	"github.com/agrisense-io/agrisense-backend/api/validators"
	"github.com/agrisense-io/agrisense-backend/internal/telemetry"
	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
	"github.com/agrisense-io/agrisense-backend/pkg/logger"
)

const realtimeWindow = 20

// SensorData lists readings filtered by sensorId/type, newest first.
func SensorData(repo *telemetry.ReadingRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", telemetry.DefaultLimit, 1, telemetry.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		skip, err := validators.ParseQueryInt(r, "skip", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := telemetry.ReadingFilter{
			SensorID:   validators.QueryString(r, "sensorId", 64),
			SensorType: validators.QueryString(r, "type", 64),
			Limit:      limit,
			Skip:       skip,
		}

		rows, err := repo.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch sensor data"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, rows)
	}
}

// RealtimeData returns the newest readings in chronological order so the
// client can append without re-sorting.
func RealtimeData(repo *telemetry.ReadingRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.Recent(r.Context(), realtimeWindow)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch realtime data"))
			return
		}

		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}

		responses.WriteJSON(w, http.StatusOK, rows)
	}
}

// HistoryData lists readings filtered by crop and an inclusive date range.
// The range applies only when both bounds are present.
func HistoryData(repo *telemetry.ReadingRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", telemetry.DefaultLimit, 1, telemetry.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		skip, err := validators.ParseQueryInt(r, "skip", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		startDate, err := validators.ParseQueryTime(r, "startDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		endDate, err := validators.ParseQueryTime(r, "endDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := telemetry.ReadingFilter{
			Crop:  validators.QueryString(r, "crop", 64),
			Limit: limit,
			Skip:  skip,
		}
		if startDate != nil && endDate != nil {
			filter.StartDate = startDate
			filter.EndDate = endDate
		}

		rows, err := repo.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch history data"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, rows)
	}
}
