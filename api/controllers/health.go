package controllers

import (
	"net/http"
	"time"

	"github.com/agrisense-io/agrisense-backend/api/responses"
)

// Health reports liveness. No dependencies are probed; the endpoint exists
// so the dashboard can distinguish "API down" from "auth failed".
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"message":   "AgriSense API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
