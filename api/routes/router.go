package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agrisense-io/agrisense-backend/api/controllers"
	"github.com/agrisense-io/agrisense-backend/api/middleware"
	"github.com/agrisense-io/agrisense-backend/api/responses"
	"github.com/agrisense-io/agrisense-backend/internal/auth"
	"github.com/agrisense-io/agrisense-backend/internal/telemetry"
	"github.com/agrisense-io/agrisense-backend/pkg/config"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	"github.com/agrisense-io/agrisense-backend/pkg/logger"
	"github.com/agrisense-io/agrisense-backend/pkg/metrics"
	"github.com/agrisense-io/agrisense-backend/pkg/redis"
)

// NewRouter assembles the full HTTP surface. A nil redisClient disables auth
// rate limiting, and a nil gatherer disables the /metrics endpoint.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	authService auth.Service,
	readingRepo *telemetry.ReadingRepository,
	alertRepo *telemetry.AlertRepository,
	statsService *telemetry.StatsService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	rateLimit := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if redisClient == nil {
			return middleware.AuthRateLimit(policy, nil, logg)
		}
		return middleware.AuthRateLimit(policy, redisClient, logg)
	}

	r.Get("/api/health", controllers.Health())

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(rateLimit(registerPolicy)).Post("/register", controllers.AuthRegister(authService, logg, httpMetrics))
		r.With(rateLimit(loginPolicy)).Post("/login", controllers.AuthLogin(authService, logg, httpMetrics))
	})

	r.Route("/api/data", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/sensor", controllers.SensorData(readingRepo, logg))
		r.Get("/realtime", controllers.RealtimeData(readingRepo, logg))
		r.Get("/alerts", controllers.Alerts(alertRepo, logg))
		r.Get("/stats", controllers.Stats(statsService, logg))
		r.Get("/summary", controllers.Summary(readingRepo, logg))

		r.With(middleware.RequireRoles(
			logg,
			enums.UserRoleResearcher,
			enums.UserRoleDataAnalyst,
			enums.UserRoleAgriEngineer,
		)).Get("/history", controllers.HistoryData(readingRepo, logg))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusNotFound, map[string]string{
			"message": "API endpoint not found",
			"path":    r.URL.Path,
		})
	})

	return r
}
