package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"helping-hands/volunteerhub/internal/api"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/middleware"
)

// NewRouter builds the HTTP handler over already initialized dependencies.
func NewRouter(deps *api.Dependencies) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware; Authenticate runs before metrics so request logs carry the caller
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.Authenticate(deps.Services.Tokens))
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	handlers := api.NewHandlers(deps)

	r.Get("/healthCheck", handlers.HealthCheckHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics.Gatherer, promhttp.HandlerOpts{}))

	RegisterAPIRoutes(r, handlers, publicLimiter(deps))

	logging.Info("Router initialized with auth, metrics and logging middleware")
	return r
}

// publicLimiter throttles the unauthenticated endpoints. A non-positive rate
// disables it.
func publicLimiter(deps *api.Dependencies) func(http.Handler) http.Handler {
	if deps.Config.RateLimitRPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	burst := deps.Config.RateLimitBurst
	if burst <= 0 {
		burst = deps.Config.RateLimitRPS
	}
	return middleware.NewRateLimiter(float64(deps.Config.RateLimitRPS), burst).Middleware
}
