package api

import (
	"context"
	"net/http"
	"time"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/models/entities"
)

const healthTimeout = 2 * time.Second

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Reports database and, when enabled, Redis reachability.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func (h *Handlers) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)

		services["database"] = probe("Database connected", func() error {
			return h.deps.DB.Ping(ctx)
		})
		if h.deps.Redis != nil {
			services["redis"] = probe("Redis connected", func() error {
				return h.deps.Redis.Ping(ctx).Err()
			})
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		resp := entities.HealthCheckResponse{
			Services:  services,
			Status:    overallStatus,
			UpSince:   h.deps.UpSince,
			Uptime:    now.Sub(h.deps.UpSince).Round(time.Second).String(),
			CheckedAt: now.UTC(),
		}
		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		common.RespondJSON(w, code, resp)
	}
}

func probe(okDetails string, ping func() error) entities.ServiceStatus {
	if err := ping(); err != nil {
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}
	return entities.ServiceStatus{Status: "ok", Details: okDetails}
}
