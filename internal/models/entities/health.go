package entities

import "time"

// ServiceStatus is the probe result for one backing service.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthCheckResponse is the body of GET /healthCheck.
type HealthCheckResponse struct {
	Status    string                   `json:"status"`
	Services  map[string]ServiceStatus `json:"services"`
	UpSince   time.Time                `json:"up_since"`
	Uptime    string                   `json:"uptime"`
	CheckedAt time.Time                `json:"checked_at"`
}
