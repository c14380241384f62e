package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of the preview server
type HealthResponse struct {
	Status HealthStatus          `json:"status"`
	Page   ComponentHealthStatus `json:"page"`
}
