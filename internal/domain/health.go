package domain

import "time"

type HealthResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Version   string                  `json:"version"`
	Features  []string                `json:"features"`
	Providers map[string]*ProbeResult `json:"providers,omitempty"`
}

// ProbeResult guarda o último teste de disponibilidade de um provedor
type ProbeResult struct {
	Reachable  bool      `json:"reachable"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
	DurationMs int64     `json:"duration_ms"`
}
