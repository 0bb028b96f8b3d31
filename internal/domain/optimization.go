package domain

import "strings"

const (
	DefaultPlatform = "general"
	DefaultGoal     = "engagement"
)

type OptimizationRequest struct {
	Prompt   string `json:"prompt"`
	Platform string `json:"platform"`
	Goal     string `json:"goal"`
}

func (r *OptimizationRequest) ApplyDefaults() {
	if strings.TrimSpace(r.Platform) == "" {
		r.Platform = DefaultPlatform
	}
	if strings.TrimSpace(r.Goal) == "" {
		r.Goal = DefaultGoal
	}
}

type OptimizationResponse struct {
	Success         bool     `json:"success"`
	OriginalPrompt  string   `json:"original_prompt,omitempty"`
	Platform        string   `json:"platform,omitempty"`
	Goal            string   `json:"goal,omitempty"`
	Strategy        string   `json:"strategy,omitempty"`
	OptimizedPrompt string   `json:"optimized_prompt,omitempty"`
	Tips            []string `json:"tips,omitempty"`
	Error           string   `json:"error,omitempty"`
	Code            string   `json:"code,omitempty"`
}

// OptimizationOptions lista as plataformas e objetivos conhecidos pelo otimizador
type OptimizationOptions struct {
	Platforms map[string][]string `json:"platforms"`
	Goals     map[string]string   `json:"goals"`
}
