package optimizing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/geo-content-api/internal/domain"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
)

// Valores usados quando a plataforma ou o objetivo não estão na tabela
const (
	FallbackStrategy = "Generic optimization strategy"
	FallbackTip      = "Generic optimization tip"
)

const optimizedPromptTemplate = "%s\n\nOptimization strategy: %s\n\nPlease optimize the content according to the strategy above."

// StrategyCatalog define a tabela estática de estratégias e dicas
type StrategyCatalog interface {
	Strategy(platform, goal string) (string, bool)
	Tips(platform string) ([]string, bool)
	Options() *domain.OptimizationOptions
}

// Advisor é a interface exposta para a camada HTTP
type Advisor interface {
	// Optimize resolve a estratégia e monta o prompt otimizado. Não chama provedores externos.
	Optimize(req *domain.OptimizationRequest) *domain.OptimizationResponse

	// Options lista as plataformas e objetivos conhecidos
	Options() *domain.OptimizationOptions
}

type Service struct {
	catalog StrategyCatalog
}

func NewService(catalog StrategyCatalog) *Service {
	return &Service{
		catalog: catalog,
	}
}

// Optimize é uma função pura da entrada: a mesma requisição sempre gera a mesma resposta.
// Entrada inválida vira uma resposta com Success=false, nunca um erro.
func (s *Service) Optimize(req *domain.OptimizationRequest) *domain.OptimizationResponse {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return &domain.OptimizationResponse{
			Success: false,
			Error:   "prompt is required",
			Code:    apiErrors.ErrMissingRequiredData,
		}
	}

	req.ApplyDefaults()

	platform := normalizeKey(req.Platform)
	goal := normalizeKey(req.Goal)

	strategy, ok := s.catalog.Strategy(platform, goal)
	if !ok {
		strategy = FallbackStrategy
	}

	tips, ok := s.catalog.Tips(platform)
	if !ok {
		tips = []string{FallbackTip}
	}

	return &domain.OptimizationResponse{
		Success:         true,
		OriginalPrompt:  req.Prompt,
		Platform:        req.Platform,
		Goal:            req.Goal,
		Strategy:        strategy,
		OptimizedPrompt: fmt.Sprintf(optimizedPromptTemplate, req.Prompt, strategy),
		Tips:            tips,
	}
}

func (s *Service) Options() *domain.OptimizationOptions {
	return s.catalog.Options()
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
