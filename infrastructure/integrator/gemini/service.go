package gemini

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/geo-content-api/internal/domain"
)

type GeminiIntegrator struct {
	Client geminiclient.Client
}

func New(client geminiclient.Client) *GeminiIntegrator {
	return &GeminiIntegrator{
		Client: client,
	}
}

func (s *GeminiIntegrator) Name() string {
	return domain.ProviderGemini
}

// Generate gera conteúdo localizado a partir do prompt enriquecido com o perfil do mercado
func (s *GeminiIntegrator) Generate(ctx context.Context, prompt string, market *domain.MarketProfile) (string, error) {
	text, err := s.Client.GenerateContent(ctx, domain.GenerationPromptTemplate.Render(prompt, market))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderGemini,
			"market":   market.Code,
			"error":    err.Error(),
		}).Warn("gemini: falha ao gerar conteúdo")
		return "", err
	}

	return text, nil
}

func (s *GeminiIntegrator) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx)
}
