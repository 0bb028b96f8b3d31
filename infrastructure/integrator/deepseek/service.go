package deepseek

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/deepseek/deepseekclient"
	"github.com/vfg2006/geo-content-api/internal/domain"
)

// DeepSeekIntegrator atua como otimizador: recebe o mesmo prompt original,
// mas com a instrução de adaptar o conteúdo ao mercado.
type DeepSeekIntegrator struct {
	Client deepseekclient.Client
}

func New(client deepseekclient.Client) *DeepSeekIntegrator {
	return &DeepSeekIntegrator{
		Client: client,
	}
}

func (s *DeepSeekIntegrator) Name() string {
	return domain.ProviderDeepSeek
}

func (s *DeepSeekIntegrator) Generate(ctx context.Context, prompt string, market *domain.MarketProfile) (string, error) {
	text, err := s.Client.ChatCompletion(ctx, domain.OptimizationPromptTemplate.Render(prompt, market))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderDeepSeek,
			"market":   market.Code,
			"error":    err.Error(),
		}).Warn("deepseek: falha ao otimizar conteúdo")
		return "", err
	}

	return text, nil
}

func (s *DeepSeekIntegrator) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx)
}
