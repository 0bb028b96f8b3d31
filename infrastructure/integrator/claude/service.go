package claude

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/claude/claudeclient"
	"github.com/vfg2006/geo-content-api/internal/domain"
)

type ClaudeIntegrator struct {
	Client claudeclient.Client
}

func New(client claudeclient.Client) *ClaudeIntegrator {
	return &ClaudeIntegrator{
		Client: client,
	}
}

func (s *ClaudeIntegrator) Name() string {
	return domain.ProviderClaude
}

func (s *ClaudeIntegrator) Generate(ctx context.Context, prompt string, market *domain.MarketProfile) (string, error) {
	text, err := s.Client.CreateMessage(ctx, domain.GenerationPromptTemplate.Render(prompt, market))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": domain.ProviderClaude,
			"market":   market.Code,
			"error":    err.Error(),
		}).Warn("claude: falha ao gerar conteúdo")
		return "", err
	}

	return text, nil
}

func (s *ClaudeIntegrator) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx)
}
