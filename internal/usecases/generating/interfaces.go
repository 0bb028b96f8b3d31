package generating

import (
	"context"

	"github.com/vfg2006/geo-content-api/internal/domain"
)

// Provider define um provedor de geração de texto. Generate recebe o prompt
// original e o mercado resolvido, monta o próprio prompt aumentado e retorna o texto gerado.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string, market *domain.MarketProfile) (string, error)
}

// MarketCatalog define o catálogo somente leitura de mercados
type MarketCatalog interface {
	Lookup(code string) (*domain.MarketProfile, bool)
	List() []*domain.MarketProfile
	SupportedContentTypes() []string
	SupportedTones() []string
}

// ContentGenerator é a interface exposta para a camada HTTP
type ContentGenerator interface {
	// Generate distribui o prompt para todos os provedores e agrega os resultados
	Generate(ctx context.Context, req *domain.ContentRequest) (*domain.ContentResponse, error)

	// Markets retorna os mercados suportados com os tipos de conteúdo e tons aceitos
	Markets() *domain.MarketsResponse
}
