// Package catalog carrega as tabelas estáticas de referência (mercados e estratégias de otimização)
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/markets.yaml
var embeddedMarkets []byte

type marketsFile struct {
	SupportedContentTypes []string                `yaml:"supported_content_types"`
	SupportedTones        []string                `yaml:"supported_tones"`
	Markets               []*domain.MarketProfile `yaml:"markets"`
}

// MarketCatalog é somente leitura depois de carregado e pode ser compartilhado entre goroutines sem lock
type MarketCatalog struct {
	markets      map[string]*domain.MarketProfile
	order        []string
	contentTypes []string
	tones        []string
}

// LoadMarkets carrega o catálogo embutido ou, se path for informado, o arquivo YAML indicado
func LoadMarkets(path string) (*MarketCatalog, error) {
	if path == "" {
		return ParseMarkets(embeddedMarkets)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: reading markets file %s", path)
	}

	logrus.WithField("path", path).Info("Carregando catálogo de mercados a partir de arquivo")
	return ParseMarkets(data)
}

func ParseMarkets(data []byte) (*MarketCatalog, error) {
	var file marketsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "catalog: decoding markets")
	}

	if len(file.Markets) == 0 {
		return nil, errors.New("catalog: no markets defined")
	}

	c := &MarketCatalog{
		markets:      make(map[string]*domain.MarketProfile, len(file.Markets)),
		order:        make([]string, 0, len(file.Markets)),
		contentTypes: file.SupportedContentTypes,
		tones:        file.SupportedTones,
	}

	for _, market := range file.Markets {
		if err := validateMarket(market); err != nil {
			return nil, err
		}

		market.Code = domain.NormalizeMarketCode(market.Code)
		if _, exists := c.markets[market.Code]; exists {
			return nil, fmt.Errorf("catalog: duplicated market code %q", market.Code)
		}

		c.markets[market.Code] = market
		c.order = append(c.order, market.Code)
	}

	return c, nil
}

func validateMarket(market *domain.MarketProfile) error {
	if market == nil || domain.NormalizeMarketCode(market.Code) == "" {
		return errors.New("catalog: market without code")
	}
	if market.Name == "" {
		return fmt.Errorf("catalog: market %q without name", market.Code)
	}
	if len(market.CulturalTraits) == 0 || len(market.ContentPreferences) == 0 || len(market.OptimizationTips) == 0 {
		return fmt.Errorf("catalog: market %q must define cultural traits, content preferences and optimization tips", market.Code)
	}
	return nil
}

// Lookup busca um mercado pelo código, sem diferenciar maiúsculas e minúsculas.
// Retorna uma cópia para que o catálogo não seja alterado pelos chamadores.
func (c *MarketCatalog) Lookup(code string) (*domain.MarketProfile, bool) {
	market, ok := c.markets[domain.NormalizeMarketCode(code)]
	if !ok {
		return nil, false
	}
	return cloneMarket(market), true
}

// List retorna todos os mercados na ordem em que foram declarados
func (c *MarketCatalog) List() []*domain.MarketProfile {
	markets := make([]*domain.MarketProfile, 0, len(c.order))
	for _, code := range c.order {
		markets = append(markets, cloneMarket(c.markets[code]))
	}
	return markets
}

func (c *MarketCatalog) SupportedContentTypes() []string {
	return append([]string(nil), c.contentTypes...)
}

func (c *MarketCatalog) SupportedTones() []string {
	return append([]string(nil), c.tones...)
}

func cloneMarket(m *domain.MarketProfile) *domain.MarketProfile {
	clone := *m
	clone.CulturalTraits = append([]string(nil), m.CulturalTraits...)
	clone.ContentPreferences = append([]string(nil), m.ContentPreferences...)
	clone.OptimizationTips = append([]string(nil), m.OptimizationTips...)
	return &clone
}
