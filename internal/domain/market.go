// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// MarketProfile descreve um mercado de destino e as orientações de conteúdo para ele
type MarketProfile struct {
	Code               string   `json:"code" yaml:"code"`
	Name               string   `json:"name" yaml:"name"`
	Flag               string   `json:"flag" yaml:"flag"`
	Language           string   `json:"language" yaml:"language"`
	Currency           string   `json:"currency" yaml:"currency"`
	Timezone           string   `json:"timezone" yaml:"timezone"`
	CulturalTraits     []string `json:"cultural_traits" yaml:"cultural_traits"`
	ContentPreferences []string `json:"content_preferences" yaml:"content_preferences"`
	OptimizationTips   []string `json:"optimization_tips" yaml:"optimization_tips"`
}

// NormalizeMarketCode converte o código informado pelo cliente para a forma canônica do catálogo
func NormalizeMarketCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// MarketsResponse é o payload da listagem de mercados suportados
type MarketsResponse struct {
	Markets               map[string]*MarketProfile `json:"markets"`
	Count                 int                       `json:"count"`
	SupportedContentTypes []string                  `json:"supported_content_types"`
	SupportedTones        []string                  `json:"supported_tones"`
}
