package domain

import (
	"fmt"
	"strings"
)

// PromptTemplate define como cada provedor enriquece o prompt original com os dados do mercado
type PromptTemplate struct {
	SourceLabel string
	Instruction string
}

var (
	GenerationPromptTemplate = PromptTemplate{
		SourceLabel: "Original prompt",
		Instruction: "Generate content suited to the market characteristics above.",
	}

	OptimizationPromptTemplate = PromptTemplate{
		SourceLabel: "Original content",
		Instruction: "Optimize the content above so that it better fits the target market.",
	}
)

// Render monta o prompt aumentado. A saída depende apenas do prompt e do perfil do mercado.
func (t PromptTemplate) Render(prompt string, market *MarketProfile) string {
	return fmt.Sprintf(
		"Target market: %s %s\nCultural traits: %s\nContent preferences: %s\nOptimization tips: %s\n\n%s: %s\n\n%s",
		market.Name,
		market.Flag,
		strings.Join(market.CulturalTraits, ", "),
		strings.Join(market.ContentPreferences, ", "),
		strings.Join(market.OptimizationTips, ", "),
		t.SourceLabel,
		prompt,
		t.Instruction,
	)
}
