package domain

import (
	"strings"
	"time"
)

// Valores padrão de uma requisição de geração
const (
	DefaultTargetMarket = "USA"
	DefaultContentType  = "social_media"
	DefaultTone         = "professional"
	DefaultLength       = "medium"
)

// Identificadores dos provedores configurados
const (
	ProviderGemini   = "gemini"
	ProviderClaude   = "claude"
	ProviderDeepSeek = "deepseek"
)

type ContentRequest struct {
	Prompt       string `json:"prompt"`
	TargetMarket string `json:"target_market"`
	ContentType  string `json:"content_type"`
	Tone         string `json:"tone"`
	Length       string `json:"length"`
}

// ApplyDefaults preenche os campos opcionais ausentes
func (r *ContentRequest) ApplyDefaults() {
	if strings.TrimSpace(r.TargetMarket) == "" {
		r.TargetMarket = DefaultTargetMarket
	}
	if strings.TrimSpace(r.ContentType) == "" {
		r.ContentType = DefaultContentType
	}
	if strings.TrimSpace(r.Tone) == "" {
		r.Tone = DefaultTone
	}
	if strings.TrimSpace(r.Length) == "" {
		r.Length = DefaultLength
	}
}

// ProviderResult é o resultado de uma chamada a um provedor.
// OK=true implica Content preenchido; OK=false implica Error preenchido.
type ProviderResult struct {
	Provider   string `json:"provider"`
	OK         bool   `json:"ok"`
	Content    string `json:"content,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrorCode  string `json:"error_code,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Text retorna o conteúdo gerado ou a mensagem de erro, no formato legado do campo "content"
func (r ProviderResult) Text() string {
	if r.OK {
		return r.Content
	}
	return r.Error
}

type ContentResponse struct {
	Success          bool                      `json:"success"`
	RequestID        string                    `json:"request_id,omitempty"`
	Market           *MarketProfile            `json:"market,omitempty"`
	Content          map[string]string         `json:"content,omitempty"`
	Results          map[string]ProviderResult `json:"results,omitempty"`
	OptimizationTips []string                  `json:"optimization_tips,omitempty"`
	GeneratedAt      time.Time                 `json:"generated_at"`
	Error            string                    `json:"error,omitempty"`
	Code             string                    `json:"code,omitempty"`
}

// NewFailedContentResponse monta a resposta de falha da requisição inteira, sem conteúdo
func NewFailedContentResponse(message, code string, at time.Time) *ContentResponse {
	return &ContentResponse{
		Success:     false,
		Error:       message,
		Code:        code,
		GeneratedAt: at,
	}
}
