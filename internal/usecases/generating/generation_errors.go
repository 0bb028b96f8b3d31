package generating

import (
	"errors"
	"fmt"
)

// Erros que fazem a requisição inteira falhar. Falhas de provedores nunca chegam aqui.
var (
	// Erros de validação
	ErrPromptRequired = errors.New("prompt is required")

	// Erros de mercado
	ErrMarketNotSupported = errors.New("market not supported")

	// Erros de orquestração
	ErrOrchestrationFault = errors.New("orchestration fault")
)

// GenerationError é um erro com o código de API correspondente
type GenerationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *GenerationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGenerationError(err error, code string, details string) *GenerationError {
	return &GenerationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
