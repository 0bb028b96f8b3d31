package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadTooLarge     = "VAL_004" // Corpo da requisição acima do limite
	ErrRouteNotFound       = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método HTTP não suportado pela rota

	// Erros de mercado
	ErrMarketNotSupported = "MKT_001" // Mercado não suportado pelo catálogo

	// Erros de provedores (aparecem apenas dentro de "results", nunca como falha da requisição)
	ErrProviderFailure = "PRV_001" // Provedor retornou erro
	ErrProviderTimeout = "PRV_002" // Provedor excedeu o tempo limite
	ErrProviderPanic   = "PRV_003" // Falha inesperada dentro do adaptador

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrOrchestration   = "SRV_002" // Falha na orquestração das chamadas
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrUnknownJob      = "SRV_004" // Job agendado desconhecido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrMarketNotSupported:  http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrOrchestration:       http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrUnknownJob:          http.StatusNotFound,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
