package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
	"github.com/vfg2006/geo-content-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody decodifica o corpo JSON e devolve o código de erro da API em caso de falha.
// O corpo precisa conter exatamente um valor JSON.
func decodeBody(r *http.Request, dst any) (string, error) {
	if r.Body == nil {
		return apiErrors.ErrInvalidRequest, errors.New("request body is required")
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apiErrors.ErrPayloadTooLarge, errors.New("request body too large")
		}
		return apiErrors.ErrInvalidFormat, errors.New("failed to read request body")
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return apiErrors.ErrInvalidRequest, errors.New("request body is required")
	}

	// Unmarshal rejeita bytes restantes após o primeiro valor
	if err := json.Unmarshal(data, dst); err != nil {
		return apiErrors.ErrInvalidFormat, errors.New("invalid JSON body")
	}

	return "", nil
}
