package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/vfg2006/geo-content-api/internal/domain"
	"github.com/vfg2006/geo-content-api/internal/usecases/generating"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
	"github.com/vfg2006/geo-content-api/pkg/log"
)

// GenerateContent distribui o prompt para os provedores. Falhas de provedores individuais
// respondem 200 com o erro dentro de "results"; só a falha da requisição inteira muda o status.
func GenerateContent(service generating.ContentGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.ContentRequest
		if code, err := decodeBody(r, &req); err != nil {
			logger.WithError(err).Warn("Corpo da requisição de geração inválido")
			writeJSON(w, r, apiErrors.StatusFor(code), domain.NewFailedContentResponse(err.Error(), code, time.Now()))
			return
		}

		resp, err := service.Generate(r.Context(), &req)
		if err != nil {
			apiErr := apiErrors.FromError(err, apiErrors.ErrOrchestration)

			var genErr *generating.GenerationError
			if errors.As(err, &genErr) {
				apiErr.Code = genErr.Code
			}

			logger.WithError(err).WithField("market", req.TargetMarket).Warn("Falha na geração de conteúdo")
			writeJSON(w, r, apiErrors.StatusFor(apiErr.Code), domain.NewFailedContentResponse(apiErr.Message, apiErr.Code, time.Now()))
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func ListMarkets(service generating.ContentGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Markets())
	})
}
