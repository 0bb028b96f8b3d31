package handler

import (
	"net/http"

	"github.com/vfg2006/geo-content-api/internal/domain"
	"github.com/vfg2006/geo-content-api/internal/usecases/optimizing"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
	"github.com/vfg2006/geo-content-api/pkg/log"
)

func OptimizeContent(advisor optimizing.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.OptimizationRequest
		if code, err := decodeBody(r, &req); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição de otimização inválido")
			writeJSON(w, r, apiErrors.StatusFor(code), &domain.OptimizationResponse{
				Success: false,
				Error:   err.Error(),
				Code:    code,
			})
			return
		}

		resp := advisor.Optimize(&req)
		if !resp.Success {
			writeJSON(w, r, apiErrors.StatusFor(resp.Code), resp)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func OptimizationOptions(advisor optimizing.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, advisor.Options())
	})
}
