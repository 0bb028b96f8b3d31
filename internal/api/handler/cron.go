package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/geo-content-api/internal/domain"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
	"github.com/vfg2006/geo-content-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeProviderProbe = "provider-probe"
)

// ProviderProbe é o agendador de verificação dos provedores visto pela camada HTTP
type ProviderProbe interface {
	TriggerManualProbe()
	GetStatus() map[string]any
	Snapshot() map[string]*domain.ProbeResult
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ProviderProbeService ProviderProbe
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeProviderProbe:
			if services.ProviderProbeService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação dos provedores não disponível", nil)
				return
			}
			services.ProviderProbeService.TriggerManualProbe()
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeProviderProbe, map[string]string{
				"type": cronType,
			})
			return
		}

		logger.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ProviderProbeService != nil {
			status[CronJobTypeProviderProbe] = services.ProviderProbeService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
