package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/internal/domain"
)

// Funcionalidades anunciadas no health
var healthFeatures = []string{
	"overseas content generation",
	"multi-model AI integration",
	"GEO optimization",
}

// HealthcheckHandler é o liveness usado pela plataforma de deploy
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// Health retorna o status estático do serviço e o último resultado da verificação dos provedores
func Health(version string, probe ProviderProbe) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := &domain.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   version,
			Features:  healthFeatures,
		}

		if probe != nil {
			if snapshot := probe.Snapshot(); len(snapshot) > 0 {
				resp.Providers = snapshot
			}
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
