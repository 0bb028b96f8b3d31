package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/internal/api/handler"
	"github.com/vfg2006/geo-content-api/internal/api/handler/router"
	"github.com/vfg2006/geo-content-api/internal/config"
	"github.com/vfg2006/geo-content-api/internal/usecases/generating"
	"github.com/vfg2006/geo-content-api/internal/usecases/optimizing"
	"github.com/vfg2006/geo-content-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	cleanups   []func() error
}

func New(
	config *config.Config,
	contentGenerator generating.ContentGenerator,
	advisor optimizing.Advisor,
	providerProbe handler.ProviderProbe,
	cleanups ...func() error,
) (*Server, error) {
	if contentGenerator == nil || advisor == nil {
		return nil, fmt.Errorf("api: content generator and advisor are required")
	}

	cronServices := handler.CronJobServices{
		ProviderProbeService: providerProbe,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(config.App.Version, providerProbe)...),
		router.WithRoutes(handler.OverseasContent(contentGenerator)...),
		router.WithRoutes(handler.GeoOptimize(advisor)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		cleanups: cleanups,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")

	// Libera os clientes dos provedores só depois que as requisições em andamento terminaram
	logrus.Info("Executando operações de limpeza antes do desligamento")
	for _, cleanup := range s.cleanups {
		if err := cleanup(); err != nil {
			logrus.WithError(err).Warn("Erro durante a limpeza de recursos")
		}
	}

	return nil
}
