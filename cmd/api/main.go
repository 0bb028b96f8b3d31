package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/infrastructure/catalog"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/claude"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/claude/claudeclient"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/deepseek"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/deepseek/deepseekclient"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/geo-content-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/geo-content-api/internal/api"
	"github.com/vfg2006/geo-content-api/internal/config"
	"github.com/vfg2006/geo-content-api/internal/scheduler"
	"github.com/vfg2006/geo-content-api/internal/usecases/generating"
	"github.com/vfg2006/geo-content-api/internal/usecases/optimizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	// Sem storage explícito, as credenciais ausentes vêm do Render quando RENDER_SERVICE_ID está definido
	cfg, err := config.NewConfig(nil)
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	markets, err := catalog.LoadMarkets(cfg.Catalog.MarketsFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o catálogo de mercados")
	}

	strategies, err := catalog.LoadStrategies()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as estratégias de otimização")
	}

	logrus.WithFields(logrus.Fields{
		"markets":      len(markets.List()),
		"markets_file": cfg.Catalog.MarketsFile,
	}).Info("Catálogos carregados com sucesso")

	geminiClient, err := geminiclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do Gemini")
	}

	geminiIntegrator := gemini.New(geminiClient)
	claudeIntegrator := claude.New(claudeclient.NewClient(cfg))
	deepseekIntegrator := deepseek.New(deepseekclient.NewClient(cfg))

	// A ordem define apenas a ordem dos logs; a resposta é indexada pelo nome do provedor
	contentService, err := generating.NewService(
		markets,
		[]generating.Provider{geminiIntegrator, claudeIntegrator, deepseekIntegrator},
		cfg.Providers.Timeout,
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o serviço de geração de conteúdo")
	}

	optimizationService := optimizing.NewService(strategies)

	providerProbeService := scheduler.NewProviderProbeService(
		[]scheduler.Pinger{geminiIntegrator, claudeIntegrator, deepseekIntegrator},
		cfg,
	)

	// Inicia o agendador em background
	if err := providerProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação dos provedores")
	} else {
		logrus.Info("Agendador de verificação dos provedores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		contentService,
		optimizationService,
		providerProbeService,
		geminiClient.Close,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
