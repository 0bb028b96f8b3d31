package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/internal/config"
	"github.com/vfg2006/geo-content-api/internal/domain"
)

// Pinger verifica se um provedor está acessível sem gerar conteúdo
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// ProviderProbeConfig representa a configuração do agendador de verificação dos provedores
type ProviderProbeConfig struct {
	CronSchedule string
	Timeout      time.Duration
	Enabled      bool
}

// ProviderProbeService verifica periodicamente a disponibilidade dos provedores.
// O resultado é apenas informativo e nunca interfere na geração de conteúdo.
type ProviderProbeService struct {
	scheduler            *gocron.Scheduler
	config               ProviderProbeConfig
	pingers              []Pinger
	probeRunning         bool
	probeMutex           sync.Mutex
	snapshotMutex        sync.RWMutex
	snapshot             map[string]*domain.ProbeResult
	lastProbeStartedAt   time.Time
	lastProbeCompletedAt time.Time
}

func NewProviderProbeService(pingers []Pinger, appConfig *config.Config) *ProviderProbeService {
	probeConfig := ProviderProbeConfig{
		CronSchedule: appConfig.ProviderProbe.CronSchedule,
		Timeout:      appConfig.Providers.Timeout,
		Enabled:      appConfig.ProviderProbe.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"timeout":       probeConfig.Timeout.String(),
		"probe_enabled": probeConfig.Enabled,
		"providers":     len(pingers),
	}).Info("Configuração do agendador de verificação dos provedores carregada")

	return &ProviderProbeService{
		scheduler: scheduler,
		config:    probeConfig,
		pingers:   pingers,
		snapshot:  make(map[string]*domain.ProbeResult, len(pingers)),
	}
}

// Start inicia o agendador
func (s *ProviderProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação dos provedores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação dos provedores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probeAllProviders(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação dos provedores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação dos provedores")
		s.scheduler.Stop()
	}()

	return nil
}

// probeAllProviders testa todos os provedores em paralelo e atualiza o snapshot.
// Retorna false quando outra verificação já está em andamento.
func (s *ProviderProbeService) probeAllProviders(ctx context.Context) bool {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Verificação dos provedores já em andamento, ignorando")
		return false
	}
	s.probeRunning = true
	s.lastProbeStartedAt = time.Now()
	s.probeMutex.Unlock()

	defer func() {
		s.probeMutex.Lock()
		s.probeRunning = false
		s.lastProbeCompletedAt = time.Now()
		s.probeMutex.Unlock()
	}()

	results := make([]*domain.ProbeResult, len(s.pingers))

	wg := sync.WaitGroup{}
	wg.Add(len(s.pingers))

	for i, pinger := range s.pingers {
		go func(i int, pinger Pinger) {
			defer wg.Done()
			results[i] = s.probe(ctx, pinger)
		}(i, pinger)
	}

	wg.Wait()

	s.snapshotMutex.Lock()
	for i, pinger := range s.pingers {
		s.snapshot[pinger.Name()] = results[i]
	}
	s.snapshotMutex.Unlock()

	return true
}

func (s *ProviderProbeService) probe(ctx context.Context, pinger Pinger) (result *domain.ProbeResult) {
	start := time.Now()
	result = &domain.ProbeResult{CheckedAt: start}

	probeCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			result.Reachable = false
			result.Error = fmt.Sprintf("unexpected panic: %v", r)
		}
		result.DurationMs = time.Since(start).Milliseconds()
	}()

	if err := pinger.Ping(probeCtx); err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": pinger.Name(),
			"error":    err.Error(),
		}).Warn("Provedor indisponível na verificação")
		result.Error = err.Error()
		return result
	}

	result.Reachable = true
	return result
}

// TriggerManualProbe dispara uma verificação fora do agendamento
func (s *ProviderProbeService) TriggerManualProbe() {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Verificação dos provedores já em andamento, ignorando solicitação manual")
		return
	}
	s.probeMutex.Unlock()

	logrus.Info("Iniciando verificação manual dos provedores")
	go s.probeAllProviders(context.Background())
}

// Snapshot retorna uma cópia do último resultado conhecido de cada provedor
func (s *ProviderProbeService) Snapshot() map[string]*domain.ProbeResult {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()

	snapshot := make(map[string]*domain.ProbeResult, len(s.snapshot))
	for name, result := range s.snapshot {
		copied := *result
		snapshot[name] = &copied
	}
	return snapshot
}

// GetStatus retorna o status atual do agendador
func (s *ProviderProbeService) GetStatus() map[string]any {
	s.probeMutex.Lock()
	defer s.probeMutex.Unlock()

	return map[string]any{
		"probe_enabled":           s.config.Enabled,
		"probe_cron":              s.config.CronSchedule,
		"probe_timeout":           s.config.Timeout.String(),
		"probe_running":           s.probeRunning,
		"last_probe_started_at":   s.lastProbeStartedAt,
		"last_probe_completed_at": s.lastProbeCompletedAt,
	}
}
