package generating

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/geo-content-api/internal/domain"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
	"github.com/vfg2006/geo-content-api/pkg/log"
	"github.com/vfg2006/geo-content-api/pkg/utils"
)

type Service struct {
	catalog   MarketCatalog
	providers []Provider
	names     []string
	timeout   time.Duration
	now       func() time.Time
}

// NewService cria o agregador. Os nomes dos provedores são as chaves da resposta e precisam ser únicos.
func NewService(catalog MarketCatalog, providers []Provider, timeout time.Duration) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("generating: market catalog is required")
	}
	if len(providers) == 0 {
		return nil, errors.New("generating: at least one provider is required")
	}
	if timeout <= 0 {
		return nil, errors.Errorf("generating: invalid provider timeout %s", timeout)
	}

	names := make([]string, len(providers))
	seen := make(map[string]bool, len(providers))
	for i, provider := range providers {
		if provider == nil {
			return nil, errors.Errorf("generating: provider at position %d is nil", i)
		}
		name := provider.Name()
		if name == "" {
			return nil, errors.Errorf("generating: provider at position %d has no name", i)
		}
		if seen[name] {
			return nil, errors.Errorf("generating: duplicate provider %q", name)
		}
		seen[name] = true
		names[i] = name
	}

	return &Service{
		catalog:   catalog,
		providers: providers,
		names:     names,
		timeout:   timeout,
		now:       time.Now,
	}, nil
}

// Generate valida a requisição, resolve o mercado e chama todos os provedores em paralelo.
// Só retorna erro quando a requisição inteira falha; falhas individuais ficam em Results.
func (s *Service) Generate(ctx context.Context, req *domain.ContentRequest) (*domain.ContentResponse, error) {
	logger := log.ForContext(ctx)

	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, NewGenerationError(ErrPromptRequired, apiErrors.ErrMissingRequiredData, "")
	}

	req.ApplyDefaults()

	// Mercado desconhecido falha antes de qualquer chamada externa
	market, found := s.catalog.Lookup(req.TargetMarket)
	if !found {
		logger.WithField("market", req.TargetMarket).Warn("Mercado não suportado")
		return nil, NewGenerationError(ErrMarketNotSupported, apiErrors.ErrMarketNotSupported, req.TargetMarket)
	}

	if err := ctx.Err(); err != nil {
		return nil, NewGenerationError(ErrOrchestrationFault, apiErrors.ErrOrchestration, err.Error())
	}

	requestID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar ID da requisição")
		return nil, NewGenerationError(ErrOrchestrationFault, apiErrors.ErrOrchestration, "could not generate request id")
	}

	logger.WithFields(log.Fields{
		"request_id":   requestID,
		"market":       market.Code,
		"content_type": req.ContentType,
		"tone":         req.Tone,
		"providers":    len(s.providers),
	}).Info("Iniciando geração de conteúdo")

	results := s.dispatch(ctx, req.Prompt, market)

	response := &domain.ContentResponse{
		Success:          true,
		RequestID:        requestID,
		Market:           market,
		Content:          make(map[string]string, len(results)),
		Results:          make(map[string]domain.ProviderResult, len(results)),
		OptimizationTips: append([]string(nil), market.OptimizationTips...),
		GeneratedAt:      s.now(),
	}

	failed := 0
	for _, result := range results {
		response.Content[result.Provider] = result.Text()
		response.Results[result.Provider] = result
		if !result.OK {
			failed++
		}
	}

	logger.WithFields(log.Fields{
		"request_id": requestID,
		"market":     market.Code,
		"failed":     failed,
	}).Info("Geração de conteúdo concluída")

	return response, nil
}

// dispatch chama todos os provedores ao mesmo tempo e espera todos terminarem.
// Cada goroutine escreve apenas na própria posição de results.
func (s *Service) dispatch(ctx context.Context, prompt string, market *domain.MarketProfile) []domain.ProviderResult {
	results := make([]domain.ProviderResult, len(s.providers))

	wg := sync.WaitGroup{}
	wg.Add(len(s.providers))

	for i := range s.providers {
		go func(i int) {
			defer wg.Done()
			results[i] = s.invoke(ctx, i, prompt, market)
		}(i)
	}

	wg.Wait()

	return results
}

type outcome struct {
	content  string
	err      error
	panicked bool
}

// invoke executa um provedor com prazo próprio. O resultado é sempre preenchido,
// mesmo que o provedor entre em pânico ou ignore o cancelamento do contexto.
func (s *Service) invoke(ctx context.Context, i int, prompt string, market *domain.MarketProfile) domain.ProviderResult {
	name := s.names[i]
	provider := s.providers[i]
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%s: unexpected panic: %v", name, r), panicked: true}
			}
		}()

		content, err := provider.Generate(callCtx, prompt, market)
		done <- outcome{content: content, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-callCtx.Done():
		out = outcome{err: callCtx.Err()}
	}

	result := domain.ProviderResult{
		Provider:   name,
		DurationMs: time.Since(start).Milliseconds(),
	}

	switch {
	case out.panicked:
		result.Error = out.err.Error()
		result.ErrorCode = apiErrors.ErrProviderPanic
	case out.err != nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		result.Error = fmt.Sprintf("%s: timed out after %s", name, s.timeout)
		result.ErrorCode = apiErrors.ErrProviderTimeout
	case out.err != nil:
		result.Error = out.err.Error()
		result.ErrorCode = apiErrors.ErrProviderFailure
	case strings.TrimSpace(out.content) == "":
		result.Error = fmt.Sprintf("%s: empty response", name)
		result.ErrorCode = apiErrors.ErrProviderFailure
	default:
		result.OK = true
		result.Content = out.content
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"provider":             name,
		"market":               market.Code,
		"provider_duration_ms": result.DurationMs,
	})
	if result.OK {
		logger.Debug("Provedor respondeu com sucesso")
	} else {
		logger.WithField("error_code", result.ErrorCode).Warnf("Falha no provedor: %s", result.Error)
	}

	return result
}

// Markets lista os mercados do catálogo indexados pelo código canônico
func (s *Service) Markets() *domain.MarketsResponse {
	markets := s.catalog.List()

	byCode := make(map[string]*domain.MarketProfile, len(markets))
	for _, market := range markets {
		byCode[market.Code] = market
	}

	return &domain.MarketsResponse{
		Markets:               byCode,
		Count:                 len(byCode),
		SupportedContentTypes: s.catalog.SupportedContentTypes(),
		SupportedTones:        s.catalog.SupportedTones(),
	}
}
