package generating

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/geo-content-api/internal/domain"
	"github.com/vfg2006/geo-content-api/internal/usecases/generating/mocks"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func usaMarket() *domain.MarketProfile {
	return &domain.MarketProfile{
		Code:               "USA",
		Name:               "United States",
		Flag:               "🇺🇸",
		Language:           "en-US",
		Currency:           "USD",
		Timezone:           "America/New_York",
		CulturalTraits:     []string{"individualism", "innovation"},
		ContentPreferences: []string{"direct communication"},
		OptimizationTips:   []string{"use data", "highlight personal value"},
	}
}

// stubProvider permite simular latência, pânico e provedores que ignoram o contexto
type stubProvider struct {
	name  string
	calls atomic.Int32
	fn    func(ctx context.Context) (string, error)
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(ctx context.Context, _ string, _ *domain.MarketProfile) (string, error) {
	p.calls.Add(1)
	return p.fn(ctx)
}

func replying(name, content string, delay time.Duration) *stubProvider {
	return &stubProvider{name: name, fn: func(ctx context.Context) (string, error) {
		select {
		case <-time.After(delay):
			return content, nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}}
}

func newTestService(t *testing.T, catalog MarketCatalog, timeout time.Duration, providers ...Provider) *Service {
	t.Helper()
	service, err := NewService(catalog, providers, timeout)
	require.NoError(t, err)
	service.now = func() time.Time { return fixedNow }
	return service
}

func TestNewService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockMarketCatalog(ctrl)

	tests := []struct {
		name      string
		catalog   MarketCatalog
		providers []Provider
		timeout   time.Duration
		wantErr   string
	}{
		{
			name:      "Configuração válida",
			catalog:   catalog,
			providers: []Provider{replying("gemini", "a", 0), replying("claude", "b", 0)},
			timeout:   time.Second,
		},
		{
			name:      "Sem catálogo",
			providers: []Provider{replying("gemini", "a", 0)},
			timeout:   time.Second,
			wantErr:   "market catalog is required",
		},
		{
			name:    "Sem provedores",
			catalog: catalog,
			timeout: time.Second,
			wantErr: "at least one provider",
		},
		{
			name:      "Timeout inválido",
			catalog:   catalog,
			providers: []Provider{replying("gemini", "a", 0)},
			wantErr:   "invalid provider timeout",
		},
		{
			name:      "Provedor nulo",
			catalog:   catalog,
			providers: []Provider{nil},
			timeout:   time.Second,
			wantErr:   "is nil",
		},
		{
			name:      "Provedor sem nome",
			catalog:   catalog,
			providers: []Provider{replying("", "a", 0)},
			timeout:   time.Second,
			wantErr:   "has no name",
		},
		{
			name:      "Nomes duplicados",
			catalog:   catalog,
			providers: []Provider{replying("gemini", "a", 0), replying("gemini", "b", 0)},
			timeout:   time.Second,
			wantErr:   `duplicate provider "gemini"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewService(tt.catalog, tt.providers, tt.timeout)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, service)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"gemini", "claude"}, service.names)
		})
	}
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockMarketCatalog(ctrl)
	mockGemini := mocks.NewMockProvider(ctrl)
	mockClaude := mocks.NewMockProvider(ctrl)
	mockDeepSeek := mocks.NewMockProvider(ctrl)

	mockGemini.EXPECT().Name().Return(domain.ProviderGemini).AnyTimes()
	mockClaude.EXPECT().Name().Return(domain.ProviderClaude).AnyTimes()
	mockDeepSeek.EXPECT().Name().Return(domain.ProviderDeepSeek).AnyTimes()

	service := newTestService(t, mockCatalog, time.Second, mockGemini, mockClaude, mockDeepSeek)

	tests := []struct {
		name     string
		req      *domain.ContentRequest
		setup    func()
		validate func(t *testing.T, resp *domain.ContentResponse, err error)
	}{
		{
			name:  "Prompt vazio falha antes de consultar o catálogo",
			req:   &domain.ContentRequest{Prompt: "   ", TargetMarket: "USA"},
			setup: func() {},
			validate: func(t *testing.T, resp *domain.ContentResponse, err error) {
				assert.Nil(t, resp)
				var genErr *GenerationError
				require.True(t, errors.As(err, &genErr))
				assert.Equal(t, apiErrors.ErrMissingRequiredData, genErr.Code)
				assert.ErrorIs(t, err, ErrPromptRequired)
			},
		},
		{
			name: "Mercado desconhecido não chama nenhum provedor",
			req:  &domain.ContentRequest{Prompt: "launch", TargetMarket: "Atlantis"},
			setup: func() {
				mockCatalog.EXPECT().Lookup("Atlantis").Return(nil, false)
			},
			validate: func(t *testing.T, resp *domain.ContentResponse, err error) {
				assert.Nil(t, resp)
				var genErr *GenerationError
				require.True(t, errors.As(err, &genErr))
				assert.Equal(t, apiErrors.ErrMarketNotSupported, genErr.Code)
				assert.ErrorIs(t, err, ErrMarketNotSupported)
				assert.Contains(t, err.Error(), "Atlantis")
			},
		},
		{
			name: "Todos os provedores respondem",
			req:  &domain.ContentRequest{Prompt: "launch", TargetMarket: "usa"},
			setup: func() {
				mockCatalog.EXPECT().Lookup("usa").Return(usaMarket(), true)
				mockGemini.EXPECT().Generate(gomock.Any(), "launch", usaMarket()).Return("gemini text", nil)
				mockClaude.EXPECT().Generate(gomock.Any(), "launch", usaMarket()).Return("claude text", nil)
				mockDeepSeek.EXPECT().Generate(gomock.Any(), "launch", usaMarket()).Return("deepseek text", nil)
			},
			validate: func(t *testing.T, resp *domain.ContentResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				assert.NotEmpty(t, resp.RequestID)
				assert.Equal(t, "USA", resp.Market.Code)
				assert.Equal(t, fixedNow, resp.GeneratedAt)
				assert.Equal(t, usaMarket().OptimizationTips, resp.OptimizationTips)
				assert.Equal(t, map[string]string{
					"gemini":   "gemini text",
					"claude":   "claude text",
					"deepseek": "deepseek text",
				}, resp.Content)
				require.Len(t, resp.Results, 3)
				for _, result := range resp.Results {
					assert.True(t, result.OK)
					assert.Empty(t, result.Error)
				}
			},
		},
		{
			name: "Um provedor falha e a requisição continua com sucesso",
			req:  &domain.ContentRequest{Prompt: "launch", TargetMarket: "USA"},
			setup: func() {
				mockCatalog.EXPECT().Lookup("USA").Return(usaMarket(), true)
				mockGemini.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("gemini text", nil)
				mockClaude.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("claude: overloaded"))
				mockDeepSeek.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("deepseek text", nil)
			},
			validate: func(t *testing.T, resp *domain.ContentResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				require.Len(t, resp.Content, 3)
				require.Len(t, resp.Results, 3)

				assert.Equal(t, "claude: overloaded", resp.Content["claude"])
				assert.False(t, resp.Results["claude"].OK)
				assert.Equal(t, apiErrors.ErrProviderFailure, resp.Results["claude"].ErrorCode)

				assert.Equal(t, "gemini text", resp.Content["gemini"])
				assert.True(t, resp.Results["gemini"].OK)
				assert.Equal(t, "deepseek text", resp.Content["deepseek"])
			},
		},
		{
			name: "Todos os provedores falham e o shape da resposta é mantido",
			req:  &domain.ContentRequest{Prompt: "launch"},
			setup: func() {
				// Mercado padrão quando não informado
				mockCatalog.EXPECT().Lookup(domain.DefaultTargetMarket).Return(usaMarket(), true)
				mockGemini.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("gemini down"))
				mockClaude.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("claude down"))
				mockDeepSeek.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("  ", nil)
			},
			validate: func(t *testing.T, resp *domain.ContentResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				require.Len(t, resp.Results, 3)
				for name, result := range resp.Results {
					assert.False(t, result.OK, name)
					assert.NotEmpty(t, result.Error, name)
					assert.Equal(t, result.Error, resp.Content[name])
				}
				assert.Equal(t, "deepseek: empty response", resp.Content["deepseek"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			resp, err := service.Generate(context.Background(), tt.req)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_GenerateAppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockMarketCatalog(ctrl)
	mockCatalog.EXPECT().Lookup("USA").Return(usaMarket(), true)

	service := newTestService(t, mockCatalog, time.Second, replying("gemini", "ok", 0))

	req := &domain.ContentRequest{Prompt: "launch"}
	_, err := service.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTargetMarket, req.TargetMarket)
	assert.Equal(t, domain.DefaultContentType, req.ContentType)
	assert.Equal(t, domain.DefaultTone, req.Tone)
	assert.Equal(t, domain.DefaultLength, req.Length)
}

func TestService_GenerateRunsProvidersConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockMarketCatalog(ctrl)
	mockCatalog.EXPECT().Lookup("USA").Return(usaMarket(), true)

	service := newTestService(t, mockCatalog, 5*time.Second,
		replying("gemini", "a", 100*time.Millisecond),
		replying("claude", "b", 200*time.Millisecond),
		replying("deepseek", "c", 300*time.Millisecond),
	)

	start := time.Now()
	resp, err := service.Generate(context.Background(), &domain.ContentRequest{Prompt: "launch", TargetMarket: "USA"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Len(t, resp.Results, 3)
	for _, result := range resp.Results {
		assert.True(t, result.OK)
	}

	// Espera o mais lento, mas nunca a soma das latências
	assert.GreaterOrEqual(t, elapsed, 300*time.Millisecond)
	assert.Less(t, elapsed, 550*time.Millisecond)
	assert.GreaterOrEqual(t, resp.Results["deepseek"].DurationMs, int64(300))
}

func TestService_GenerateIsolatesTimeoutAndPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockMarketCatalog(ctrl)
	mockCatalog.EXPECT().Lookup("USA").Return(usaMarket(), true)

	release := make(chan struct{})
	defer close(release)

	// Ignora o contexto de propósito: o agregador precisa liberar a barreira mesmo assim
	stuck := &stubProvider{name: "claude", fn: func(ctx context.Context) (string, error) {
		<-release
		return "late", nil
	}}
	panicking := &stubProvider{name: "deepseek", fn: func(ctx context.Context) (string, error) {
		panic("nil pointer in adapter")
	}}

	service := newTestService(t, mockCatalog, 100*time.Millisecond,
		replying("gemini", "gemini text", 10*time.Millisecond),
		stuck,
		panicking,
	)

	start := time.Now()
	resp, err := service.Generate(context.Background(), &domain.ContentRequest{Prompt: "launch", TargetMarket: "USA"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 3)
	assert.Less(t, elapsed, time.Second)

	assert.True(t, resp.Results["gemini"].OK)

	assert.False(t, resp.Results["claude"].OK)
	assert.Equal(t, apiErrors.ErrProviderTimeout, resp.Results["claude"].ErrorCode)
	assert.Contains(t, resp.Content["claude"], "timed out")

	assert.False(t, resp.Results["deepseek"].OK)
	assert.Equal(t, apiErrors.ErrProviderPanic, resp.Results["deepseek"].ErrorCode)
	assert.Contains(t, resp.Content["deepseek"], "nil pointer in adapter")
}

func TestService_GenerateProviderHonoringDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockMarketCatalog(ctrl)
	mockCatalog.EXPECT().Lookup("USA").Return(usaMarket(), true)

	slow := replying("gemini", "late", 2*time.Second)
	service := newTestService(t, mockCatalog, 50*time.Millisecond, slow)

	resp, err := service.Generate(context.Background(), &domain.ContentRequest{Prompt: "launch", TargetMarket: "USA"})
	require.NoError(t, err)
	assert.Equal(t, apiErrors.ErrProviderTimeout, resp.Results["gemini"].ErrorCode)
	assert.Equal(t, int32(1), slow.calls.Load())
}

func TestService_GenerateCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockMarketCatalog(ctrl)
	mockCatalog.EXPECT().Lookup("USA").Return(usaMarket(), true)

	provider := replying("gemini", "a", 0)
	service := newTestService(t, mockCatalog, time.Second, provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := service.Generate(ctx, &domain.ContentRequest{Prompt: "launch", TargetMarket: "USA"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrOrchestrationFault)
	assert.Equal(t, int32(0), provider.calls.Load())
}

func TestService_Markets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	japan := &domain.MarketProfile{Code: "JAPAN", Name: "Japan"}

	mockCatalog := mocks.NewMockMarketCatalog(ctrl)
	mockCatalog.EXPECT().List().Return([]*domain.MarketProfile{usaMarket(), japan})
	mockCatalog.EXPECT().SupportedContentTypes().Return([]string{"social_media", "blog_post"})
	mockCatalog.EXPECT().SupportedTones().Return([]string{"professional"})

	service := newTestService(t, mockCatalog, time.Second, replying("gemini", "a", 0))

	resp := service.Markets()
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "United States", resp.Markets["USA"].Name)
	assert.Equal(t, japan, resp.Markets["JAPAN"])
	assert.Equal(t, []string{"social_media", "blog_post"}, resp.SupportedContentTypes)
	assert.Equal(t, []string{"professional"}, resp.SupportedTones)
}
