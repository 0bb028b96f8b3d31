package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/geo-content-api/infrastructure/catalog"
	"github.com/vfg2006/geo-content-api/internal/api/handler/router"
	"github.com/vfg2006/geo-content-api/internal/domain"
	"github.com/vfg2006/geo-content-api/internal/usecases/generating"
	"github.com/vfg2006/geo-content-api/internal/usecases/generating/mocks"
	"github.com/vfg2006/geo-content-api/internal/usecases/optimizing"
	"github.com/vfg2006/geo-content-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeProbe struct {
	triggered int
	snapshot  map[string]*domain.ProbeResult
}

func (f *fakeProbe) TriggerManualProbe() { f.triggered++ }

func (f *fakeProbe) GetStatus() map[string]any {
	return map[string]any{"probe_enabled": true}
}

func (f *fakeProbe) Snapshot() map[string]*domain.ProbeResult { return f.snapshot }

func newTestRouter(t *testing.T, generator generating.ContentGenerator, probe *fakeProbe) http.Handler {
	t.Helper()

	table, err := catalog.LoadStrategies()
	require.NoError(t, err)

	return router.New(
		router.WithRoutes(Healthcheck("1.2.3", probe)...),
		router.WithRoutes(OverseasContent(generator)...),
		router.WithRoutes(GeoOptimize(optimizing.NewService(table))...),
		router.WithRoutes(CronJobs(CronJobServices{ProviderProbeService: probe})...),
	)
}

func do(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGenerateContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := mocks.NewMockContentGenerator(ctrl)
	handler := newTestRouter(t, mockGenerator, &fakeProbe{})

	generatedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Geração com um provedor degradado",
			body: `{"prompt":"launch our tea","target_market":"japan","tone":"friendly"}`,
			setup: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any(), &domain.ContentRequest{Prompt: "launch our tea", TargetMarket: "japan", Tone: "friendly"}).
					Return(&domain.ContentResponse{
						Success:   true,
						RequestID: "abc123",
						Market:    &domain.MarketProfile{Code: "JAPAN", Name: "Japan"},
						Content: map[string]string{
							"gemini":   "g",
							"claude":   "claude: overloaded",
							"deepseek": "d",
						},
						Results: map[string]domain.ProviderResult{
							"gemini":   {Provider: "gemini", OK: true, Content: "g"},
							"claude":   {Provider: "claude", Error: "claude: overloaded", ErrorCode: apiErrors.ErrProviderFailure},
							"deepseek": {Provider: "deepseek", OK: true, Content: "d"},
						},
						OptimizationTips: []string{"use honorifics"},
						GeneratedAt:      generatedAt,
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				body := decode(t, rec)
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "2025-03-10T12:00:00Z", body["generated_at"])
				assert.Len(t, body["content"], 3)
				assert.Equal(t, "claude: overloaded", body["content"].(map[string]any)["claude"])

				claude := body["results"].(map[string]any)["claude"].(map[string]any)
				assert.Equal(t, false, claude["ok"])
				assert.Equal(t, apiErrors.ErrProviderFailure, claude["error_code"])
				assert.Equal(t, []any{"use honorifics"}, body["optimization_tips"])
			},
		},
		{
			name: "Mercado não suportado",
			body: `{"prompt":"launch","target_market":"Atlantis"}`,
			setup: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, generating.NewGenerationError(generating.ErrMarketNotSupported, apiErrors.ErrMarketNotSupported, "Atlantis"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				body := decode(t, rec)
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "market not supported: Atlantis", body["error"])
				assert.Equal(t, apiErrors.ErrMarketNotSupported, body["code"])
				assert.NotContains(t, body, "content")
				assert.NotContains(t, body, "results")
				assert.NotContains(t, body, "market")
				assert.Contains(t, body, "generated_at")
			},
		},
		{
			name: "Prompt ausente",
			body: `{"target_market":"USA"}`,
			setup: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, generating.NewGenerationError(generating.ErrPromptRequired, apiErrors.ErrMissingRequiredData, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decode(t, rec)["code"])
			},
		},
		{
			name: "Erro inesperado vira falha de orquestração",
			body: `{"prompt":"launch"}`,
			setup: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, apiErrors.ErrOrchestration, body["code"])
				assert.Equal(t, "boom", body["error"])
			},
		},
		{
			name:  "JSON malformado não chama o agregador",
			body:  `{"prompt":`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decode(t, rec)["code"])
			},
		},
		{
			name:  "Dados após o JSON são rejeitados",
			body:  `{"prompt":"x"} junk`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decode(t, rec)["code"])
			},
		},
		{
			name:  "Corpo apenas com espaços",
			body:  "  \n\t",
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decode(t, rec)["code"])
			},
		},
		{
			name:  "Corpo acima do limite",
			body:  `{"prompt":"` + strings.Repeat("a", 1<<20) + `"}`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
				assert.Equal(t, apiErrors.ErrPayloadTooLarge, decode(t, rec)["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			tt.validate(t, do(handler, http.MethodPost, "/api/v1/overseas_content/generate", tt.body))
		})
	}
}

func TestGenerateContent_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newTestRouter(t, mocks.NewMockContentGenerator(ctrl), &fakeProbe{})

	rec := do(handler, http.MethodPost, "/api/v1/overseas_content/generate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decode(t, rec)["code"])
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name         string
		body         func(w http.ResponseWriter) io.ReadCloser
		expectedCode string
		expectedErr  string
	}{
		{
			name: "Corpo vazio envolvido pelo limite de tamanho",
			body: func(w http.ResponseWriter) io.ReadCloser {
				return http.MaxBytesReader(w, http.NoBody, 16)
			},
			expectedCode: apiErrors.ErrInvalidRequest,
			expectedErr:  "request body is required",
		},
		{
			name: "Corpo acima do limite",
			body: func(w http.ResponseWriter) io.ReadCloser {
				return http.MaxBytesReader(w, io.NopCloser(strings.NewReader(`{"prompt":"muito longo"}`)), 4)
			},
			expectedCode: apiErrors.ErrPayloadTooLarge,
			expectedErr:  "request body too large",
		},
		{
			name: "Dois valores JSON",
			body: func(w http.ResponseWriter) io.ReadCloser {
				return io.NopCloser(strings.NewReader(`{"prompt":"x"} {"prompt":"y"}`))
			},
			expectedCode: apiErrors.ErrInvalidFormat,
			expectedErr:  "invalid JSON body",
		},
		{
			name: "JSON válido com quebra de linha final",
			body: func(w http.ResponseWriter) io.ReadCloser {
				return io.NopCloser(strings.NewReader("{\"prompt\":\"x\"}\n"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Body = tt.body(httptest.NewRecorder())

			var dst domain.OptimizationRequest
			code, err := decodeBody(req, &dst)

			assert.Equal(t, tt.expectedCode, code)
			if tt.expectedErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "x", dst.Prompt)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err.Error())
		})
	}
}

func TestListMarkets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := mocks.NewMockContentGenerator(ctrl)
	mockGenerator.EXPECT().Markets().Return(&domain.MarketsResponse{
		Markets:               map[string]*domain.MarketProfile{"USA": {Code: "USA", Name: "United States"}},
		Count:                 1,
		SupportedContentTypes: []string{"social_media"},
		SupportedTones:        []string{"professional"},
	})

	rec := do(newTestRouter(t, mockGenerator, &fakeProbe{}), http.MethodGet, "/api/v1/overseas_content/markets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "United States", body["markets"].(map[string]any)["USA"].(map[string]any)["name"])
	assert.Equal(t, []any{"social_media"}, body["supported_content_types"])
}

func TestOptimizeContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newTestRouter(t, mocks.NewMockContentGenerator(ctrl), &fakeProbe{})

	t.Run("Estratégia conhecida", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/api/v1/geo_optimize", `{"prompt":"Summer sale","platform":"social_media","goal":"conversion"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Summer sale", body["original_prompt"])
		assert.Equal(t, "Highlight product value, add a call to action, and use language that creates urgency", body["strategy"])
		assert.True(t, strings.HasPrefix(body["optimized_prompt"].(string), "Summer sale\n\nOptimization strategy: "))
	})

	t.Run("Plataforma desconhecida", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/api/v1/geo_optimize", `{"prompt":"x","platform":"unknown_platform"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, optimizing.FallbackStrategy, body["strategy"])
		assert.Equal(t, []any{optimizing.FallbackTip}, body["tips"])
	})

	t.Run("Prompt ausente", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/api/v1/geo_optimize", `{"platform":"social_media"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "prompt is required", body["error"])
	})

	t.Run("Corpo vazio", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/api/v1/geo_optimize", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, apiErrors.ErrInvalidRequest, body["code"])
		assert.Equal(t, "request body is required", body["error"])
	})

	t.Run("Dados após o JSON", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/api/v1/geo_optimize", `{"prompt":"x"}{"prompt":"y"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decode(t, rec)["code"])
	})

	t.Run("Opções disponíveis", func(t *testing.T) {
		rec := do(handler, http.MethodGet, "/api/v1/geo_optimize/options", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Contains(t, body["platforms"], "search_engine")
		assert.Contains(t, body["goals"], "traffic")
	})
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	probe := &fakeProbe{snapshot: map[string]*domain.ProbeResult{
		"gemini": {Reachable: true, CheckedAt: checkedAt, DurationMs: 120},
	}}
	handler := newTestRouter(t, mocks.NewMockContentGenerator(ctrl), probe)

	rec := do(handler, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Len(t, body["features"], 3)
	assert.Equal(t, true, body["providers"].(map[string]any)["gemini"].(map[string]any)["reachable"])

	rec = do(handler, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestHealth_WithoutProbeResults(t *testing.T) {
	rec := httptest.NewRecorder()
	Health("1.0.0", nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decode(t, rec), "providers")
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := &fakeProbe{}
	handler := newTestRouter(t, mocks.NewMockContentGenerator(ctrl), probe)

	rec := do(handler, http.MethodPost, "/api/v1/cron/provider-probe/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, probe.triggered)

	rec = do(handler, http.MethodPost, "/api/v1/cron/meta/run", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownJob, decode(t, rec)["code"])
	assert.Equal(t, 1, probe.triggered)

	rec = do(handler, http.MethodGet, "/api/v1/cron/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), CronJobTypeProviderProbe)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newTestRouter(t, mocks.NewMockContentGenerator(ctrl), &fakeProbe{})

	rec := do(handler, http.MethodGet, "/overseas", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decode(t, rec)["code"])

	rec = do(handler, http.MethodGet, "/api/v1/overseas_content/generate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decode(t, rec)["code"])
}
