package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Gemini        Gemini        `mapstructure:",squash"`
	Claude        Claude        `mapstructure:",squash"`
	DeepSeek      DeepSeek      `mapstructure:",squash"`
	Providers     Providers     `mapstructure:",squash"`
	Catalog       Catalog       `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	Render        Render        `mapstructure:",squash"`
	ProviderProbe ProviderProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"app_version"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type Claude struct {
	APIKey     string `mapstructure:"claude_api_key"`
	BaseURL    string `mapstructure:"claude_base_url"`
	Model      string `mapstructure:"claude_model"`
	APIVersion string `mapstructure:"claude_api_version"`
	MaxTokens  int    `mapstructure:"claude_max_tokens"`
}

type DeepSeek struct {
	AccessToken string `mapstructure:"deepseek_access_token"`
	BaseURL     string `mapstructure:"deepseek_base_url"`
	Model       string `mapstructure:"deepseek_model"`
}

type Providers struct {
	// Prazo de cada adaptador; um adaptador que estoura o prazo é tratado como falha
	Timeout time.Duration `mapstructure:"provider_timeout"`
}

type Catalog struct {
	MarketsFile string `mapstructure:"markets_file"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type ProviderProbe struct {
	CronSchedule string `mapstructure:"provider_probe_cron"`
	Enabled      bool   `mapstructure:"provider_probe_enabled"`
}

// Nomes dos secret files no Render que podem fornecer as credenciais dos provedores
const (
	SecretGeminiAPIKey        = "gemini_api_key"
	SecretClaudeAPIKey        = "claude_api_key"
	SecretDeepSeekAccessToken = "deepseek_access_token"
)

var ErrMissingCredential = errors.New("missing provider credential")

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_VERSION", "1.0.0")

	// Credenciais não possuem default: precisam vir do ambiente, do .env ou do Render
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash-lite")

	viper.SetDefault("CLAUDE_API_KEY", "")
	viper.SetDefault("CLAUDE_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("CLAUDE_MODEL", "claude-3-5-sonnet-latest")
	viper.SetDefault("CLAUDE_API_VERSION", "2023-06-01")
	viper.SetDefault("CLAUDE_MAX_TOKENS", 1024)

	viper.SetDefault("DEEPSEEK_ACCESS_TOKEN", "")
	viper.SetDefault("DEEPSEEK_BASE_URL", "https://api-inference.modelscope.cn/v1")
	viper.SetDefault("DEEPSEEK_MODEL", "deepseek-ai/DeepSeek-V3.1")

	viper.SetDefault("PROVIDER_TIMEOUT", "30s")
	viper.SetDefault("MARKETS_FILE", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("PROVIDER_PROBE_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("PROVIDER_PROBE_ENABLED", false)
}

// NewConfig carrega a configuração. Se storage for nil e RENDER_SERVICE_ID estiver definido,
// um RenderClient é usado para completar as credenciais ausentes.
func NewConfig(storage SecretStorage) (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if storage == nil && config.Render.ServiceID != "" {
		storage = NewRenderClient(config)
	}

	if storage != nil && config.Render.ServiceID != "" && config.missingCredentials() {
		secretsByName, err := storage.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter secrets do Render")
			return nil, err
		}
		config.applySecrets(secretsByName)
	}

	config.Cors.AllowedOrigins = trimAll(config.Cors.AllowedOrigins)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate falha quando uma configuração obrigatória está ausente
func (c *Config) Validate() error {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if strings.TrimSpace(c.Claude.APIKey) == "" {
		missing = append(missing, "CLAUDE_API_KEY")
	}
	if strings.TrimSpace(c.DeepSeek.AccessToken) == "" {
		missing = append(missing, "DEEPSEEK_ACCESS_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: %w: %s", ErrMissingCredential, strings.Join(missing, ", "))
	}

	if c.Providers.Timeout <= 0 {
		return fmt.Errorf("config: PROVIDER_TIMEOUT must be positive, got %s", c.Providers.Timeout)
	}
	if c.Claude.MaxTokens <= 0 {
		return fmt.Errorf("config: CLAUDE_MAX_TOKENS must be positive, got %d", c.Claude.MaxTokens)
	}
	if c.Server.Port == "" {
		return errors.New("config: PORT is required")
	}

	return nil
}

func (c *Config) missingCredentials() bool {
	return c.Gemini.APIKey == "" || c.Claude.APIKey == "" || c.DeepSeek.AccessToken == ""
}

// applySecrets preenche apenas as credenciais que não vieram do ambiente
func (c *Config) applySecrets(secretsByName map[string]string) {
	if value, ok := secretsByName[SecretGeminiAPIKey]; ok && c.Gemini.APIKey == "" {
		c.Gemini.APIKey = strings.TrimSpace(value)
	}
	if value, ok := secretsByName[SecretClaudeAPIKey]; ok && c.Claude.APIKey == "" {
		c.Claude.APIKey = strings.TrimSpace(value)
	}
	if value, ok := secretsByName[SecretDeepSeekAccessToken]; ok && c.DeepSeek.AccessToken == "" {
		c.DeepSeek.AccessToken = strings.TrimSpace(value)
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
