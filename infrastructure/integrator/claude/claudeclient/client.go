package claudeclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/geo-content-api/internal/config"
	"github.com/vfg2006/geo-content-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	CreateMessage(ctx context.Context, prompt string) (string, error)
	Ping(ctx context.Context) error
}

type ClaudeClient struct {
	httpClient *http.Client
	config     config.Claude
}

func NewClient(cfg *config.Config) Client {
	return &ClaudeClient{
		// O prazo por chamada é controlado pelo contexto do agregador
		httpClient: utils.NewHTTPClient(0),
		config:     cfg.Claude,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// APIError representa o corpo de erro da API de mensagens
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("claude: %s (status %d): %s", e.Type, e.StatusCode, e.Message)
}

func (c *ClaudeClient) CreateMessage(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", errors.Wrap(err, "claude: encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/v1/messages"), bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "claude: creating request")
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var response messagesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta do Claude")
		return "", errors.Wrap(err, "claude: decoding response")
	}

	var sb strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("claude: no content generated")
	}

	return text, nil
}

// Ping consulta a listagem de modelos, que não consome tokens
func (c *ClaudeClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/v1/models?limit=1"), nil)
	if err != nil {
		return errors.Wrap(err, "claude: creating request")
	}
	c.setHeaders(req)

	_, err = c.do(req)
	return err
}

func (c *ClaudeClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "claude: request failed")
	}
	defer resp.Body.Close()

	body, err := utils.ReadResponse(resp)
	if err != nil {
		var statusErr *utils.StatusError
		if errors.As(err, &statusErr) {
			return nil, parseAPIError(statusErr)
		}
		return nil, errors.Wrap(err, "claude: reading response")
	}

	return body, nil
}

func parseAPIError(statusErr *utils.StatusError) error {
	var envelope struct {
		Error APIError `json:"error"`
	}
	if err := json.Unmarshal(statusErr.Body, &envelope); err != nil || envelope.Error.Message == "" {
		return errors.Wrap(statusErr, "claude")
	}

	envelope.Error.StatusCode = statusErr.StatusCode
	return &envelope.Error
}

func (c *ClaudeClient) setHeaders(req *http.Request) {
	req.Header.Set("x-api-key", c.config.APIKey)
	req.Header.Set("anthropic-version", c.config.APIVersion)
	req.Header.Set("Accept", "application/json")
}

func (c *ClaudeClient) url(path string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + path
}
