package deepseekclient

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

// Client acessa o DeepSeek pela API compatível com OpenAI do ModelScope
type Client interface {
	ChatCompletion(ctx context.Context, prompt string) (string, error)
	Ping(ctx context.Context) error
}

type DeepSeekClient struct {
	httpClient *http.Client
	config     config.DeepSeek
}

func NewClient(cfg *config.Config) Client {
	return &DeepSeekClient{
		httpClient: utils.NewHTTPClient(0),
		config:     cfg.DeepSeek,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// APIError representa o corpo de erro no formato OpenAI
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Code       any    `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepseek: %s (status %d): %s", e.Type, e.StatusCode, e.Message)
}

func (c *DeepSeekClient) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.config.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", errors.Wrap(err, "deepseek: encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/chat/completions"), bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "deepseek: creating request")
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta do DeepSeek")
		return "", errors.Wrap(err, "deepseek: decoding response")
	}

	if len(response.Choices) == 0 {
		return "", errors.New("deepseek: no choices returned")
	}

	text := strings.TrimSpace(response.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("deepseek: no content generated")
	}

	return text, nil
}

func (c *DeepSeekClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/models"), nil)
	if err != nil {
		return errors.Wrap(err, "deepseek: creating request")
	}
	c.setHeaders(req)

	_, err = c.do(req)
	return err
}

func (c *DeepSeekClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "deepseek: request failed")
	}
	defer resp.Body.Close()

	body, err := utils.ReadResponse(resp)
	if err != nil {
		var statusErr *utils.StatusError
		if errors.As(err, &statusErr) {
			return nil, parseAPIError(statusErr)
		}
		return nil, errors.Wrap(err, "deepseek: reading response")
	}

	return body, nil
}

func parseAPIError(statusErr *utils.StatusError) error {
	var envelope struct {
		Error APIError `json:"error"`
	}
	if err := json.Unmarshal(statusErr.Body, &envelope); err != nil || envelope.Error.Message == "" {
		return errors.Wrap(statusErr, "deepseek")
	}

	envelope.Error.StatusCode = statusErr.StatusCode
	return &envelope.Error
}

func (c *DeepSeekClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")
}

func (c *DeepSeekClient) url(path string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + path
}
