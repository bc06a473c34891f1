package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/models"
)

const chatCompletionsPath = "/chat/completions"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type httpSummarizer struct {
	client *utils.HTTPClient
	apiKey string
	model  string
	logger *logger.Logger
}

// NewHTTPSummarizer builds a [QuestionSummarizer] that posts directly to
// cfg.BaseURL + "/chat/completions".
func NewHTTPSummarizer(cfg config.AI, log *logger.Logger) QuestionSummarizer {
	return &httpSummarizer{
		client: utils.NewHTTPClient(normalizeBaseURL(cfg.BaseURL), cfg.RequestTimeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: log,
	}
}

func (h *httpSummarizer) Summarize(ctx context.Context, content string) ([]models.GeneratedQuestion, error) {
	log := logger.FromContext(ctx)

	var out chatCompletionResponse
	req := h.client.R().
		SetContext(ctx).
		SetBody(chatCompletionRequest{
			Model:       h.model,
			Messages:    []chatMessage{{Role: "user", Content: buildAnalysisPrompt(content)}},
			Temperature: analysisTemperature,
			MaxTokens:   analysisMaxTokens,
		}).
		SetResult(&out)
	if h.apiKey != "" {
		req.SetAuthToken(h.apiKey)
	}

	resp, err := req.Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "*httpSummarizer.Summarize").Msg("chat completion request failed")
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpSummarizer.Summarize").Int("status", resp.StatusCode()).Msg("chat completion rejected")
		return nil, err
	}

	if len(out.Choices) == 0 {
		return nil, ErrEmptyAIResponse
	}

	questions, err := parseGeneratedQuestions(out.Choices[0].Message.Content)
	if err != nil {
		log.Err(err).Str("func", "*httpSummarizer.Summarize").Msg("unusable model answer")
		return nil, err
	}

	return questions, nil
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}
	return strings.TrimRight(raw, "/")
}
