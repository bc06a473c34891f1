package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/meguminnnnnnnnn/go-openai"
)

type openAISummarizer struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// NewOpenAISummarizer builds a [QuestionSummarizer] on the OpenAI SDK.
// A non-empty cfg.BaseURL points the SDK at a compatible gateway.
func NewOpenAISummarizer(cfg config.AI, log *logger.Logger) QuestionSummarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = normalizeBaseURL(cfg.BaseURL)
	}
	if cfg.RequestTimeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &openAISummarizer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: log,
	}
}

func (o *openAISummarizer) Summarize(ctx context.Context, content string) ([]models.GeneratedQuestion, error) {
	log := logger.FromContext(ctx)

	temperature := float32(analysisTemperature)
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildAnalysisPrompt(content)},
		},
		MaxTokens:   analysisMaxTokens,
		Temperature: &temperature,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*openAISummarizer.Summarize").Str("model", o.model).Msg("chat completion failed")
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyAIResponse
	}

	questions, err := parseGeneratedQuestions(resp.Choices[0].Message.Content)
	if err != nil {
		log.Err(err).Str("func", "*openAISummarizer.Summarize").Msg("unusable model answer")
		return nil, err
	}

	log.Debug().Str("func", "*openAISummarizer.Summarize").Int("questions", len(questions)).Msg("portfolio summarized")
	return questions, nil
}
