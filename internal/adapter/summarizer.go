package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
)

// NewSummarizer returns the [QuestionSummarizer] selected by cfg.Provider.
func NewSummarizer(cfg config.AI, log *logger.Logger) (QuestionSummarizer, error) {
	switch cfg.Provider {
	case config.AIProviderOpenAI, "":
		return NewOpenAISummarizer(cfg, log), nil
	case config.AIProviderHTTP:
		return NewHTTPSummarizer(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAIProvider, cfg.Provider)
	}
}
