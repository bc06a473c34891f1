package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-interview-prep/internal/adapter"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/gabriel-vasile/mimetype"
)

// MaxPortfolioSize is the largest accepted portfolio upload, 10 MiB.
const MaxPortfolioSize = 10 << 20

const pdfMimeType = "application/pdf"

type portfolioService struct {
	portfolioRepository store.PortfolioRepository
	questionRepository  store.PortfolioQuestionRepository

	textExtractor adapter.TextExtractor
	summarizer    adapter.QuestionSummarizer

	validator validators.Validator

	logger *logger.Logger
}

func NewPortfolioService(
	portfolioRepository store.PortfolioRepository,
	questionRepository store.PortfolioQuestionRepository,
	textExtractor adapter.TextExtractor,
	summarizer adapter.QuestionSummarizer,
	validator validators.Validator,
	logger *logger.Logger,
) PortfolioService {
	return &portfolioService{
		portfolioRepository: portfolioRepository,
		questionRepository:  questionRepository,
		textExtractor:       textExtractor,
		summarizer:          summarizer,
		validator:           validator,
		logger:              logger,
	}
}

// Upload validates the file (declared type, size, sniffed content), extracts
// its text and stores the portfolio.
func (p *portfolioService) Upload(ctx context.Context, userID int64, file models.UploadedFile) (models.Portfolio, error) {
	log := logger.FromContext(ctx)

	if len(file.Data) == 0 {
		return models.Portfolio{}, ErrFileMissing
	}
	if declaredMimeType(file.MimeType) != pdfMimeType {
		return models.Portfolio{}, fmt.Errorf("%w: declared %q", ErrOnlyPDFAllowed, file.MimeType)
	}
	if file.Size > MaxPortfolioSize || len(file.Data) > MaxPortfolioSize {
		return models.Portfolio{}, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, max(file.Size, int64(len(file.Data))))
	}
	if detected := mimetype.Detect(file.Data); !detected.Is(pdfMimeType) {
		log.Warn().Str("file", file.Name).Str("detected", detected.String()).Msg("upload declared as pdf is not a pdf")
		return models.Portfolio{}, fmt.Errorf("%w: detected %q", ErrOnlyPDFAllowed, detected.String())
	}

	text, err := p.textExtractor.ExtractText(ctx, file.Data)
	if err != nil {
		log.Err(err).Str("file", file.Name).Msg("pdf text extraction failed")
		return models.Portfolio{}, fmt.Errorf("%w: %w", ErrTextExtractionFailed, err)
	}

	portfolio, err := p.portfolioRepository.CreatePortfolio(ctx, models.Portfolio{
		UserID:   userID,
		FileName: file.Name,
		Content:  text,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("file", file.Name).Msg("storing portfolio failed")
		return models.Portfolio{}, fmt.Errorf("storing portfolio failed: %w", err)
	}

	log.Info().
		Int64("user_id", userID).
		Int64("portfolio_id", portfolio.ID).
		Int("text_length", len(text)).
		Msg("portfolio uploaded")
	return portfolio, nil
}

func (p *portfolioService) ListPortfolios(ctx context.Context, userID int64) ([]models.Portfolio, error) {
	portfolios, err := p.portfolioRepository.ListPortfolios(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing portfolios failed")
		return nil, fmt.Errorf("listing portfolios failed: %w", err)
	}
	return portfolios, nil
}

// Analyze asks the summarizer for questions about the portfolio and stores
// them in place of any questions generated by an earlier analysis. It
// returns the number of stored questions.
func (p *portfolioService) Analyze(ctx context.Context, userID, portfolioID int64) (int, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, models.AnalyzeRequest{PortfolioID: portfolioID}); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPortfolioIDRequired, err)
	}

	portfolio, err := p.portfolioRepository.GetPortfolio(ctx, userID, portfolioID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("portfolio_id", portfolioID).Msg("portfolio lookup failed")
		return 0, fmt.Errorf("portfolio lookup failed: %w", err)
	}

	questions, err := p.summarizer.Summarize(ctx, portfolio.Content)
	if err != nil {
		log.Err(err).Int64("portfolio_id", portfolioID).Msg("portfolio summarization failed")
		return 0, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	if len(questions) == 0 {
		return 0, fmt.Errorf("%w: summarizer returned no questions", ErrAnalysisFailed)
	}

	count, err := p.portfolioRepository.ReplaceGeneratedQuestions(ctx, userID, portfolioID, questions)
	if err != nil {
		log.Err(err).Int64("portfolio_id", portfolioID).Msg("storing generated questions failed")
		return 0, fmt.Errorf("storing generated questions failed: %w", err)
	}

	if portfolio.AnalyzedAt != nil {
		log.Info().Int64("portfolio_id", portfolioID).Msg("portfolio re-analyzed, previous ai questions replaced")
	}
	log.Info().Int64("portfolio_id", portfolioID).Int("count", count).Msg("portfolio analyzed")
	return count, nil
}

func (p *portfolioService) CreateQuestion(ctx context.Context, userID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error) {
	request.Question = strings.TrimSpace(request.Question)
	request.SuggestedAnswer = strings.TrimSpace(request.SuggestedAnswer)

	if err := p.validator.Validate(ctx, request); err != nil {
		return models.PortfolioQuestion{}, fmt.Errorf("%w: %w", ErrQuestionAnswerRequired, err)
	}

	created, err := p.questionRepository.CreateQuestion(ctx, models.PortfolioQuestion{
		UserID:          userID,
		Question:        request.Question,
		SuggestedAnswer: request.SuggestedAnswer,
		Category:        models.PortfolioCategory,
		IsAIGenerated:   false,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("creating portfolio question failed")
		return models.PortfolioQuestion{}, fmt.Errorf("creating portfolio question failed: %w", err)
	}

	return created, nil
}

func (p *portfolioService) ListQuestions(ctx context.Context, userID int64) ([]models.PortfolioQuestion, error) {
	questions, err := p.questionRepository.ListQuestions(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing portfolio questions failed")
		return nil, fmt.Errorf("listing portfolio questions failed: %w", err)
	}
	return questions, nil
}

// UpdateQuestion changes the non-empty fields of request. At least one field
// must be given.
func (p *portfolioService) UpdateQuestion(ctx context.Context, userID, questionID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error) {
	update := models.PortfolioQuestionUpdate{ID: questionID, UserID: userID}
	if q := strings.TrimSpace(request.Question); q != "" {
		update.Question = &q
	}
	if a := strings.TrimSpace(request.SuggestedAnswer); a != "" {
		update.SuggestedAnswer = &a
	}
	if update.Question == nil && update.SuggestedAnswer == nil {
		return models.PortfolioQuestion{}, ErrQuestionAnswerRequired
	}

	updated, err := p.questionRepository.UpdateQuestion(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("question_id", questionID).
			Msg("updating portfolio question failed")
		return models.PortfolioQuestion{}, fmt.Errorf("updating portfolio question failed: %w", err)
	}

	return updated, nil
}

func (p *portfolioService) DeleteQuestion(ctx context.Context, userID, questionID int64) error {
	if err := p.questionRepository.DeleteQuestion(ctx, userID, questionID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("question_id", questionID).
			Msg("deleting portfolio question failed")
		return fmt.Errorf("deleting portfolio question failed: %w", err)
	}
	return nil
}

// MoveQuestion files the question into folderID, or makes it unfiled when
// folderID is nil.
func (p *portfolioService) MoveQuestion(ctx context.Context, userID, questionID int64, folderID *int64) error {
	if err := p.questionRepository.MoveQuestion(ctx, userID, questionID, folderID); err != nil {
		event := logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("question_id", questionID)
		if folderID != nil {
			event = event.Int64("folder_id", *folderID)
		}
		event.Msg("moving portfolio question failed")
		return fmt.Errorf("moving portfolio question failed: %w", err)
	}
	return nil
}

func declaredMimeType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
