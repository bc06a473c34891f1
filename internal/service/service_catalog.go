package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/models"
)

type catalogService struct {
	catalog store.QuestionCatalog

	logger *logger.Logger
}

func NewCatalogService(catalog store.QuestionCatalog, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (c *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.catalog.ListCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing categories failed")
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}
	return categories, nil
}

func (c *catalogService) ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error) {
	questions, err := c.catalog.ListQuestions(ctx, categoryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category", categoryID).Msg("listing questions failed")
		return nil, fmt.Errorf("listing questions failed: %w", err)
	}
	return questions, nil
}

func (c *catalogService) GetQuestion(ctx context.Context, categoryID, questionID string) (models.Question, error) {
	question, err := c.catalog.GetQuestion(ctx, categoryID, questionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("category", categoryID).
			Str("question", questionID).
			Msg("reading question failed")
		return models.Question{}, fmt.Errorf("reading question failed: %w", err)
	}
	return question, nil
}
