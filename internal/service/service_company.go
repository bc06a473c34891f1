package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
)

type companyService struct {
	companyStorage store.CompanyFileStorage
	validator      validators.Validator

	logger *logger.Logger
}

func NewCompanyService(companyStorage store.CompanyFileStorage, validator validators.Validator, logger *logger.Logger) CompanyService {
	return &companyService{
		companyStorage: companyStorage,
		validator:      validator,
		logger:         logger,
	}
}

func (c *companyService) CreateCompany(ctx context.Context, request models.CompanyRequest) (string, error) {
	name, err := c.companyName(ctx, request)
	if err != nil {
		return "", err
	}

	if err = c.companyStorage.CreateCompany(ctx, name); err != nil {
		logger.FromContext(ctx).Err(err).Str("company", name).Msg("creating company file failed")
		return "", fmt.Errorf("creating company file failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("company", name).Msg("company file created")
	return name, nil
}

func (c *companyService) DeleteCompany(ctx context.Context, request models.CompanyRequest) (string, error) {
	name, err := c.companyName(ctx, request)
	if err != nil {
		return "", err
	}

	if err = c.companyStorage.DeleteCompany(ctx, name); err != nil {
		logger.FromContext(ctx).Err(err).Str("company", name).Msg("deleting company file failed")
		return "", fmt.Errorf("deleting company file failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("company", name).Msg("company file deleted")
	return name, nil
}

func (c *companyService) AppendQuestion(ctx context.Context, question models.CompanyQuestion) error {
	question.CompanyName = strings.TrimSpace(question.CompanyName)
	question.Question = strings.TrimSpace(question.Question)
	question.ShortAnswer = strings.TrimSpace(question.ShortAnswer)
	question.DetailedAnswer = strings.TrimSpace(question.DetailedAnswer)

	if err := c.validator.Validate(ctx, question); err != nil {
		return fmt.Errorf("%w: %w", ErrCompanyFieldsRequired, err)
	}

	if err := c.companyStorage.AppendQuestion(ctx, question); err != nil {
		logger.FromContext(ctx).Err(err).Str("company", question.CompanyName).Msg("appending company question failed")
		return fmt.Errorf("appending company question failed: %w", err)
	}

	return nil
}

func (c *companyService) companyName(ctx context.Context, request models.CompanyRequest) (string, error) {
	request.CompanyName = strings.TrimSpace(request.CompanyName)
	if err := c.validator.Validate(ctx, request); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompanyNameRequired, err)
	}
	return request.CompanyName, nil
}
