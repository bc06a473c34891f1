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

type savedQuestionService struct {
	folderRepository        store.FolderRepository
	savedQuestionRepository store.SavedQuestionRepository
	validator               validators.Validator

	logger *logger.Logger
}

func NewSavedQuestionService(
	folderRepository store.FolderRepository,
	savedQuestionRepository store.SavedQuestionRepository,
	validator validators.Validator,
	logger *logger.Logger,
) SavedQuestionService {
	return &savedQuestionService{
		folderRepository:        folderRepository,
		savedQuestionRepository: savedQuestionRepository,
		validator:               validator,
		logger:                  logger,
	}
}

// SaveQuestion files a catalog question into one of the caller's user
// folders. Saving the same question into the same folder twice fails with
// store.ErrQuestionAlreadySaved.
func (s *savedQuestionService) SaveQuestion(ctx context.Context, saved models.SavedQuestion) (models.SavedQuestion, models.Folder, error) {
	log := logger.FromContext(ctx)

	saved.CategoryID = strings.TrimSpace(saved.CategoryID)
	saved.QuestionID = strings.TrimSpace(saved.QuestionID)
	saved.Question = strings.TrimSpace(saved.Question)
	saved.ShortAnswer = strings.TrimSpace(saved.ShortAnswer)

	if err := s.validator.Validate(ctx, saved); err != nil {
		return models.SavedQuestion{}, models.Folder{}, fmt.Errorf("%w: %w", ErrSaveFieldsRequired, err)
	}

	folder, err := s.folderRepository.GetFolder(ctx, saved.UserID, models.FolderKindUser, saved.FolderID)
	if err != nil {
		log.Err(err).Int64("user_id", saved.UserID).Int64("folder_id", saved.FolderID).Msg("target folder lookup failed")
		return models.SavedQuestion{}, models.Folder{}, fmt.Errorf("target folder lookup failed: %w", err)
	}

	created, err := s.savedQuestionRepository.SaveQuestion(ctx, saved)
	if err != nil {
		log.Err(err).
			Int64("user_id", saved.UserID).
			Int64("folder_id", saved.FolderID).
			Str("category", saved.CategoryID).
			Str("question", saved.QuestionID).
			Msg("saving question failed")
		return models.SavedQuestion{}, models.Folder{}, fmt.Errorf("saving question failed: %w", err)
	}

	return created, folder, nil
}

func (s *savedQuestionService) ListFolderContents(ctx context.Context, userID, folderID int64) (models.FolderContents, error) {
	log := logger.FromContext(ctx)

	folder, err := s.folderRepository.GetFolder(ctx, userID, models.FolderKindUser, folderID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("folder_id", folderID).Msg("folder lookup failed")
		return models.FolderContents{}, fmt.Errorf("folder lookup failed: %w", err)
	}

	questions, err := s.savedQuestionRepository.ListSavedQuestions(ctx, userID, folderID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("folder_id", folderID).Msg("listing saved questions failed")
		return models.FolderContents{}, fmt.Errorf("listing saved questions failed: %w", err)
	}
	if questions == nil {
		questions = []models.SavedQuestion{}
	}

	return models.FolderContents{
		Folder: models.FolderSummary{
			ID:          folder.ID,
			Name:        folder.Name,
			Description: folder.Description,
		},
		Questions: questions,
	}, nil
}

func (s *savedQuestionService) DeleteSavedQuestion(ctx context.Context, userID, savedQuestionID int64) error {
	if err := s.savedQuestionRepository.DeleteSavedQuestion(ctx, userID, savedQuestionID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("saved_question_id", savedQuestionID).
			Msg("deleting saved question failed")
		return fmt.Errorf("deleting saved question failed: %w", err)
	}
	return nil
}

func (s *savedQuestionService) MoveSavedQuestion(ctx context.Context, userID, savedQuestionID, targetFolderID int64) error {
	if targetFolderID <= 0 {
		return ErrInvalidTargetFolder
	}

	if err := s.savedQuestionRepository.MoveSavedQuestion(ctx, userID, savedQuestionID, targetFolderID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("saved_question_id", savedQuestionID).
			Int64("target_folder_id", targetFolderID).
			Msg("moving saved question failed")
		return fmt.Errorf("moving saved question failed: %w", err)
	}
	return nil
}
