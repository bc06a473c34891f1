package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
)

// folderDeleter removes an owned folder according to the kind's policy.
type folderDeleter func(ctx context.Context, userID, folderID int64) error

// folderService implements FolderService for a single folder kind.
// The kind decides whether folders carry a color and how delete treats the
// folder contents.
type folderService struct {
	kind    models.FolderKind
	colored bool

	folderRepository store.FolderRepository
	validator        validators.Validator
	deleteFolder     folderDeleter

	logger *logger.Logger
}

// NewUserFolderService returns the folder service for saved catalog
// questions. Deleting a folder deletes its saved questions with it.
func NewUserFolderService(folderRepository store.FolderRepository, validator validators.Validator, logger *logger.Logger) FolderService {
	s := &folderService{
		kind:             models.FolderKindUser,
		folderRepository: folderRepository,
		validator:        validator,
		logger:           logger,
	}
	s.deleteFolder = s.deleteCascade
	return s
}

// NewPortfolioFolderService returns the folder service for portfolio
// questions. Folders carry a color, and a folder that still holds questions
// cannot be deleted.
func NewPortfolioFolderService(
	folderRepository store.FolderRepository,
	questionRepository store.PortfolioQuestionRepository,
	validator validators.Validator,
	logger *logger.Logger,
) FolderService {
	s := &folderService{
		kind:             models.FolderKindPortfolio,
		colored:          true,
		folderRepository: folderRepository,
		validator:        validator,
		logger:           logger,
	}
	s.deleteFolder = s.rejectNonEmpty(questionRepository)
	return s
}

func (f *folderService) CreateFolder(ctx context.Context, userID int64, request models.FolderRequest) (models.Folder, error) {
	log := logger.FromContext(ctx)

	folder, err := f.folderFromRequest(ctx, userID, request)
	if err != nil {
		return models.Folder{}, err
	}

	created, err := f.folderRepository.CreateFolder(ctx, folder)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Str("kind", string(f.kind)).
			Str("name", folder.Name).
			Msg("folder creation failed")
		return models.Folder{}, fmt.Errorf("folder creation failed: %w", err)
	}

	return created, nil
}

func (f *folderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	folders, err := f.folderRepository.ListFolders(ctx, userID, f.kind)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Str("kind", string(f.kind)).
			Msg("listing folders failed")
		return nil, fmt.Errorf("listing folders failed: %w", err)
	}
	return folders, nil
}

// UpdateFolder renames the folder and replaces its description (and color
// for colored kinds). The new name must not be used by another folder of
// the same owner.
func (f *folderService) UpdateFolder(ctx context.Context, userID, folderID int64, request models.FolderRequest) (models.Folder, error) {
	log := logger.FromContext(ctx)

	folder, err := f.folderFromRequest(ctx, userID, request)
	if err != nil {
		return models.Folder{}, err
	}
	folder.ID = folderID

	updated, err := f.folderRepository.UpdateFolder(ctx, folder)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("folder_id", folderID).
			Str("kind", string(f.kind)).
			Msg("folder update failed")
		return models.Folder{}, fmt.Errorf("folder update failed: %w", err)
	}

	return updated, nil
}

func (f *folderService) DeleteFolder(ctx context.Context, userID, folderID int64) error {
	if err := f.deleteFolder(ctx, userID, folderID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("folder_id", folderID).
			Str("kind", string(f.kind)).
			Msg("folder deletion failed")
		return fmt.Errorf("folder deletion failed: %w", err)
	}
	return nil
}

func (f *folderService) deleteCascade(ctx context.Context, userID, folderID int64) error {
	return f.folderRepository.DeleteFolderWithContents(ctx, userID, f.kind, folderID)
}

// rejectNonEmpty checks ownership, then refuses folders that still hold
// questions. The foreign key reports the same condition when a question is
// filed between the count and the delete.
func (f *folderService) rejectNonEmpty(questionRepository store.PortfolioQuestionRepository) folderDeleter {
	return func(ctx context.Context, userID, folderID int64) error {
		if _, err := f.folderRepository.GetFolder(ctx, userID, f.kind, folderID); err != nil {
			return err
		}

		count, err := questionRepository.CountQuestionsInFolder(ctx, userID, folderID)
		if err != nil {
			return err
		}
		if count > 0 {
			return store.ErrFolderNotEmpty
		}

		return f.folderRepository.DeleteFolder(ctx, userID, f.kind, folderID)
	}
}

func (f *folderService) folderFromRequest(ctx context.Context, userID int64, request models.FolderRequest) (models.Folder, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	if !f.colored {
		request.Color = nil
	} else if request.Color != nil {
		color := strings.TrimSpace(*request.Color)
		request.Color = &color
		if color == "" {
			request.Color = nil
		}
	}

	if err := f.validator.Validate(ctx, request); err != nil {
		if errors.Is(err, validators.ErrInvalidFormat) {
			return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidFolderColor, err)
		}
		return models.Folder{}, fmt.Errorf("%w: %w", ErrFolderNameRequired, err)
	}

	if f.colored && request.Color == nil {
		color := models.DefaultFolderColor
		request.Color = &color
	}

	return models.Folder{
		UserID:      userID,
		Kind:        f.kind,
		Name:        request.Name,
		Description: request.Description,
		Color:       request.Color,
	}, nil
}
