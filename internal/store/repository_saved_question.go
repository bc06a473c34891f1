package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/jackc/pgerrcode"
)

type savedQuestionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSavedQuestionRepository constructs a [SavedQuestionRepository] on top of db.
func NewSavedQuestionRepository(db *DB, logger *logger.Logger) SavedQuestionRepository {
	return &savedQuestionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveQuestion files a catalog question into an owned user folder and bumps
// the folder's updated_at in the same transaction.
//
// Error handling:
//   - folder missing or not owned → [ErrFolderNotFound].
//   - same question already in the folder → [ErrQuestionAlreadySaved].
func (s *savedQuestionRepository) SaveQuestion(ctx context.Context, saved models.SavedQuestion) (models.SavedQuestion, error) {
	log := logger.FromContext(ctx)

	err := s.withTx(ctx, "*savedQuestionRepository.SaveQuestion", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, saveQuestion,
			saved.UserID,
			saved.FolderID,
			saved.CategoryID,
			saved.QuestionID,
			saved.Question,
			saved.ShortAnswer,
		).Scan(&saved.ID, &saved.SavedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFolderNotFound
		}
		if err != nil {
			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return ErrQuestionAlreadySaved
			case pgerrcode.ForeignKeyViolation:
				return ErrFolderNotFound
			}

			log.Err(err).
				Str("func", "*savedQuestionRepository.SaveQuestion").
				Int64("user_id", saved.UserID).
				Int64("folder_id", saved.FolderID).
				Msg("failed to save question")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if _, err := tx.ExecContext(ctx, touchFolder, saved.FolderID, saved.UserID); err != nil {
			log.Err(err).
				Str("func", "*savedQuestionRepository.SaveQuestion").
				Int64("folder_id", saved.FolderID).
				Msg("failed to bump folder updated_at")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		return models.SavedQuestion{}, err
	}

	return saved, nil
}

func (s *savedQuestionRepository) ListSavedQuestions(ctx context.Context, userID, folderID int64) ([]models.SavedQuestion, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, listSavedQuestions, userID, folderID)
	if err != nil {
		log.Err(err).
			Str("func", "*savedQuestionRepository.ListSavedQuestions").
			Int64("user_id", userID).
			Int64("folder_id", folderID).
			Msg("failed to execute query for listing saved questions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.SavedQuestion, 0)
	for rows.Next() {
		var q models.SavedQuestion
		if err := rows.Scan(
			&q.ID,
			&q.UserID,
			&q.FolderID,
			&q.CategoryID,
			&q.QuestionID,
			&q.Question,
			&q.ShortAnswer,
			&q.SavedAt,
		); err != nil {
			log.Err(err).
				Str("func", "*savedQuestionRepository.ListSavedQuestions").
				Int64("folder_id", folderID).
				Msg("failed to scan saved question")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return questions, nil
}

// DeleteSavedQuestion checks ownership on the saved question itself.
func (s *savedQuestionRepository) DeleteSavedQuestion(ctx context.Context, userID, savedQuestionID int64) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, deleteSavedQuestion, userID, savedQuestionID)
	if err != nil {
		log.Err(err).
			Str("func", "*savedQuestionRepository.DeleteSavedQuestion").
			Int64("user_id", userID).
			Int64("saved_question_id", savedQuestionID).
			Msg("failed to delete saved question")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSavedQuestionNotFound
	}

	return nil
}

// MoveSavedQuestion reassigns a saved question to another owned user folder.
//
// Error handling:
//   - saved question missing or not owned → [ErrSavedQuestionNotFound].
//   - target folder missing or not owned → [ErrFolderNotFound].
//   - question already present in the target → [ErrQuestionAlreadySaved].
func (s *savedQuestionRepository) MoveSavedQuestion(ctx context.Context, userID, savedQuestionID, targetFolderID int64) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, moveSavedQuestion, userID, savedQuestionID, targetFolderID)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrQuestionAlreadySaved
		}

		log.Err(err).
			Str("func", "*savedQuestionRepository.MoveSavedQuestion").
			Int64("user_id", userID).
			Int64("saved_question_id", savedQuestionID).
			Int64("folder_id", targetFolderID).
			Msg("failed to move saved question")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected > 0 {
		return nil
	}

	// nothing moved: tell a missing question from a foreign target folder
	var exists bool
	if err := s.DB.QueryRowContext(ctx, savedQuestionExists, userID, savedQuestionID).Scan(&exists); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists {
		return ErrSavedQuestionNotFound
	}

	return ErrFolderNotFound
}
