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

type portfolioQuestionRepository struct {
	*DB
	logger *logger.Logger
}

// NewPortfolioQuestionRepository constructs a [PortfolioQuestionRepository] on top of db.
func NewPortfolioQuestionRepository(db *DB, logger *logger.Logger) PortfolioQuestionRepository {
	return &portfolioQuestionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateQuestion stores a hand-written, unfiled question.
func (p *portfolioQuestionRepository) CreateQuestion(ctx context.Context, question models.PortfolioQuestion) (models.PortfolioQuestion, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPortfolioQuestion, question.UserID, question.Question, question.SuggestedAnswer, models.PortfolioCategory)
	created, err := scanPortfolioQuestion(row)
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioQuestionRepository.CreateQuestion").
			Int64("user_id", question.UserID).
			Msg("failed to create question")
		return models.PortfolioQuestion{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (p *portfolioQuestionRepository) ListQuestions(ctx context.Context, userID int64) ([]models.PortfolioQuestion, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPortfolioQuestions, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioQuestionRepository.ListQuestions").
			Int64("user_id", userID).
			Msg("failed to execute query for listing questions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.PortfolioQuestion, 0)
	for rows.Next() {
		q, err := scanPortfolioQuestion(rows)
		if err != nil {
			log.Err(err).
				Str("func", "*portfolioQuestionRepository.ListQuestions").
				Int64("user_id", userID).
				Msg("failed to scan question")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return questions, nil
}

// UpdateQuestion applies a partial update and returns the stored row.
// An update without any field set → [ErrNothingToUpdate].
func (p *portfolioQuestionRepository) UpdateQuestion(ctx context.Context, update models.PortfolioQuestionUpdate) (models.PortfolioQuestion, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePortfolioQuestionQuery(ctx, update)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.PortfolioQuestion{}, err
	}
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioQuestionRepository.UpdateQuestion").
			Int64("question_id", update.ID).
			Msg("failed to create query")
		return models.PortfolioQuestion{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPortfolioQuestion(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PortfolioQuestion{}, ErrPortfolioQuestionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioQuestionRepository.UpdateQuestion").
			Int64("user_id", update.UserID).
			Int64("question_id", update.ID).
			Msg("failed to update question")
		return models.PortfolioQuestion{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (p *portfolioQuestionRepository) DeleteQuestion(ctx context.Context, userID, questionID int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePortfolioQuestion, userID, questionID)
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioQuestionRepository.DeleteQuestion").
			Int64("user_id", userID).
			Int64("question_id", questionID).
			Msg("failed to delete question")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPortfolioQuestionNotFound
	}

	return nil
}

// MoveQuestion files the question into folderID, or unfiles it for nil.
//
// Error handling:
//   - question missing or not owned → [ErrPortfolioQuestionNotFound].
//   - folder missing, not owned or a user folder → [ErrFolderNotFound].
func (p *portfolioQuestionRepository) MoveQuestion(ctx context.Context, userID, questionID int64, folderID *int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, movePortfolioQuestion, userID, questionID, folderID)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrFolderNotFound
		}

		log.Err(err).
			Str("func", "*portfolioQuestionRepository.MoveQuestion").
			Int64("user_id", userID).
			Int64("question_id", questionID).
			Msg("failed to move question")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := p.DB.QueryRowContext(ctx, portfolioQuestionExists, userID, questionID).Scan(&exists); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists || folderID == nil {
		return ErrPortfolioQuestionNotFound
	}

	return ErrFolderNotFound
}

func (p *portfolioQuestionRepository) CountQuestionsInFolder(ctx context.Context, userID, folderID int64) (int, error) {
	var count int
	if err := p.DB.QueryRowContext(ctx, countQuestionsInFolder, userID, folderID).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*portfolioQuestionRepository.CountQuestionsInFolder").
			Int64("folder_id", folderID).
			Msg("failed to count questions in folder")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func scanPortfolioQuestion(row rowScanner) (models.PortfolioQuestion, error) {
	var q models.PortfolioQuestion
	err := row.Scan(
		&q.ID,
		&q.UserID,
		&q.PortfolioID,
		&q.FolderID,
		&q.Question,
		&q.SuggestedAnswer,
		&q.Category,
		&q.IsAIGenerated,
		&q.CreatedAt,
		&q.UpdatedAt,
	)

	return q, err
}
