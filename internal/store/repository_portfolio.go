package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
)

type portfolioRepository struct {
	*DB
	logger *logger.Logger
}

// NewPortfolioRepository constructs a [PortfolioRepository] on top of db.
func NewPortfolioRepository(db *DB, logger *logger.Logger) PortfolioRepository {
	return &portfolioRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *portfolioRepository) CreatePortfolio(ctx context.Context, portfolio models.Portfolio) (models.Portfolio, error) {
	log := logger.FromContext(ctx)

	err := p.DB.QueryRowContext(ctx, createPortfolio, portfolio.UserID, portfolio.FileName, portfolio.Content).
		Scan(&portfolio.ID, &portfolio.UploadedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioRepository.CreatePortfolio").
			Int64("user_id", portfolio.UserID).
			Str("file_name", portfolio.FileName).
			Msg("failed to store portfolio")
		return models.Portfolio{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return portfolio, nil
}

func (p *portfolioRepository) GetPortfolio(ctx context.Context, userID, portfolioID int64) (models.Portfolio, error) {
	log := logger.FromContext(ctx)

	var portfolio models.Portfolio
	err := p.DB.QueryRowContext(ctx, getPortfolio, userID, portfolioID).Scan(
		&portfolio.ID,
		&portfolio.UserID,
		&portfolio.FileName,
		&portfolio.Content,
		&portfolio.UploadedAt,
		&portfolio.AnalyzedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Portfolio{}, ErrPortfolioNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioRepository.GetPortfolio").
			Int64("user_id", userID).
			Int64("portfolio_id", portfolioID).
			Msg("failed to get portfolio")
		return models.Portfolio{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return portfolio, nil
}

// ListPortfolios returns the owner's portfolios without their extracted text.
func (p *portfolioRepository) ListPortfolios(ctx context.Context, userID int64) ([]models.Portfolio, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPortfolios, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*portfolioRepository.ListPortfolios").
			Int64("user_id", userID).
			Msg("failed to execute query for listing portfolios")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	portfolios := make([]models.Portfolio, 0)
	for rows.Next() {
		var portfolio models.Portfolio
		if err := rows.Scan(&portfolio.ID, &portfolio.UserID, &portfolio.FileName, &portfolio.UploadedAt, &portfolio.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		portfolios = append(portfolios, portfolio)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return portfolios, nil
}

// ReplaceGeneratedQuestions marks the portfolio analyzed, drops its earlier
// AI questions and inserts questions. Everything happens in one transaction,
// so a repeated analysis replaces the previous result instead of adding to it.
func (p *portfolioRepository) ReplaceGeneratedQuestions(ctx context.Context, userID, portfolioID int64, questions []models.GeneratedQuestion) (int, error) {
	log := logger.FromContext(ctx)

	err := p.withTx(ctx, "*portfolioRepository.ReplaceGeneratedQuestions", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, markPortfolioAnalyzed, userID, portfolioID)
		if err != nil {
			log.Err(err).
				Str("func", "*portfolioRepository.ReplaceGeneratedQuestions").
				Int64("portfolio_id", portfolioID).
				Msg("failed to mark portfolio analyzed")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrPortfolioNotFound
		}

		if _, err := tx.ExecContext(ctx, deleteGeneratedQuestions, userID, portfolioID); err != nil {
			log.Err(err).
				Str("func", "*portfolioRepository.ReplaceGeneratedQuestions").
				Int64("portfolio_id", portfolioID).
				Msg("failed to delete previous generated questions")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for i, q := range questions {
			if _, err := tx.ExecContext(ctx, insertGeneratedQuestion, userID, portfolioID, q.Question, q.SuggestedAnswer, models.PortfolioCategory); err != nil {
				log.Err(err).
					Str("func", "*portfolioRepository.ReplaceGeneratedQuestions").
					Int64("portfolio_id", portfolioID).
					Int("iteration", i).
					Msg("failed to insert generated question")
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(questions), nil
}
