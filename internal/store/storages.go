package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
)

// Storages groups every repository and file store used by the services.
type Storages struct {
	UserRepository              UserRepository
	FavoriteRepository          FavoriteRepository
	FolderRepository            FolderRepository
	SavedQuestionRepository     SavedQuestionRepository
	PortfolioRepository         PortfolioRepository
	PortfolioQuestionRepository PortfolioQuestionRepository
	QuestionCatalog             QuestionCatalog
	CompanyFileStorage          CompanyFileStorage

	db *DB
}

// NewStorages connects to Postgres, applies migrations and opens the
// markdown stores below cfg.Files.QuestionsDir.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	registry, err := LoadCategoryRegistry(cfg.Files.CategoriesFile)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	catalog, err := NewFileQuestionCatalog(cfg.Files.QuestionsDir, registry, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:              NewUserRepository(db, log),
		FavoriteRepository:          NewFavoriteRepository(db, log),
		FolderRepository:            NewFolderRepository(db, log),
		SavedQuestionRepository:     NewSavedQuestionRepository(db, log),
		PortfolioRepository:         NewPortfolioRepository(db, log),
		PortfolioQuestionRepository: NewPortfolioQuestionRepository(db, log),
		QuestionCatalog:             catalog,
		CompanyFileStorage:          NewCompanyFileStorage(cfg.Files.QuestionsDir, log),
		db:                          db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
