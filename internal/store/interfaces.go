package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-interview-prep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their pending password resets.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	SearchUsersByName(ctx context.Context, name string) ([]models.User, error)
	SetResetToken(ctx context.Context, email, tokenHash string, expiry time.Time) error
	ResetPassword(ctx context.Context, email, tokenHash, passwordHash string) error
	ClearExpiredResetTokens(ctx context.Context) (int64, error)
}

// FavoriteRepository keeps the per-user set of favorited catalog questions.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	// ToggleFavorite removes the favorite when present and adds it otherwise.
	// It returns the membership after the call.
	ToggleFavorite(ctx context.Context, favorite models.Favorite) (bool, error)
}

// FolderRepository stores folders of both kinds. Every method is scoped to
// the owner and the kind so a folder is invisible to other users and to the
// other subsystem.
type FolderRepository interface {
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	ListFolders(ctx context.Context, userID int64, kind models.FolderKind) ([]models.Folder, error)
	GetFolder(ctx context.Context, userID int64, kind models.FolderKind, folderID int64) (models.Folder, error)
	UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolder(ctx context.Context, userID int64, kind models.FolderKind, folderID int64) error
	DeleteFolderWithContents(ctx context.Context, userID int64, kind models.FolderKind, folderID int64) error
}

// SavedQuestionRepository files catalog questions into user folders.
type SavedQuestionRepository interface {
	SaveQuestion(ctx context.Context, saved models.SavedQuestion) (models.SavedQuestion, error)
	ListSavedQuestions(ctx context.Context, userID, folderID int64) ([]models.SavedQuestion, error)
	DeleteSavedQuestion(ctx context.Context, userID, savedQuestionID int64) error
	MoveSavedQuestion(ctx context.Context, userID, savedQuestionID, targetFolderID int64) error
}

// PortfolioRepository stores uploaded portfolios and their generated questions.
type PortfolioRepository interface {
	CreatePortfolio(ctx context.Context, portfolio models.Portfolio) (models.Portfolio, error)
	GetPortfolio(ctx context.Context, userID, portfolioID int64) (models.Portfolio, error)
	ListPortfolios(ctx context.Context, userID int64) ([]models.Portfolio, error)
	// ReplaceGeneratedQuestions drops the AI questions previously generated
	// from the portfolio and stores questions in their place.
	ReplaceGeneratedQuestions(ctx context.Context, userID, portfolioID int64, questions []models.GeneratedQuestion) (int, error)
}

// PortfolioQuestionRepository manages the admin question bank.
type PortfolioQuestionRepository interface {
	CreateQuestion(ctx context.Context, question models.PortfolioQuestion) (models.PortfolioQuestion, error)
	ListQuestions(ctx context.Context, userID int64) ([]models.PortfolioQuestion, error)
	UpdateQuestion(ctx context.Context, update models.PortfolioQuestionUpdate) (models.PortfolioQuestion, error)
	DeleteQuestion(ctx context.Context, userID, questionID int64) error
	// MoveQuestion files the question into folderID, or unfiles it when
	// folderID is nil.
	MoveQuestion(ctx context.Context, userID, questionID int64, folderID *int64) error
	CountQuestionsInFolder(ctx context.Context, userID, folderID int64) (int, error)
}

// QuestionCatalog is the read-only markdown question bank.
type QuestionCatalog interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, categoryID string) (models.CategoryInfo, error)
	ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error)
	GetQuestion(ctx context.Context, categoryID, questionID string) (models.Question, error)
}

// CompanyFileStorage creates, deletes and extends company question files.
type CompanyFileStorage interface {
	CreateCompany(ctx context.Context, companyName string) error
	DeleteCompany(ctx context.Context, companyName string) error
	AppendQuestion(ctx context.Context, question models.CompanyQuestion) error
}
