package service

import (
	"context"

	"github.com/MKhiriev/go-interview-prep/models"
)

type AuthService interface {
	SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error)
	SignIn(ctx context.Context, request models.SignInRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ForgotPassword issues a reset token for the account. It returns the
	// plain token only when token exposure is enabled and the account exists.
	ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error
	FindEmail(ctx context.Context, request models.FindEmailRequest) ([]models.FoundEmail, error)

	ClearExpiredResetTokens(ctx context.Context) (int64, error)
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error)
	GetQuestion(ctx context.Context, categoryID, questionID string) (models.Question, error)
}

type FavoriteService interface {
	ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	ToggleFavorite(ctx context.Context, favorite models.Favorite) (bool, error)
}

// FolderService manages owned folders of one kind. User folders and
// portfolio folders share it and differ only in color handling and in what
// happens to the contents on delete.
type FolderService interface {
	CreateFolder(ctx context.Context, userID int64, request models.FolderRequest) (models.Folder, error)
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	UpdateFolder(ctx context.Context, userID, folderID int64, request models.FolderRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, userID, folderID int64) error
}

type SavedQuestionService interface {
	// SaveQuestion files a catalog question and returns it with the folder it
	// was filed into.
	SaveQuestion(ctx context.Context, saved models.SavedQuestion) (models.SavedQuestion, models.Folder, error)
	ListFolderContents(ctx context.Context, userID, folderID int64) (models.FolderContents, error)
	DeleteSavedQuestion(ctx context.Context, userID, savedQuestionID int64) error
	MoveSavedQuestion(ctx context.Context, userID, savedQuestionID, targetFolderID int64) error
}

type PortfolioService interface {
	Upload(ctx context.Context, userID int64, file models.UploadedFile) (models.Portfolio, error)
	ListPortfolios(ctx context.Context, userID int64) ([]models.Portfolio, error)
	Analyze(ctx context.Context, userID, portfolioID int64) (int, error)

	CreateQuestion(ctx context.Context, userID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error)
	ListQuestions(ctx context.Context, userID int64) ([]models.PortfolioQuestion, error)
	UpdateQuestion(ctx context.Context, userID, questionID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error)
	DeleteQuestion(ctx context.Context, userID, questionID int64) error
	MoveQuestion(ctx context.Context, userID, questionID int64, folderID *int64) error
}

type CompanyService interface {
	// CreateCompany and DeleteCompany return the normalized company name.
	CreateCompany(ctx context.Context, request models.CompanyRequest) (string, error)
	DeleteCompany(ctx context.Context, request models.CompanyRequest) (string, error)
	AppendQuestion(ctx context.Context, question models.CompanyQuestion) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
