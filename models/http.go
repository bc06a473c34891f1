package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// SignInRequest is the credential exchange body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest starts password recovery for Email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest completes password recovery.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// FindEmailRequest looks up accounts by display name.
type FindEmailRequest struct {
	Name string `json:"name" validate:"required"`
}

// FolderRequest creates or updates a folder of either kind.
// Color is ignored for user folders.
type FolderRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// MoveRequest reassigns a question to FolderID; nil means unfiled.
type MoveRequest struct {
	FolderID *int64 `json:"folderId"`
}

// AnalyzeRequest is the body of POST /api/portfolio/analyze.
type AnalyzeRequest struct {
	PortfolioID int64 `json:"portfolioId" validate:"required,gt=0"`
}

// CompanyRequest names a company file for create and delete.
type CompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
}

// PortfolioQuestionRequest is the body for creating or updating a portfolio question.
type PortfolioQuestionRequest struct {
	Question        string `json:"question" validate:"required"`
	SuggestedAnswer string `json:"suggestedAnswer" validate:"required"`
}
