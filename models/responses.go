package models

// ErrorResponse is the body of every non-2xx response.
// Error is a short localized message; internal details are never included.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a mutation without returning data.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignUpResponse is returned after a successful registration.
type SignUpResponse struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

// SignInResponse carries the issued bearer token and the caller identity.
type SignInResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// ForgotPasswordResponse is identical for known and unknown emails.
// ResetToken is only filled when the server runs with token exposure enabled.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// FindEmailResponse lists masked emails matching a name search.
type FindEmailResponse struct {
	Message string       `json:"message"`
	Emails  []FoundEmail `json:"emails"`
}

// ToggleFavoriteResponse reports the membership state after a toggle.
type ToggleFavoriteResponse struct {
	Message    string `json:"message"`
	IsFavorite bool   `json:"isFavorite"`
}

// FolderCreatedResponse is returned after creating a folder of either kind.
type FolderCreatedResponse struct {
	Success  bool   `json:"success"`
	FolderID int64  `json:"folderId"`
	Message  string `json:"message"`
}

// SavedQuestionCreatedResponse is returned after filing a catalog question.
type SavedQuestionCreatedResponse struct {
	Success         bool   `json:"success"`
	SavedQuestionID int64  `json:"savedQuestionId"`
	Message         string `json:"message"`
}

// QuestionCreatedResponse is returned after creating a portfolio question.
type QuestionCreatedResponse struct {
	Success    bool   `json:"success"`
	QuestionID int64  `json:"questionId"`
	Message    string `json:"message"`
}

// PortfolioUploadedResponse is returned after a successful PDF upload.
type PortfolioUploadedResponse struct {
	Success     bool   `json:"success"`
	PortfolioID int64  `json:"portfolioId"`
	Message     string `json:"message"`
}

// AnalyzeResponse reports how many questions the summarizer produced.
type AnalyzeResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// VersionResponse exposes build metadata.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
