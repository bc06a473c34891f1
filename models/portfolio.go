package models

import "time"

// PortfolioCategory is the fixed category value of every portfolio question.
const PortfolioCategory = "portfolio"

// Portfolio is an uploaded PDF reduced to its extracted text.
// AnalyzedAt is nil until the summarizer has produced questions for it.
type Portfolio struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"userId"`
	FileName   string     `json:"fileName"`
	Content    string     `json:"content,omitempty"`
	UploadedAt time.Time  `json:"uploadedAt"`
	AnalyzedAt *time.Time `json:"analyzedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the Portfolio model.
func (p Portfolio) TableName() string {
	return "portfolios"
}

// PortfolioQuestion is an admin-owned interview question, either generated
// from a portfolio or written by hand. A nil FolderID means unfiled.
type PortfolioQuestion struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	PortfolioID     *int64    `json:"portfolioId,omitempty"`
	FolderID        *int64    `json:"folderId"`
	Question        string    `json:"question" validate:"required"`
	SuggestedAnswer string    `json:"suggestedAnswer" validate:"required"`
	Category        string    `json:"category"`
	IsAIGenerated   bool      `json:"isAIGenerated"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the PortfolioQuestion model.
func (p PortfolioQuestion) TableName() string {
	return "portfolio_questions"
}

// PortfolioQuestionUpdate is a partial update. Nil fields are left untouched.
type PortfolioQuestionUpdate struct {
	ID              int64
	UserID          int64
	Question        *string
	SuggestedAnswer *string
}

// GeneratedQuestion is one question/answer pair produced by the summarizer.
type GeneratedQuestion struct {
	Question        string `json:"question"`
	SuggestedAnswer string `json:"suggestedAnswer"`
}

// UploadedFile is a received multipart file with its client-declared metadata.
type UploadedFile struct {
	Name     string
	MimeType string
	Size     int64
	Data     []byte
}
