package models

import "time"

// FolderKind tags which subsystem owns a folder. Both kinds live in one
// table; names are unique per (user, kind).
type FolderKind string

const (
	// FolderKindUser folders hold saved catalog questions.
	FolderKindUser FolderKind = "user"

	// FolderKindPortfolio folders organize portfolio questions and carry a color.
	FolderKindPortfolio FolderKind = "portfolio"
)

// DefaultFolderColor is applied to portfolio folders created or updated
// without an explicit color.
const DefaultFolderColor = "#3B82F6"

// Folder is an owned, named container. Color is only set for portfolio folders.
type Folder struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Kind        FolderKind `json:"-"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Color       *string    `json:"color,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}

// SavedQuestion is a reference to a catalog question filed into a user folder.
// Question and ShortAnswer are denormalized copies taken at save time.
type SavedQuestion struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	FolderID    int64     `json:"folderId" validate:"required"`
	CategoryID  string    `json:"categoryId" validate:"required"`
	QuestionID  string    `json:"questionId" validate:"required"`
	Question    string    `json:"question" validate:"required"`
	ShortAnswer string    `json:"shortAnswer"`
	SavedAt     time.Time `json:"savedAt"`
}

// TableName returns the name of the database table
// associated with the SavedQuestion model.
func (s SavedQuestion) TableName() string {
	return "saved_questions"
}

// FolderSummary is the folder header returned with folder contents.
type FolderSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FolderContents is a folder plus its saved questions, newest first.
type FolderContents struct {
	Folder    FolderSummary   `json:"folder"`
	Questions []SavedQuestion `json:"questions"`
}
