package models

import "time"

// Favorite marks a catalog question as liked by a user.
// At most one row exists per (UserID, CategoryID, QuestionID).
type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	CategoryID string    `json:"categoryId" validate:"required"`
	QuestionID string    `json:"questionId" validate:"required"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
