package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-interview-prep/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, role, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, role, created_at
    FROM users
    WHERE email = $1;`

	setResetToken = `UPDATE users
    SET reset_token = $2, reset_token_expiry = $3
    WHERE email = $1;`

	resetPassword = `UPDATE users
    SET password_hash = $3, reset_token = NULL, reset_token_expiry = NULL
    WHERE email = $1 AND reset_token = $2 AND reset_token_expiry > now();`

	clearExpiredResetTokens = `UPDATE users
    SET reset_token = NULL, reset_token_expiry = NULL
    WHERE reset_token_expiry IS NOT NULL AND reset_token_expiry <= now();`
)

const (
	listFavorites = `SELECT favorite_id, user_id, category_id, question_id, created_at
    FROM favorites
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	deleteFavorite = `DELETE FROM favorites
    WHERE user_id = $1 AND category_id = $2 AND question_id = $3
    RETURNING favorite_id;`

	insertFavorite = `INSERT INTO favorites (user_id, category_id, question_id)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id, category_id, question_id) DO NOTHING;`
)

const (
	createFolder = `INSERT INTO folders (user_id, kind, name, description, color)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING folder_id, user_id, kind, name, description, color, created_at, updated_at;`

	getFolder = `SELECT folder_id, user_id, kind, name, description, color, created_at, updated_at
    FROM folders
    WHERE user_id = $1 AND kind = $2 AND folder_id = $3;`

	updateFolder = `UPDATE folders
    SET name = $4, description = $5, color = $6, updated_at = now()
    WHERE user_id = $1 AND kind = $2 AND folder_id = $3
    RETURNING folder_id, user_id, kind, name, description, color, created_at, updated_at;`

	deleteFolder = `DELETE FROM folders
    WHERE user_id = $1 AND kind = $2 AND folder_id = $3;`

	deleteFolderSavedQuestions = `DELETE FROM saved_questions
    WHERE user_id = $1 AND folder_id = $2;`

	touchFolder = `UPDATE folders
    SET updated_at = now()
    WHERE folder_id = $1 AND user_id = $2;`
)

const (
	// saveQuestion inserts only when the folder is an owned user folder.
	saveQuestion = `INSERT INTO saved_questions (user_id, folder_id, category_id, question_id, question, short_answer)
    SELECT $1, f.folder_id, $3, $4, $5, $6
    FROM folders f
    WHERE f.folder_id = $2 AND f.user_id = $1 AND f.kind = 'user'
    RETURNING saved_question_id, saved_at;`

	listSavedQuestions = `SELECT saved_question_id, user_id, folder_id, category_id, question_id, question, short_answer, saved_at
    FROM saved_questions
    WHERE user_id = $1 AND folder_id = $2
    ORDER BY saved_at DESC;`

	deleteSavedQuestion = `DELETE FROM saved_questions
    WHERE user_id = $1 AND saved_question_id = $2;`

	moveSavedQuestion = `UPDATE saved_questions
    SET folder_id = $3
    WHERE user_id = $1 AND saved_question_id = $2
      AND EXISTS (SELECT 1 FROM folders f WHERE f.folder_id = $3 AND f.user_id = $1 AND f.kind = 'user');`

	savedQuestionExists = `SELECT EXISTS (SELECT 1 FROM saved_questions WHERE user_id = $1 AND saved_question_id = $2);`
)

const (
	createPortfolio = `INSERT INTO portfolios (user_id, file_name, content)
    VALUES ($1, $2, $3)
    RETURNING portfolio_id, uploaded_at;`

	getPortfolio = `SELECT portfolio_id, user_id, file_name, content, uploaded_at, analyzed_at
    FROM portfolios
    WHERE user_id = $1 AND portfolio_id = $2;`

	listPortfolios = `SELECT portfolio_id, user_id, file_name, uploaded_at, analyzed_at
    FROM portfolios
    WHERE user_id = $1
    ORDER BY uploaded_at DESC;`

	deleteGeneratedQuestions = `DELETE FROM portfolio_questions
    WHERE user_id = $1 AND portfolio_id = $2 AND is_ai_generated;`

	insertGeneratedQuestion = `INSERT INTO portfolio_questions (user_id, portfolio_id, question, suggested_answer, category, is_ai_generated)
    VALUES ($1, $2, $3, $4, $5, TRUE);`

	markPortfolioAnalyzed = `UPDATE portfolios
    SET analyzed_at = now()
    WHERE user_id = $1 AND portfolio_id = $2;`
)

const (
	portfolioQuestionColumns = `portfolio_question_id, user_id, portfolio_id, folder_id, question, suggested_answer, category, is_ai_generated, created_at, updated_at`

	createPortfolioQuestion = `INSERT INTO portfolio_questions (user_id, question, suggested_answer, category, is_ai_generated)
    VALUES ($1, $2, $3, $4, FALSE)
    RETURNING ` + portfolioQuestionColumns + `;`

	listPortfolioQuestions = `SELECT ` + portfolioQuestionColumns + `
    FROM portfolio_questions
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	deletePortfolioQuestion = `DELETE FROM portfolio_questions
    WHERE user_id = $1 AND portfolio_question_id = $2;`

	// movePortfolioQuestion accepts a NULL folder or an owned portfolio folder.
	movePortfolioQuestion = `UPDATE portfolio_questions
    SET folder_id = $3, updated_at = now()
    WHERE user_id = $1 AND portfolio_question_id = $2
      AND ($3::bigint IS NULL OR EXISTS (
        SELECT 1 FROM folders f WHERE f.folder_id = $3 AND f.user_id = $1 AND f.kind = 'portfolio'));`

	portfolioQuestionExists = `SELECT EXISTS (SELECT 1 FROM portfolio_questions WHERE user_id = $1 AND portfolio_question_id = $2);`

	countQuestionsInFolder = `SELECT count(*)
    FROM portfolio_questions
    WHERE user_id = $1 AND folder_id = $2;`
)

var folderColumns = []string{
	"folder_id", "user_id", "kind", "name", "description", "color", "created_at", "updated_at",
}

// buildListFoldersQuery lists the owner's folders of one kind, newest first.
func buildListFoldersQuery(_ context.Context, userID int64, kind models.FolderKind) (string, []any, error) {
	return sq.Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"user_id": userID, "kind": string(kind)}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSearchUsersByNameQuery matches name as a case-insensitive substring.
// Admin accounts are never returned.
func buildSearchUsersByNameQuery(_ context.Context, name string) (string, []any, error) {
	return sq.Select("user_id", "email", "name", "role", "created_at").
		From("users").
		Where(sq.ILike{"name": "%" + escapeLikePattern(name) + "%"}).
		Where(sq.NotEq{"role": string(models.RoleAdmin)}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildUpdatePortfolioQuestionQuery sets only the non-nil fields of update.
func buildUpdatePortfolioQuestionQuery(_ context.Context, update models.PortfolioQuestionUpdate) (string, []any, error) {
	builder := sq.Update("portfolio_questions").
		Set("updated_at", sq.Expr("now()"))

	fields := 0
	if update.Question != nil {
		builder = builder.Set("question", *update.Question)
		fields++
	}
	if update.SuggestedAnswer != nil {
		builder = builder.Set("suggested_answer", *update.SuggestedAnswer)
		fields++
	}
	if fields == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"user_id": update.UserID, "portfolio_question_id": update.ID}).
		Suffix("RETURNING " + portfolioQuestionColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
