package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when signup hits the unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidResetToken is returned when no user matches the email, token
	// hash and unexpired deadline of a password reset.
	ErrInvalidResetToken = errors.New("reset token is invalid or expired")

	// ErrFolderNameTaken is returned when the owner already has a folder of
	// the same kind with that name.
	ErrFolderNameTaken = errors.New("folder name already taken")

	// ErrFolderNotFound covers both missing folders and folders owned by
	// someone else.
	ErrFolderNotFound = errors.New("folder was not found")

	// ErrFolderNotEmpty is returned when a portfolio folder is still
	// referenced by at least one question.
	ErrFolderNotEmpty = errors.New("folder is not empty")

	ErrQuestionAlreadySaved  = errors.New("question already saved in folder")
	ErrSavedQuestionNotFound = errors.New("saved question was not found")

	ErrPortfolioNotFound         = errors.New("portfolio was not found")
	ErrPortfolioQuestionNotFound = errors.New("portfolio question was not found")

	// ErrNothingToUpdate is returned by partial updates without any field set.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// File-backed store errors.
var (
	ErrCategoryNotFound = errors.New("category was not found")
	ErrQuestionNotFound = errors.New("question was not found")

	// ErrInvalidCompanyName is returned for names that would escape the
	// company directory.
	ErrInvalidCompanyName   = errors.New("invalid company name")
	ErrCompanyAlreadyExists = errors.New("company file already exists")
	ErrCompanyNotFound      = errors.New("company file was not found")

	// ErrMalformedFrontMatter is returned when a markdown file opens a front
	// matter block that cannot be parsed.
	ErrMalformedFrontMatter = errors.New("malformed front matter")

	// ErrInvalidCategoryRegistry is returned when the category registry has
	// empty or duplicate ids, or an id that is not a plain directory name.
	ErrInvalidCategoryRegistry = errors.New("invalid category registry")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with
	// squirrel fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
