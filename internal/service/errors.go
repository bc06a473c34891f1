package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrSignUpFieldsRequired = errors.New("email, password and name are required")
	ErrSignInFieldsRequired = errors.New("email and password are required")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailRequired        = errors.New("email is required")
	ErrResetFieldsRequired  = errors.New("email, reset token and new password are required")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrPasswordTooLong      = errors.New("password is too long")
	ErrNameRequired         = errors.New("name is required")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

var (
	ErrFavoriteIDsRequired = errors.New("category id and question id are required")

	ErrFolderNameRequired  = errors.New("folder name is required")
	ErrInvalidFolderColor  = errors.New("folder color must be a hex color")
	ErrSaveFieldsRequired  = errors.New("folder, category, question id and question are required")
	ErrInvalidTargetFolder = errors.New("target folder id is required")
)

var (
	ErrFileMissing            = errors.New("no file uploaded")
	ErrOnlyPDFAllowed         = errors.New("only pdf files are allowed")
	ErrFileTooLarge           = errors.New("file is too large")
	ErrTextExtractionFailed   = errors.New("text extraction failed")
	ErrPortfolioIDRequired    = errors.New("portfolio id is required")
	ErrAnalysisFailed         = errors.New("portfolio analysis failed")
	ErrQuestionAnswerRequired = errors.New("question and suggested answer are required")
)

var (
	ErrCompanyNameRequired   = errors.New("company name is required")
	ErrCompanyFieldsRequired = errors.New("company name, question and short answer are required")
)
