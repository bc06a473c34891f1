package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched top to bottom with errors.Is; the first hit
// wins. Domain errors precede the low-level store errors they may wrap.
// Conflicts answer 400 and ownership failures answer 404, so a foreign
// entity is indistinguishable from a missing one.
var errorResponses = []errorResponse{
	// request validation
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrSignUpFieldsRequired, http.StatusBadRequest, app.MsgSignUpFieldsRequired},
	{service.ErrSignInFieldsRequired, http.StatusBadRequest, app.MsgSignInFieldsRequired},
	{service.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
	{service.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{service.ErrEmailRequired, http.StatusBadRequest, app.MsgEmailRequired},
	{service.ErrResetFieldsRequired, http.StatusBadRequest, app.MsgResetFieldsRequired},
	{service.ErrPasswordTooShort, http.StatusBadRequest, app.MsgPasswordTooShort},
	{service.ErrNameRequired, http.StatusBadRequest, app.MsgNameRequired},
	{service.ErrFavoriteIDsRequired, http.StatusBadRequest, app.MsgFavoriteIDs},
	{service.ErrFolderNameRequired, http.StatusBadRequest, app.MsgFolderNameRequired},
	{service.ErrInvalidFolderColor, http.StatusBadRequest, app.MsgInvalidFolderColor},
	{service.ErrSaveFieldsRequired, http.StatusBadRequest, app.MsgSaveFieldsRequired},
	{service.ErrInvalidTargetFolder, http.StatusBadRequest, app.MsgTargetFolderRequired},
	{service.ErrFileMissing, http.StatusBadRequest, app.MsgFileMissing},
	{service.ErrOnlyPDFAllowed, http.StatusBadRequest, app.MsgOnlyPDFAllowed},
	{service.ErrFileTooLarge, http.StatusBadRequest, app.MsgFileTooLarge},
	{service.ErrPortfolioIDRequired, http.StatusBadRequest, app.MsgPortfolioIDRequired},
	{service.ErrQuestionAnswerRequired, http.StatusBadRequest, app.MsgQuestionAnswerRequired},
	{store.ErrNothingToUpdate, http.StatusBadRequest, app.MsgQuestionAnswerRequired},
	{service.ErrCompanyNameRequired, http.StatusBadRequest, app.MsgCompanyNameRequired},
	{service.ErrCompanyFieldsRequired, http.StatusBadRequest, app.MsgCompanyFieldsRequired},
	{store.ErrInvalidCompanyName, http.StatusBadRequest, app.MsgCompanyNameInvalid},

	// authentication
	{ErrNoIdentity, http.StatusUnauthorized, app.MsgLoginRequired},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrInvalidResetToken, http.StatusBadRequest, app.MsgInvalidResetToken},

	// conflicts
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyExists},
	{store.ErrFolderNameTaken, http.StatusBadRequest, app.MsgFolderNameTaken},
	{store.ErrQuestionAlreadySaved, http.StatusBadRequest, app.MsgQuestionAlreadySaved},
	{store.ErrFolderNotEmpty, http.StatusBadRequest, app.MsgFolderNotEmptyDetailed},
	{store.ErrCompanyAlreadyExists, http.StatusBadRequest, app.MsgCompanyAlreadyExists},

	// not found or not owned
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},
	{store.ErrSavedQuestionNotFound, http.StatusNotFound, app.MsgQuestionNotFound},
	{store.ErrPortfolioNotFound, http.StatusNotFound, app.MsgPortfolioNotFound},
	{store.ErrPortfolioQuestionNotFound, http.StatusNotFound, app.MsgQuestionNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound, app.MsgCategoryNotFound},
	{store.ErrQuestionNotFound, http.StatusNotFound, app.MsgQuestionNotFound},
	{store.ErrCompanyNotFound, http.StatusNotFound, app.MsgCompanyNotFound},

	// upstream failures
	{service.ErrTextExtractionFailed, http.StatusInternalServerError, app.MsgTextExtractionFailed},
	{service.ErrAnalysisFailed, http.StatusInternalServerError, app.MsgAnalysisFailed},
}

// responseFromError returns the status and the client message for err.
// Errors outside the table become 500 with fallbackMessage.
func responseFromError(err error, fallbackMessage string) (int, string) {
	for _, response := range errorResponses {
		if errors.Is(err, response.target) {
			return response.status, response.message
		}
	}
	return http.StatusInternalServerError, fallbackMessage
}
