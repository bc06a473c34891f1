package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.SignUpRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.SignUpResponse{
		Success: true,
		UserID:  user.UserID,
		Message: app.MsgSignUpSucceeded,
	})
}

// signIn exchanges credentials for a bearer token. The token is returned
// both in the Authorization header and in the body.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignInRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	user, err := h.services.AuthService.SignIn(ctx, request)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully signed in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, models.SignInResponse{
		Token: token.SignedString,
		User:  token.Identity(),
	})
}

// forgotPassword answers the same message whether or not the email exists.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ForgotPasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	resetToken, err := h.services.AuthService.ForgotPassword(r.Context(), request)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.ForgotPasswordResponse{
		Message:    app.MsgResetTokenIssued,
		ResetToken: resetToken,
	})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ResetPasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgPasswordResetSucceeded})
}

func (h *Handler) findEmail(w http.ResponseWriter, r *http.Request) {
	var request models.FindEmailRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgFindEmailFailed)
		return
	}

	emails, err := h.services.AuthService.FindEmail(r.Context(), request)
	if err != nil {
		writeError(w, r, err, app.MsgFindEmailFailed)
		return
	}

	response := models.FindEmailResponse{
		Message: app.MsgNoMatchingAccount,
		Emails:  []models.FoundEmail{},
	}
	if len(emails) > 0 {
		response.Message = fmt.Sprintf(app.MsgAccountsFoundFormat, len(emails))
		response.Emails = emails
	}

	writeJSON(w, r, response)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity, app.MsgLoginRequired)
		return
	}

	writeJSON(w, r, caller)
}
