package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/models"
)

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	var request models.CompanyRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	name, err := h.services.CompanyService.CreateCompany(r.Context(), request)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{
		Success: true,
		Message: fmt.Sprintf(app.MsgCompanyCreatedFormat, name),
	})
}

func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	var request models.CompanyRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	name, err := h.services.CompanyService.DeleteCompany(r.Context(), request)
	if errors.Is(err, service.ErrCompanyNameRequired) {
		utils.WriteError(w, app.MsgCompanyNameMissing, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{
		Success: true,
		Message: fmt.Sprintf(app.MsgCompanyDeletedFormat, name),
	})
}

func (h *Handler) appendCompanyQuestion(w http.ResponseWriter, r *http.Request) {
	var question models.CompanyQuestion
	if err := decodeJSON(r, &question); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	if err := h.services.CompanyService.AppendQuestion(r.Context(), question); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgCompanyQuestionAppended})
}
