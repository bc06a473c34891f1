package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/models"
)

const (
	portfolioFormField = "file"

	// multipartOverhead is allowed on top of the file limit for boundaries
	// and part headers.
	multipartOverhead = 1 << 20
)

func (h *Handler) listPortfolios(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	portfolios, err := h.services.PortfolioService.ListPortfolios(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	if portfolios == nil {
		portfolios = []models.Portfolio{}
	}

	writeJSON(w, r, portfolios)
}

// uploadPortfolio accepts a multipart form with the PDF in the "file" field.
func (h *Handler) uploadPortfolio(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	file, err := readUploadedFile(w, r)
	if err != nil {
		writeError(w, r, err, app.MsgUploadFailed)
		return
	}

	portfolio, err := h.services.PortfolioService.Upload(r.Context(), caller.UserID, file)
	if err != nil {
		writeError(w, r, err, app.MsgUploadFailed)
		return
	}

	writeJSON(w, r, models.PortfolioUploadedResponse{
		Success:     true,
		PortfolioID: portfolio.ID,
		Message:     app.MsgPortfolioUploaded,
	})
}

func readUploadedFile(w http.ResponseWriter, r *http.Request) (models.UploadedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxPortfolioSize+multipartOverhead)

	part, header, err := r.FormFile(portfolioFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return models.UploadedFile{}, fmt.Errorf("%w: %w", service.ErrFileTooLarge, err)
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return models.UploadedFile{}, fmt.Errorf("%w: %w", service.ErrFileMissing, err)
		default:
			return models.UploadedFile{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		}
	}
	defer part.Close()

	// One byte past the limit is enough for the service to reject the size.
	data, err := io.ReadAll(io.LimitReader(part, service.MaxPortfolioSize+1))
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("reading uploaded file failed: %w", err)
	}

	return models.UploadedFile{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Data:     data,
	}, nil
}

func (h *Handler) analyzePortfolio(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	var request models.AnalyzeRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgAnalysisFailed)
		return
	}

	count, err := h.services.PortfolioService.Analyze(r.Context(), caller.UserID, request.PortfolioID)
	if err != nil {
		writeError(w, r, err, app.MsgAnalysisFailed)
		return
	}

	writeJSON(w, r, models.AnalyzeResponse{
		Success: true,
		Count:   count,
		Message: fmt.Sprintf(app.MsgQuestionsGenerated, count),
	})
}

func (h *Handler) listPortfolioQuestions(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	questions, err := h.services.PortfolioService.ListQuestions(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	if questions == nil {
		questions = []models.PortfolioQuestion{}
	}

	writeJSON(w, r, questions)
}

func (h *Handler) createPortfolioQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	var request models.PortfolioQuestionRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	question, err := h.services.PortfolioService.CreateQuestion(r.Context(), caller.UserID, request)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.QuestionCreatedResponse{
		Success:    true,
		QuestionID: question.ID,
		Message:    app.MsgQuestionAdded,
	})
}

func (h *Handler) updatePortfolioQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	questionID, ok := pathID(r, "questionID")
	if !ok {
		writeError(w, r, store.ErrPortfolioQuestionNotFound, app.MsgInternalServerError)
		return
	}

	var request models.PortfolioQuestionRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	if _, err = h.services.PortfolioService.UpdateQuestion(r.Context(), caller.UserID, questionID, request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgQuestionUpdated})
}

func (h *Handler) deletePortfolioQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	questionID, ok := pathID(r, "questionID")
	if !ok {
		writeError(w, r, store.ErrPortfolioQuestionNotFound, app.MsgInternalServerError)
		return
	}

	if err = h.services.PortfolioService.DeleteQuestion(r.Context(), caller.UserID, questionID); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgQuestionDeleted})
}

// movePortfolioQuestion files the question into {"folderId": n} or unfiles
// it when folderId is null or absent.
func (h *Handler) movePortfolioQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	questionID, ok := pathID(r, "questionID")
	if !ok {
		writeError(w, r, store.ErrPortfolioQuestionNotFound, app.MsgInternalServerError)
		return
	}

	var request models.MoveRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	if err = h.services.PortfolioService.MoveQuestion(r.Context(), caller.UserID, questionID, request.FolderID); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	message := app.MsgQuestionRemovedFolder
	if request.FolderID != nil {
		message = app.MsgQuestionMovedToFolder
	}
	writeJSON(w, r, models.MessageResponse{Success: true, Message: message})
}

func (h *Handler) listPortfolioFolders(w http.ResponseWriter, r *http.Request) {
	h.listFolders(h.services.PortfolioFolderService)(w, r)
}

func (h *Handler) createPortfolioFolder(w http.ResponseWriter, r *http.Request) {
	h.createFolder(h.services.PortfolioFolderService)(w, r)
}

func (h *Handler) updatePortfolioFolder(w http.ResponseWriter, r *http.Request) {
	h.updateFolder(h.services.PortfolioFolderService)(w, r)
}

// deletePortfolioFolder refuses folders that still hold questions.
func (h *Handler) deletePortfolioFolder(w http.ResponseWriter, r *http.Request) {
	h.deleteFolder(h.services.PortfolioFolderService)(w, r)
}
