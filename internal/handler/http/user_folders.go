package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/models"
)

// Folder handlers are shared by user folders and portfolio folders; only
// the service behind them differs.

func (h *Handler) listFolders(folders service.FolderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := identity(r)
		if err != nil {
			writeError(w, r, err, app.MsgLoginRequired)
			return
		}

		list, err := folders.ListFolders(r.Context(), caller.UserID)
		if err != nil {
			writeError(w, r, err, app.MsgInternalServerError)
			return
		}
		if list == nil {
			list = []models.Folder{}
		}

		writeJSON(w, r, list)
	}
}

func (h *Handler) createFolder(folders service.FolderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := identity(r)
		if err != nil {
			writeError(w, r, err, app.MsgLoginRequired)
			return
		}

		var request models.FolderRequest
		if err = decodeJSON(r, &request); err != nil {
			writeError(w, r, err, app.MsgInternalServerError)
			return
		}

		folder, err := folders.CreateFolder(r.Context(), caller.UserID, request)
		if err != nil {
			writeError(w, r, err, app.MsgInternalServerError)
			return
		}

		writeJSON(w, r, models.FolderCreatedResponse{
			Success:  true,
			FolderID: folder.ID,
			Message:  app.MsgFolderCreated,
		})
	}
}

func (h *Handler) updateFolder(folders service.FolderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := identity(r)
		if err != nil {
			writeError(w, r, err, app.MsgLoginRequired)
			return
		}

		folderID, ok := pathID(r, "folderID")
		if !ok {
			writeError(w, r, store.ErrFolderNotFound, app.MsgInternalServerError)
			return
		}

		var request models.FolderRequest
		if err = decodeJSON(r, &request); err != nil {
			writeError(w, r, err, app.MsgInternalServerError)
			return
		}

		if _, err = folders.UpdateFolder(r.Context(), caller.UserID, folderID, request); err != nil {
			writeError(w, r, err, app.MsgInternalServerError)
			return
		}

		writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgFolderUpdated})
	}
}

func (h *Handler) deleteFolder(folders service.FolderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := identity(r)
		if err != nil {
			writeError(w, r, err, app.MsgLoginRequired)
			return
		}

		folderID, ok := pathID(r, "folderID")
		if !ok {
			writeError(w, r, store.ErrFolderNotFound, app.MsgInternalServerError)
			return
		}

		if err = folders.DeleteFolder(r.Context(), caller.UserID, folderID); err != nil {
			writeError(w, r, err, app.MsgInternalServerError)
			return
		}

		writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgFolderDeleted})
	}
}

func (h *Handler) listUserFolders(w http.ResponseWriter, r *http.Request) {
	h.listFolders(h.services.UserFolderService)(w, r)
}

func (h *Handler) createUserFolder(w http.ResponseWriter, r *http.Request) {
	h.createFolder(h.services.UserFolderService)(w, r)
}

func (h *Handler) updateUserFolder(w http.ResponseWriter, r *http.Request) {
	h.updateFolder(h.services.UserFolderService)(w, r)
}

// deleteUserFolder removes the folder together with its saved questions.
func (h *Handler) deleteUserFolder(w http.ResponseWriter, r *http.Request) {
	h.deleteFolder(h.services.UserFolderService)(w, r)
}

func (h *Handler) listFolderQuestions(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	folderID, ok := pathID(r, "folderID")
	if !ok {
		writeError(w, r, store.ErrFolderNotFound, app.MsgInternalServerError)
		return
	}

	contents, err := h.services.SavedQuestionService.ListFolderContents(r.Context(), caller.UserID, folderID)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, contents)
}

func (h *Handler) saveQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	var saved models.SavedQuestion
	if err = decodeJSON(r, &saved); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	saved.UserID = caller.UserID

	created, folder, err := h.services.SavedQuestionService.SaveQuestion(r.Context(), saved)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.SavedQuestionCreatedResponse{
		Success:         true,
		SavedQuestionID: created.ID,
		Message:         fmt.Sprintf(app.MsgSavedQuestionFormat, folder.Name),
	})
}

func (h *Handler) deleteSavedQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	savedQuestionID, ok := pathID(r, "savedQuestionID")
	if !ok {
		writeError(w, r, store.ErrSavedQuestionNotFound, app.MsgInternalServerError)
		return
	}

	if err = h.services.SavedQuestionService.DeleteSavedQuestion(r.Context(), caller.UserID, savedQuestionID); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgSavedQuestionDeleted})
}

func (h *Handler) moveSavedQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	savedQuestionID, ok := pathID(r, "savedQuestionID")
	if !ok {
		writeError(w, r, store.ErrSavedQuestionNotFound, app.MsgInternalServerError)
		return
	}

	var request models.MoveRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	var targetFolderID int64
	if request.FolderID != nil {
		targetFolderID = *request.FolderID
	}

	if err = h.services.SavedQuestionService.MoveSavedQuestion(r.Context(), caller.UserID, savedQuestionID, targetFolderID); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgSavedQuestionMoved})
}
