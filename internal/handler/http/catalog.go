package http

import (
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CatalogService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, categories)
}

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.services.CatalogService.ListQuestions(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, questions)
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.services.CatalogService.GetQuestion(
		r.Context(),
		chi.URLParam(r, "categoryID"),
		chi.URLParam(r, "questionID"),
	)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, question)
}
