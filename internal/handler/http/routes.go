package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/signup", h.signUp)
			r.Post("/auth/signin", h.signIn)
			r.Post("/auth/forgot-password", h.forgotPassword)
			r.Post("/auth/reset-password", h.resetPassword)
			r.Post("/auth/find-email", h.findEmail)

			r.Get("/categories", h.listCategories)
			r.Get("/categories/{categoryID}/questions", h.listQuestions)
			r.Get("/categories/{categoryID}/questions/{questionID}", h.getQuestion)

			r.Get("/version", h.getServerVersion)
		})

		// routes for any signed-in user
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)

			r.Get("/favorites", h.listFavorites)
			r.Post("/favorites", h.toggleFavorite)

			r.Route("/user-folders", func(r chi.Router) {
				r.Get("/", h.listUserFolders)
				r.Post("/", h.createUserFolder)
				r.Post("/save-question", h.saveQuestion)
				r.Delete("/questions/{savedQuestionID}", h.deleteSavedQuestion)
				r.Put("/questions/{savedQuestionID}/move", h.moveSavedQuestion)
				r.Put("/{folderID}", h.updateUserFolder)
				r.Delete("/{folderID}", h.deleteUserFolder)
				r.Get("/{folderID}/questions", h.listFolderQuestions)
			})

			// admin routes
			r.Group(func(r chi.Router) {
				r.Use(h.adminOnly)

				r.Route("/portfolio", func(r chi.Router) {
					r.Get("/", h.listPortfolios)
					r.Post("/upload", h.uploadPortfolio)
					r.Post("/analyze", h.analyzePortfolio)

					r.Get("/questions", h.listPortfolioQuestions)
					r.Post("/questions", h.createPortfolioQuestion)
					r.Put("/questions/{questionID}", h.updatePortfolioQuestion)
					r.Delete("/questions/{questionID}", h.deletePortfolioQuestion)
					r.Put("/questions/{questionID}/move", h.movePortfolioQuestion)

					r.Get("/folders", h.listPortfolioFolders)
					r.Post("/folders", h.createPortfolioFolder)
					r.Put("/folders/{folderID}", h.updatePortfolioFolder)
					r.Delete("/folders/{folderID}", h.deletePortfolioFolder)
				})

				r.Post("/company/create", h.createCompany)
				r.Delete("/company/delete", h.deleteCompany)
				r.Post("/company/question", h.appendCompanyQuestion)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
