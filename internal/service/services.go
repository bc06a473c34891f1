package service

import (
	"github.com/MKhiriev/go-interview-prep/internal/adapter"
	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
)

type Services struct {
	AuthService            AuthService
	CatalogService         CatalogService
	FavoriteService        FavoriteService
	UserFolderService      FolderService
	SavedQuestionService   SavedQuestionService
	PortfolioService       PortfolioService
	PortfolioFolderService FolderService
	CompanyService         CompanyService
	AppInfoService         AppInfoService
}

// Adapters groups the outbound collaborators used by the services.
type Adapters struct {
	TextExtractor adapter.TextExtractor
	Summarizer    adapter.QuestionSummarizer
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		CatalogService:       NewCatalogService(storages.QuestionCatalog, logger),
		FavoriteService:      NewFavoriteService(storages.FavoriteRepository, validator, logger),
		UserFolderService:    NewUserFolderService(storages.FolderRepository, validator, logger),
		SavedQuestionService: NewSavedQuestionService(storages.FolderRepository, storages.SavedQuestionRepository, validator, logger),
		PortfolioService: NewPortfolioService(
			storages.PortfolioRepository,
			storages.PortfolioQuestionRepository,
			adapters.TextExtractor,
			adapters.Summarizer,
			validator,
			logger,
		),
		PortfolioFolderService: NewPortfolioFolderService(storages.FolderRepository, storages.PortfolioQuestionRepository, validator, logger),
		CompanyService:         NewCompanyService(storages.CompanyFileStorage, validator, logger),
		AppInfoService:         NewAppInfoService(buildInfo, logger),
	}
}
