package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements one service interface through per-test function
// fields. A nil field panics when called, which fails tests that reach a
// service they should not.

type mockAuthService struct {
	signUpFn         func(ctx context.Context, request models.SignUpRequest) (models.User, error)
	signInFn         func(ctx context.Context, request models.SignInRequest) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	forgotPasswordFn func(ctx context.Context, request models.ForgotPasswordRequest) (string, error)
	resetPasswordFn  func(ctx context.Context, request models.ResetPasswordRequest) error
	findEmailFn      func(ctx context.Context, request models.FindEmailRequest) ([]models.FoundEmail, error)
	clearExpiredFn   func(ctx context.Context) (int64, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	return m.signUpFn(ctx, request)
}

func (m *mockAuthService) SignIn(ctx context.Context, request models.SignInRequest) (models.User, error) {
	return m.signInFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) (string, error) {
	return m.forgotPasswordFn(ctx, request)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	return m.resetPasswordFn(ctx, request)
}

func (m *mockAuthService) FindEmail(ctx context.Context, request models.FindEmailRequest) ([]models.FoundEmail, error) {
	return m.findEmailFn(ctx, request)
}

func (m *mockAuthService) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	return m.clearExpiredFn(ctx)
}

type mockCatalogService struct {
	listCategoriesFn func(ctx context.Context) ([]models.Category, error)
	listQuestionsFn  func(ctx context.Context, categoryID string) ([]models.Question, error)
	getQuestionFn    func(ctx context.Context, categoryID, questionID string) (models.Question, error)
}

func (m *mockCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.listCategoriesFn(ctx)
}

func (m *mockCatalogService) ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error) {
	return m.listQuestionsFn(ctx, categoryID)
}

func (m *mockCatalogService) GetQuestion(ctx context.Context, categoryID, questionID string) (models.Question, error) {
	return m.getQuestionFn(ctx, categoryID, questionID)
}

type mockFavoriteService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Favorite, error)
	toggleFn func(ctx context.Context, favorite models.Favorite) (bool, error)
}

func (m *mockFavoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return m.listFn(ctx, userID)
}

func (m *mockFavoriteService) ToggleFavorite(ctx context.Context, favorite models.Favorite) (bool, error) {
	return m.toggleFn(ctx, favorite)
}

type mockFolderService struct {
	createFn func(ctx context.Context, userID int64, request models.FolderRequest) (models.Folder, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Folder, error)
	updateFn func(ctx context.Context, userID, folderID int64, request models.FolderRequest) (models.Folder, error)
	deleteFn func(ctx context.Context, userID, folderID int64) error
}

func (m *mockFolderService) CreateFolder(ctx context.Context, userID int64, request models.FolderRequest) (models.Folder, error) {
	return m.createFn(ctx, userID, request)
}

func (m *mockFolderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	return m.listFn(ctx, userID)
}

func (m *mockFolderService) UpdateFolder(ctx context.Context, userID, folderID int64, request models.FolderRequest) (models.Folder, error) {
	return m.updateFn(ctx, userID, folderID, request)
}

func (m *mockFolderService) DeleteFolder(ctx context.Context, userID, folderID int64) error {
	return m.deleteFn(ctx, userID, folderID)
}

type mockSavedQuestionService struct {
	saveFn         func(ctx context.Context, saved models.SavedQuestion) (models.SavedQuestion, models.Folder, error)
	listContentsFn func(ctx context.Context, userID, folderID int64) (models.FolderContents, error)
	deleteFn       func(ctx context.Context, userID, savedQuestionID int64) error
	moveFn         func(ctx context.Context, userID, savedQuestionID, targetFolderID int64) error
}

func (m *mockSavedQuestionService) SaveQuestion(ctx context.Context, saved models.SavedQuestion) (models.SavedQuestion, models.Folder, error) {
	return m.saveFn(ctx, saved)
}

func (m *mockSavedQuestionService) ListFolderContents(ctx context.Context, userID, folderID int64) (models.FolderContents, error) {
	return m.listContentsFn(ctx, userID, folderID)
}

func (m *mockSavedQuestionService) DeleteSavedQuestion(ctx context.Context, userID, savedQuestionID int64) error {
	return m.deleteFn(ctx, userID, savedQuestionID)
}

func (m *mockSavedQuestionService) MoveSavedQuestion(ctx context.Context, userID, savedQuestionID, targetFolderID int64) error {
	return m.moveFn(ctx, userID, savedQuestionID, targetFolderID)
}

type mockPortfolioService struct {
	uploadFn         func(ctx context.Context, userID int64, file models.UploadedFile) (models.Portfolio, error)
	listPortfoliosFn func(ctx context.Context, userID int64) ([]models.Portfolio, error)
	analyzeFn        func(ctx context.Context, userID, portfolioID int64) (int, error)
	createQuestionFn func(ctx context.Context, userID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error)
	listQuestionsFn  func(ctx context.Context, userID int64) ([]models.PortfolioQuestion, error)
	updateQuestionFn func(ctx context.Context, userID, questionID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error)
	deleteQuestionFn func(ctx context.Context, userID, questionID int64) error
	moveQuestionFn   func(ctx context.Context, userID, questionID int64, folderID *int64) error
}

func (m *mockPortfolioService) Upload(ctx context.Context, userID int64, file models.UploadedFile) (models.Portfolio, error) {
	return m.uploadFn(ctx, userID, file)
}

func (m *mockPortfolioService) ListPortfolios(ctx context.Context, userID int64) ([]models.Portfolio, error) {
	return m.listPortfoliosFn(ctx, userID)
}

func (m *mockPortfolioService) Analyze(ctx context.Context, userID, portfolioID int64) (int, error) {
	return m.analyzeFn(ctx, userID, portfolioID)
}

func (m *mockPortfolioService) CreateQuestion(ctx context.Context, userID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error) {
	return m.createQuestionFn(ctx, userID, request)
}

func (m *mockPortfolioService) ListQuestions(ctx context.Context, userID int64) ([]models.PortfolioQuestion, error) {
	return m.listQuestionsFn(ctx, userID)
}

func (m *mockPortfolioService) UpdateQuestion(ctx context.Context, userID, questionID int64, request models.PortfolioQuestionRequest) (models.PortfolioQuestion, error) {
	return m.updateQuestionFn(ctx, userID, questionID, request)
}

func (m *mockPortfolioService) DeleteQuestion(ctx context.Context, userID, questionID int64) error {
	return m.deleteQuestionFn(ctx, userID, questionID)
}

func (m *mockPortfolioService) MoveQuestion(ctx context.Context, userID, questionID int64, folderID *int64) error {
	return m.moveQuestionFn(ctx, userID, questionID, folderID)
}

type mockCompanyService struct {
	createFn func(ctx context.Context, request models.CompanyRequest) (string, error)
	deleteFn func(ctx context.Context, request models.CompanyRequest) (string, error)
	appendFn func(ctx context.Context, question models.CompanyQuestion) error
}

func (m *mockCompanyService) CreateCompany(ctx context.Context, request models.CompanyRequest) (string, error) {
	return m.createFn(ctx, request)
}

func (m *mockCompanyService) DeleteCompany(ctx context.Context, request models.CompanyRequest) (string, error) {
	return m.deleteFn(ctx, request)
}

func (m *mockCompanyService) AppendQuestion(ctx context.Context, question models.CompanyQuestion) error {
	return m.appendFn(ctx, question)
}

type mockAppInfoService struct {
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// ─────────────────────────────────────────────
// Request helpers
// ─────────────────────────────────────────────

const testBearerToken = "test-token"

var (
	testUser  = models.Identity{UserID: 7, Email: "user@example.com", Name: "user", Role: models.RoleUser}
	testAdmin = models.Identity{UserID: 1, Email: "admin@example.com", Name: "admin", Role: models.RoleAdmin}
)

// tokenFor builds the token the auth mock hands back for caller.
func tokenFor(caller models.Identity) models.Token {
	return models.Token{
		UserID:       caller.UserID,
		Email:        caller.Email,
		Name:         caller.Name,
		Role:         caller.Role,
		SignedString: testBearerToken,
	}
}

// newTestRouter builds the full router over svcs. When caller is not nil
// and svcs carries no AuthService, every bearer token resolves to caller.
func newTestRouter(t *testing.T, svcs *service.Services, caller *models.Identity) http.Handler {
	t.Helper()

	if svcs.AuthService == nil && caller != nil {
		who := *caller
		svcs.AuthService = &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return tokenFor(who), nil
			},
		}
	}

	return NewHandler(svcs, 0, logger.Nop()).Init()
}

// doRequest sends body as JSON. A non-empty body of type string is sent as
// is so tests can post malformed JSON.
func doRequest(t *testing.T, router http.Handler, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testBearerToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newRawRequest(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}

// decodeResponse unmarshals the recorded body into T.
func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// errorMessage returns the "error" field of a JSON error body.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeResponse[models.ErrorResponse](t, rec).Error
}

func int64Ptr(v int64) *int64 {
	return &v
}
