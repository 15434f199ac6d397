package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
	"github.com/abdout/abushala-backend/internal/handlers"
	"github.com/abdout/abushala-backend/internal/platform/config"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, req, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email string, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) InitiatePasswordReset(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) CompletePasswordReset(ctx context.Context, resetToken string, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) SetUserRole(ctx context.Context, targetUserID string, role domain.Role, actorUserID string) (bool, error) {
	args := m.Called(ctx, targetUserID, role, actorUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

func (m *MockCurrencyService) SeedDefaultCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitMessage(ctx context.Context, req dto.ContactRequest) (*domain.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockContactService) ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockAuth     *MockAuthService
	mockUser     *MockUserService
	mockCurrency *MockCurrencyService
	mockContact  *MockContactService

	adminToken string
	userToken  string
	admin      *domain.User
	user       *domain.User
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAuth = new(MockAuthService)
	suite.mockUser = new(MockUserService)
	suite.mockCurrency = new(MockCurrencyService)
	suite.mockContact = new(MockContactService)

	suite.adminToken = "admin-session-token"
	suite.userToken = "user-session-token"
	suite.admin = &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.user = &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}

	suite.mockAuth.On("ResolveSession", mock.Anything, suite.adminToken).Return(suite.admin, nil).Maybe()
	suite.mockAuth.On("ResolveSession", mock.Anything, suite.userToken).Return(suite.user, nil).Maybe()

	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Auth:     suite.mockAuth,
		User:     suite.mockUser,
		Currency: suite.mockCurrency,
		Contact:  suite.mockContact,
	})
}

func (suite *CurrencyHandlerTestSuite) request(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_PublicNoAuth() {
	currencies := []domain.Currency{
		{
			CurrencyID: uuid.NewString(),
			Name:       "دولار أمريكي",
			Code:       "USD",
			BuyPrice:   decimal.RequireFromString("4.85"),
			SellPrice:  decimal.RequireFromString("4.9"),
			Change:     decimal.Zero,
			UpdatedAt:  time.Now(),
		},
	}
	suite.mockCurrency.On("ListCurrencies", mock.Anything).Return(currencies, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/currencies", nil, "")

	suite.Equal(http.StatusOK, w.Code)

	var response []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response, 1)
	suite.Equal("USD", response[0].Code)
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_NoTokenRejected() {
	body := dto.CreateCurrencyRequest{
		Name:      "يورو",
		Code:      "EUR",
		BuyPrice:  decimal.RequireFromString("5.2"),
		SellPrice: decimal.RequireFromString("5.25"),
	}

	w := suite.request(http.MethodPost, "/api/v1/currencies", body, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCurrency.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_NonAdminForbidden() {
	body := dto.CreateCurrencyRequest{
		Name:      "يورو",
		Code:      "EUR",
		BuyPrice:  decimal.RequireFromString("5.2"),
		SellPrice: decimal.RequireFromString("5.25"),
	}

	w := suite.request(http.MethodPost, "/api/v1/currencies", body, suite.userToken)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), apperrors.MsgUnauthorized)
	suite.mockCurrency.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_AdminSuccess() {
	body := dto.CreateCurrencyRequest{
		Name:      "يورو",
		Code:      "EUR",
		BuyPrice:  decimal.RequireFromString("5.2"),
		SellPrice: decimal.RequireFromString("5.25"),
	}
	created := &domain.Currency{
		CurrencyID: uuid.NewString(),
		Name:       body.Name,
		Code:       "EUR",
		BuyPrice:   body.BuyPrice,
		SellPrice:  body.SellPrice,
		Change:     decimal.Zero,
		UpdatedAt:  time.Now(),
	}

	suite.mockCurrency.On("CreateCurrency", mock.Anything, mock.MatchedBy(func(req dto.CreateCurrencyRequest) bool {
		return req.Code == "EUR" && req.BuyPrice.Equal(body.BuyPrice)
	})).Return(created, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/currencies", body, suite.adminToken)

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(created.CurrencyID, response.CurrencyID)
	suite.True(response.Change.IsZero())
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_NotFound() {
	currencyID := uuid.NewString()
	newBuy := decimal.RequireFromString("5.0")
	body := dto.UpdateCurrencyRequest{BuyPrice: &newBuy}

	suite.mockCurrency.On("UpdateCurrency", mock.Anything, currencyID, mock.AnythingOfType("dto.UpdateCurrencyRequest")).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodPut, "/api/v1/currencies/"+currencyID, body, suite.adminToken)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), apperrors.MsgNotFound)
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestDeleteCurrency_AdminSuccess() {
	currencyID := uuid.NewString()

	suite.mockCurrency.On("DeleteCurrency", mock.Anything, currencyID).Return(nil).Once()

	w := suite.request(http.MethodDelete, "/api/v1/currencies/"+currencyID, nil, suite.adminToken)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestSeedCurrencies_AdminOnly() {
	w := suite.request(http.MethodPost, "/api/v1/currencies/seed", nil, suite.userToken)
	suite.Equal(http.StatusForbidden, w.Code)

	seeded := []domain.Currency{{CurrencyID: uuid.NewString(), Code: "USD"}}
	suite.mockCurrency.On("SeedDefaultCurrencies", mock.Anything).Return(seeded, nil).Once()

	w = suite.request(http.MethodPost, "/api/v1/currencies/seed", nil, suite.adminToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.mockCurrency.AssertExpectations(suite.T())
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
