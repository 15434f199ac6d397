package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/core/services"
	"github.com/abdout/abushala-backend/internal/dto"
)

// --- Mock AuthSvcFacade ---
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

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockAuth     *MockAuthService
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuth = new(MockAuthService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockAuth)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestSetUserRole_PromoteSuccess() {
	ctx := context.Background()
	targetID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockUserRepo.On("SetUserRole", ctx, targetID, domain.RoleAdmin, mock.AnythingOfType("time.Time")).Return(nil).Once()

	removedSelf, err := suite.service.SetUserRole(ctx, targetID, domain.RoleAdmin, actorID)

	suite.Require().NoError(err)
	suite.False(removedSelf)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetUserRole_LastAdminRefused() {
	ctx := context.Background()
	targetID := uuid.NewString()

	suite.mockUserRepo.On("SetUserRole", ctx, targetID, domain.RoleUser, mock.AnythingOfType("time.Time")).Return(apperrors.ErrLastAdmin).Once()

	removedSelf, err := suite.service.SetUserRole(ctx, targetID, domain.RoleUser, targetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLastAdmin)
	suite.False(removedSelf)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetUserRole_SelfDemotionFlagged() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockUserRepo.On("SetUserRole", ctx, actorID, domain.RoleUser, mock.AnythingOfType("time.Time")).Return(nil).Once()

	removedSelf, err := suite.service.SetUserRole(ctx, actorID, domain.RoleUser, actorID)

	suite.Require().NoError(err)
	suite.True(removedSelf)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetUserRole_UnknownRole() {
	ctx := context.Background()
	targetID := uuid.NewString()

	removedSelf, err := suite.service.SetUserRole(ctx, targetID, domain.Role("superuser"), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.False(removedSelf)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSetUserRole_TargetNotFound() {
	ctx := context.Background()
	targetID := uuid.NewString()

	suite.mockUserRepo.On("SetUserRole", ctx, targetID, domain.RoleAdmin, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.SetUserRole(ctx, targetID, domain.RoleAdmin, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateAdmin_DelegatesToRegister() {
	ctx := context.Background()
	req := dto.CreateAdminRequest{
		Name:     "مشرف جديد",
		Email:    "newadmin@example.com",
		Password: "secret123",
	}

	created := &domain.User{
		UserID: uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   domain.RoleAdmin,
	}

	suite.mockAuth.On("Register", ctx, mock.MatchedBy(func(r dto.RegisterRequest) bool {
		return r.Email == req.Email && r.Password == req.Password
	}), domain.RoleAdmin).Return(created, nil).Once()

	user, err := suite.service.CreateAdmin(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.mockAuth.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateAdmin_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateAdminRequest{
		Name:     "مكرر",
		Email:    "taken@example.com",
		Password: "secret123",
	}

	suite.mockAuth.On("Register", ctx, mock.AnythingOfType("dto.RegisterRequest"), domain.RoleAdmin).Return(nil, apperrors.ErrDuplicateEmail).Once()

	user, err := suite.service.CreateAdmin(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateEmail)
	suite.Nil(user)
	suite.mockAuth.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListUsers", ctx, 20, 0).Return([]domain.User{}, nil).Once()

	users, err := suite.service.ListUsers(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(users)
	suite.Empty(users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
