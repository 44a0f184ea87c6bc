package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/core/services"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
	"github.com/SscSPs/pravaha_expense_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	txManager    *inlineTxManager
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	admin        domain.Principal
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.txManager = &inlineTxManager{}
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.txManager, suite.mockUserRepo)
	suite.admin = domain.Principal{UserID: 1, Role: domain.RoleAdmin, CompanyID: 10}
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsToEmployee() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Email: "dev@acme.test", Password: "pw", FullName: "Dev One"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleEmployee && u.CompanyID == 10 && u.PasswordHash != "pw"
	})).Return(&domain.User{UserID: 5, Email: req.Email, Role: domain.RoleEmployee, CompanyID: 10}, nil).Once()

	user, err := suite.service.CreateUser(ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidRole() {
	req := dto.CreateUserRequest{Email: "x@acme.test", Password: "pw", FullName: "X", Role: "Owner"}

	_, err := suite.service.CreateUser(context.Background(), suite.admin, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, suite.admin, dto.CreateUserRequest{Email: "a@acme.test", Password: "pw", FullName: "A"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateUser_NonAdminForbidden() {
	manager := domain.Principal{UserID: 2, Role: domain.RoleManager, CompanyID: 10}

	_, err := suite.service.CreateUser(context.Background(), manager, dto.CreateUserRequest{Email: "a@acme.test", Password: "pw", FullName: "A"})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- AssignManager ---

func (suite *UserServiceTestSuite) TestAssignManager_Success() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleEmployee, CompanyID: 10}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(&domain.User{UserID: 3, Role: domain.RoleManager, CompanyID: 10, ManagerID: int64Ptr(1)}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{UserID: 1, Role: domain.RoleAdmin, CompanyID: 10}, nil).Once()
	suite.mockUserRepo.On("UpdateManager", ctx, int64(5), int64Ptr(3)).Return(nil).Once()

	err := suite.service.AssignManager(ctx, suite.admin, dto.AssignManagerRequest{EmployeeID: 5, ManagerID: int64Ptr(3)})

	suite.Require().NoError(err)
	suite.Equal(1, suite.txManager.calls)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAssignManager_ClearManager() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, CompanyID: 10, ManagerID: int64Ptr(3)}, nil).Once()
	suite.mockUserRepo.On("UpdateManager", ctx, int64(5), (*int64)(nil)).Return(nil).Once()

	err := suite.service.AssignManager(ctx, suite.admin, dto.AssignManagerRequest{EmployeeID: 5})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAssignManager_SelfAssignment() {
	err := suite.service.AssignManager(context.Background(), suite.admin, dto.AssignManagerRequest{EmployeeID: 5, ManagerID: int64Ptr(5)})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.txManager.calls)
}

func (suite *UserServiceTestSuite) TestAssignManager_NonAdminForbiddenBeforeSelfCheck() {
	employee := domain.Principal{UserID: 5, Role: domain.RoleEmployee, CompanyID: 10}

	err := suite.service.AssignManager(context.Background(), employee, dto.AssignManagerRequest{EmployeeID: 5, ManagerID: int64Ptr(5)})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAssignManager_ManagerMustManage() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, CompanyID: 10}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(6)).Return(&domain.User{UserID: 6, Role: domain.RoleEmployee, CompanyID: 10}, nil).Once()

	err := suite.service.AssignManager(ctx, suite.admin, dto.AssignManagerRequest{EmployeeID: 5, ManagerID: int64Ptr(6)})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateManager", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAssignManager_OtherCompanyIsNotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, CompanyID: 99}, nil).Once()

	err := suite.service.AssignManager(ctx, suite.admin, dto.AssignManagerRequest{EmployeeID: 5, ManagerID: int64Ptr(3)})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAssignManager_MissingManager() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, CompanyID: 10}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AssignManager(ctx, suite.admin, dto.AssignManagerRequest{EmployeeID: 5, ManagerID: int64Ptr(404)})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAssignManager_RejectsCycle() {
	ctx := context.Background()
	// 2 reports to 3 which reports to 4; making 2 the manager of 4 closes the loop.
	suite.mockUserRepo.On("FindUserByID", ctx, int64(4)).Return(&domain.User{UserID: 4, Role: domain.RoleManager, CompanyID: 10}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(&domain.User{UserID: 2, Role: domain.RoleManager, CompanyID: 10, ManagerID: int64Ptr(3)}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(&domain.User{UserID: 3, Role: domain.RoleManager, CompanyID: 10, ManagerID: int64Ptr(4)}, nil).Once()

	err := suite.service.AssignManager(ctx, suite.admin, dto.AssignManagerRequest{EmployeeID: 4, ManagerID: int64Ptr(2)})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "cycle")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateManager", mock.Anything, mock.Anything, mock.Anything)
}

// --- ListCompanyUsers ---

func (suite *UserServiceTestSuite) TestListCompanyUsers_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUsersByCompany", ctx, int64(10)).Return(nil, nil).Once()

	users, err := suite.service.ListCompanyUsers(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.NotNil(users)
	suite.Empty(users)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: 7, Email: "emp@acme.test", PasswordHash: hash, Role: domain.RoleEmployee}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "emp@acme.test").Return(stored, nil).Twice()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@acme.test").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "emp@acme.test", "correct horse")
	suite.Require().NoError(err)
	suite.Equal(int64(7), user.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "emp@acme.test", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "ghost@acme.test", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
