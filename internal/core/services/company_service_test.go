package services_test

import (
	"context"
	"errors"
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

type CompanyServiceTestSuite struct {
	suite.Suite
	txManager       *inlineTxManager
	mockCompanyRepo *MockCompanyRepository
	mockUserRepo    *MockUserRepository
	mockCurrencySvc *MockCurrencyService
	service         portssvc.CompanySvcFacade
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.txManager = &inlineTxManager{}
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewCompanyService(suite.txManager, suite.mockCompanyRepo, suite.mockUserRepo, suite.mockCurrencySvc)
}

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		Email:       "founder@acme.test",
		Password:    "hunter22",
		FullName:    "Asha Rao",
		CompanyName: "Acme",
		Country:     "India",
	}
}

func (suite *CompanyServiceTestSuite) TestSignup_Success() {
	ctx := context.Background()
	req := signupRequest()

	suite.mockCurrencySvc.On("ResolveCurrency", ctx, "India").Return("INR").Once()
	suite.mockCompanyRepo.On("LockBootstrap", ctx).Return(nil).Once()
	suite.mockCompanyRepo.On("CompanyExists", ctx).Return(false, nil).Once()
	suite.mockCompanyRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Acme" && c.CurrencyCode == "INR"
	})).Return(&domain.Company{CompanyID: 1, Name: "Acme", CurrencyCode: "INR"}, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email && u.Role == domain.RoleAdmin && u.CompanyID == 1 &&
			u.ManagerID == nil && utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(&domain.User{UserID: 1, Email: req.Email, Role: domain.RoleAdmin, CompanyID: 1}, nil).Once()

	company, admin, err := suite.service.Signup(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), company.CompanyID)
	suite.Equal("INR", company.CurrencyCode)
	suite.Equal(domain.RoleAdmin, admin.Role)
	suite.Equal(1, suite.txManager.calls)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestSignup_SecondCompanyForbidden() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("ResolveCurrency", ctx, "India").Return("INR").Once()
	suite.mockCompanyRepo.On("LockBootstrap", ctx).Return(nil).Once()
	suite.mockCompanyRepo.On("CompanyExists", ctx).Return(true, nil).Once()

	company, admin, err := suite.service.Signup(ctx, signupRequest())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(company)
	suite.Nil(admin)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestSignup_DuplicateAdminEmail() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("ResolveCurrency", ctx, "India").Return("INR").Once()
	suite.mockCompanyRepo.On("LockBootstrap", ctx).Return(nil).Once()
	suite.mockCompanyRepo.On("CompanyExists", ctx).Return(false, nil).Once()
	suite.mockCompanyRepo.On("SaveCompany", ctx, mock.Anything).Return(&domain.Company{CompanyID: 1}, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	_, _, err := suite.service.Signup(ctx, signupRequest())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CompanyServiceTestSuite) TestSignup_LockFailure() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("ResolveCurrency", ctx, "India").Return("INR").Once()
	suite.mockCompanyRepo.On("LockBootstrap", ctx).Return(errors.New("connection refused")).Once()

	_, _, err := suite.service.Signup(ctx, signupRequest())

	suite.Error(err)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "CompanyExists", mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestSignup_BlankCompanyName() {
	req := signupRequest()
	req.CompanyName = "   "

	_, _, err := suite.service.Signup(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.txManager.calls)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByID_NotFound() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, int64(3)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCompanyByID(ctx, 3)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
