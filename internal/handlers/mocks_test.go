package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
	"github.com/SscSPs/pravaha_expense_app/internal/handlers"
	"github.com/SscSPs/pravaha_expense_app/internal/platform/config"
	"github.com/SscSPs/pravaha_expense_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.Company, *domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Company), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListCompanyUsers(ctx context.Context, actor domain.Principal) ([]domain.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, actor domain.Principal, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AssignManager(ctx context.Context, actor domain.Principal, req dto.AssignManagerRequest) error {
	args := m.Called(ctx, actor, req)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) ListUserExpenses(ctx context.Context, actor domain.Principal, userID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListCompanyExpenses(ctx context.Context, actor domain.Principal, companyID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, actor, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListPendingExpenses(ctx context.Context, actor domain.Principal, managerID *int64) ([]domain.Expense, error) {
	args := m.Called(ctx, actor, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) SubmitExpense(ctx context.Context, actor domain.Principal, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DecideExpense(ctx context.Context, actor domain.Principal, expenseID int64, status domain.ExpenseStatus) (*domain.Expense, error) {
	args := m.Called(ctx, actor, expenseID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) ExtractReceipt(ctx context.Context, imageBase64 string) (*domain.ReceiptSuggestion, error) {
	args := m.Called(ctx, imageBase64)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceiptSuggestion), args.Error(1)
}

var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

// --- Shared router fixture ---

const testJWTSecret = "test-secret-key-that-is-long-enough"

var (
	adminPrincipal    = domain.Principal{UserID: 1, Role: domain.RoleAdmin, CompanyID: 1}
	managerPrincipal  = domain.Principal{UserID: 2, Role: domain.RoleManager, CompanyID: 1}
	employeePrincipal = domain.Principal{UserID: 3, Role: domain.RoleEmployee, CompanyID: 1}
)

// routerSuite wires the real routes and middleware around mocked services.
type routerSuite struct {
	suite.Suite
	router   *gin.Engine
	company  *MockCompanyService
	users    *MockUserService
	tokens   *MockTokenService
	expenses *MockExpenseService
	receipts *MockReceiptService
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.company = new(MockCompanyService)
	s.users = new(MockUserService)
	s.tokens = new(MockTokenService)
	s.expenses = new(MockExpenseService)
	s.receipts = new(MockReceiptService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Company: s.company,
		User:    s.users,
		Token:   s.tokens,
		Expense: s.expenses,
		Receipt: s.receipts,
	}
	handlers.RegisterRoutes(s.router, cfg, container, handlers.Dependencies{})
}

func (s *routerSuite) TearDownTest() {
	s.company.AssertExpectations(s.T())
	s.users.AssertExpectations(s.T())
	s.tokens.AssertExpectations(s.T())
	s.expenses.AssertExpectations(s.T())
	s.receipts.AssertExpectations(s.T())
}

// tokenFor signs an access token for p with the router's secret.
func (s *routerSuite) tokenFor(p domain.Principal) string {
	token, err := utils.GenerateJWT(&domain.User{UserID: p.UserID, Role: p.Role, CompanyID: p.CompanyID}, testJWTSecret, time.Hour, "pravaha-test")
	s.Require().NoError(err)
	return token
}

// do serves a request. A nil principal sends no Authorization header.
func (s *routerSuite) do(method, path string, body any, as *domain.Principal) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+s.tokenFor(*as))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// message decodes the {"message": ...} body of a response.
func (s *routerSuite) message(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func int64Ptr(v int64) *int64 {
	return &v
}
