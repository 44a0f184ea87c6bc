package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pravaha_expense_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
	"github.com/SscSPs/pravaha_expense_app/internal/platform/metrics"
)

type expenseService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	expenseRepo portsrepo.ExpenseRepositoryFacade
	userRepo    portsrepo.UserReader
	companyRepo portsrepo.CompanyReader
	exchangeSvc portssvc.ExchangeRateSvcFacade
}

// NewExpenseService creates the service for expense submission and approval.
func NewExpenseService(
	txManager portsrepo.TransactionManager,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	userRepo portsrepo.UserReader,
	companyRepo portsrepo.CompanyReader,
	exchangeSvc portssvc.ExchangeRateSvcFacade,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		txManager:   txManager,
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		exchangeSvc: exchangeSvc,
	}
}

func (s *expenseService) SubmitExpense(ctx context.Context, actor domain.Principal, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if actor.UserID == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if req.Amount == nil {
		return nil, apperrors.NewValidationError("amount is required")
	}
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(currency) != 3 {
		return nil, apperrors.NewValidationError("currency must be a 3-letter code")
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, apperrors.NewValidationError("category is required")
	}
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, apperrors.NewValidationError("date must be formatted as YYYY-MM-DD")
	}

	user, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", actor.UserID))
		}
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company of user %d: %w", user.UserID, err)
	}

	baseAmount, err := s.exchangeSvc.Convert(ctx, currency, company.CurrencyCode, amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense, err := s.expenseRepo.SaveExpense(ctx, domain.Expense{
		Amount:        amount,
		Currency:      currency,
		BaseAmount:    baseAmount,
		Category:      category,
		Description:   strings.TrimSpace(req.Description),
		Date:          date,
		Status:        domain.ExpenseStatusPending,
		UserID:        user.UserID,
		CompanyID:     user.CompanyID,
		CreatedAt:     now,
		LastUpdatedAt: now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.Int64("user_id", user.UserID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	expense.BaseCurrency = company.CurrencyCode
	expense.EmployeeName = user.FullName

	metrics.ExpensesSubmittedTotal.WithLabelValues(currency).Inc()
	s.LogInfo(ctx, "Expense submitted",
		slog.Int64("expense_id", expense.ExpenseID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("currency", currency),
		slog.String("base_amount", baseAmount.StringFixed(2)),
		slog.String("base_currency", company.CurrencyCode))
	return expense, nil
}

func (s *expenseService) ListUserExpenses(ctx context.Context, actor domain.Principal, userID int64) ([]domain.Expense, error) {
	if actor.UserID != userID {
		if !actor.Role.CanManage() {
			return nil, apperrors.NewForbiddenError("employees can only view their own expenses")
		}
		target, err := s.userRepo.FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
			}
			return nil, err
		}
		if target.CompanyID != actor.CompanyID {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
		}
	}

	expenses, err := s.expenseRepo.FindExpensesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses of user %d: %w", userID, err)
	}
	return nonNilExpenses(expenses), nil
}

func (s *expenseService) ListCompanyExpenses(ctx context.Context, actor domain.Principal, companyID int64) ([]domain.Expense, error) {
	if !actor.Role.CanManage() {
		return nil, apperrors.NewForbiddenError("only managers and admins can view company expenses")
	}
	if companyID != actor.CompanyID {
		return nil, apperrors.NewForbiddenError("cannot view expenses of another company")
	}

	expenses, err := s.expenseRepo.FindExpensesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses of company %d: %w", companyID, err)
	}
	return nonNilExpenses(expenses), nil
}

func (s *expenseService) ListPendingExpenses(ctx context.Context, actor domain.Principal, managerID *int64) ([]domain.Expense, error) {
	if !actor.Role.CanManage() {
		return nil, apperrors.NewForbiddenError("only managers and admins can view pending expenses")
	}

	expenses, err := s.expenseRepo.FindPendingExpenses(ctx, actor.CompanyID, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending expenses: %w", err)
	}
	return nonNilExpenses(expenses), nil
}

func (s *expenseService) DecideExpense(ctx context.Context, actor domain.Principal, expenseID int64, status domain.ExpenseStatus) (*domain.Expense, error) {
	if !status.IsDecision() {
		return nil, apperrors.NewValidationError("status must be Approved or Rejected")
	}
	if !actor.Role.CanManage() {
		return nil, apperrors.NewForbiddenError("only managers and admins can decide on expenses")
	}

	var decided *domain.Expense
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		expense, err := s.expenseRepo.FindExpenseByID(txCtx, expenseID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", expenseID))
			}
			return err
		}
		if expense.CompanyID != actor.CompanyID {
			return apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", expenseID))
		}
		if expense.IsOwnedBy(actor.UserID) {
			return apperrors.NewForbiddenError("cannot approve or reject your own expense")
		}

		if err := s.expenseRepo.UpdateExpenseStatus(txCtx, expenseID, status, actor.UserID); err != nil {
			return err
		}

		expense.Status = status
		expense.DecidedBy = &actor.UserID
		expense.LastUpdatedAt = time.Now()
		decided = expense
		return nil
	})
	if err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to decide expense", slog.Int64("expense_id", expenseID))
		}
		return nil, err
	}

	metrics.ExpenseDecisionsTotal.WithLabelValues(string(status)).Inc()
	s.LogInfo(ctx, "Expense decided",
		slog.Int64("expense_id", expenseID),
		slog.String("status", string(status)),
		slog.Int64("decided_by", actor.UserID))
	return decided, nil
}

func nonNilExpenses(expenses []domain.Expense) []domain.Expense {
	if expenses == nil {
		return []domain.Expense{}
	}
	return expenses
}
