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
	"github.com/SscSPs/pravaha_expense_app/internal/utils"
)

type companyService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewCompanyService creates the service that bootstraps the company.
func NewCompanyService(
	txManager portsrepo.TransactionManager,
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	currencySvc portssvc.CurrencySvcFacade,
) portssvc.CompanySvcFacade {
	return &companyService{
		txManager:   txManager,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		currencySvc: currencySvc,
	}
}

func (s *companyService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.Company, *domain.User, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return nil, nil, apperrors.NewValidationError("company_name is required")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash admin password")
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Resolved before the transaction so the advisory lock is not held across the lookup.
	currencyCode := s.currencySvc.ResolveCurrency(ctx, req.Country)

	var company *domain.Company
	var admin *domain.User
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.companyRepo.LockBootstrap(txCtx); err != nil {
			return err
		}
		exists, err := s.companyRepo.CompanyExists(txCtx)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewForbiddenError("a company has already been registered")
		}

		company, err = s.companyRepo.SaveCompany(txCtx, domain.Company{
			Name:         companyName,
			CurrencyCode: currencyCode,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			return err
		}

		admin, err = s.userRepo.SaveUser(txCtx, domain.User{
			Email:        strings.TrimSpace(req.Email),
			PasswordHash: passwordHash,
			FullName:     strings.TrimSpace(req.FullName),
			Role:         domain.RoleAdmin,
			CompanyID:    company.CompanyID,
			CreatedAt:    time.Now(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrForbidden) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Signup failed", slog.String("company_name", companyName))
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Company bootstrapped",
		slog.Int64("company_id", company.CompanyID),
		slog.String("currency", company.CurrencyCode),
		slog.Int64("admin_user_id", admin.UserID))
	return company, admin, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %d: %w", companyID, err)
	}
	return company, nil
}
