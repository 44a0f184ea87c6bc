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

type userService struct {
	BaseService
	txManager portsrepo.TransactionManager
	userRepo  portsrepo.UserRepositoryFacade
}

// NewUserService creates the service managing users and the reporting hierarchy.
func NewUserService(txManager portsrepo.TransactionManager, userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{txManager: txManager, userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListCompanyUsers(ctx context.Context, actor domain.Principal) ([]domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only admins can list users")
	}
	users, err := s.userRepo.FindUsersByCompany(ctx, actor.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company users", slog.Int64("company_id", actor.CompanyID))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, actor domain.Principal, req dto.CreateUserRequest) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only admins can create users")
	}

	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("role must be one of Admin, Manager, Employee; got %q", role))
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.SaveUser(ctx, domain.User{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		CompanyID:    actor.CompanyID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create user", slog.String("email", req.Email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.Int64("user_id", user.UserID),
		slog.String("role", string(user.Role)),
		slog.Int64("created_by", actor.UserID))
	return user, nil
}

func (s *userService) AssignManager(ctx context.Context, actor domain.Principal, req dto.AssignManagerRequest) error {
	if actor.Role != domain.RoleAdmin {
		return apperrors.NewForbiddenError("only admins can assign managers")
	}
	if req.ManagerID != nil && *req.ManagerID == req.EmployeeID {
		return apperrors.NewValidationError("a user cannot be their own manager")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.companyUser(txCtx, actor.CompanyID, req.EmployeeID, "employee"); err != nil {
			return err
		}

		if req.ManagerID != nil {
			manager, err := s.companyUser(txCtx, actor.CompanyID, *req.ManagerID, "manager")
			if err != nil {
				return err
			}
			if !manager.Role.CanManage() {
				return apperrors.NewValidationError(fmt.Sprintf("user %d is an %s and cannot manage others", manager.UserID, manager.Role))
			}
			if err := s.ensureNoCycle(txCtx, manager, req.EmployeeID); err != nil {
				return err
			}
		}

		if err := s.userRepo.UpdateManager(txCtx, req.EmployeeID, req.ManagerID); err != nil {
			s.LogError(txCtx, err, "Failed to update manager", slog.Int64("employee_id", req.EmployeeID))
			return fmt.Errorf("failed to update manager: %w", err)
		}
		return nil
	})
}

// companyUser loads a user and hides users of other companies behind a not-found.
func (s *userService) companyUser(ctx context.Context, companyID, userID int64, label string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %d not found", label, userID))
		}
		return nil, err
	}
	if user.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %d not found", label, userID))
	}
	return user, nil
}

// ensureNoCycle walks up from manager and fails if employeeID is reached.
func (s *userService) ensureNoCycle(ctx context.Context, manager *domain.User, employeeID int64) error {
	seen := map[int64]bool{manager.UserID: true}
	next := manager.ManagerID
	for next != nil {
		if *next == employeeID {
			return apperrors.NewValidationError("assignment would create a reporting cycle")
		}
		if seen[*next] {
			return nil
		}
		seen[*next] = true

		ancestor, err := s.userRepo.FindUserByID(ctx, *next)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil
			}
			return err
		}
		next = ancestor.ManagerID
	}
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.Int64("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
