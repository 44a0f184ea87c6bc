package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pravaha_expense_app/internal/core/ports/repositories"
	"github.com/SscSPs/pravaha_expense_app/internal/models"
	"github.com/SscSPs/pravaha_expense_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, email, password_hash, full_name, role, company_id, manager_id, created_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(&m.UserID, &m.Email, &m.PasswordHash, &m.FullName, &m.Role, &m.CompanyID, &m.ManagerID, &m.CreatedAt)
	return m, err
}

func (r *PgxUserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + `;`
	m, err := scanUser(r.DB(ctx).QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findOne(ctx, `user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `lower(email) = lower($1)`, email)
}

func (r *PgxUserRepository) FindUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY user_id;`
	rows, err := r.DB(ctx).Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query users of company %d: %w", companyID, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return mapping.ToDomainUserSlice(users), nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (email, password_hash, full_name, role, company_id, manager_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id, created_at;
	`
	err := r.DB(ctx).QueryRow(ctx, query,
		m.Email,
		m.PasswordHash,
		m.FullName,
		m.Role,
		m.CompanyID,
		m.ManagerID,
		m.CreatedAt,
	).Scan(&m.UserID, &m.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "user with this email")
	}

	saved := mapping.ToDomainUser(m)
	return &saved, nil
}

func (r *PgxUserRepository) UpdateManager(ctx context.Context, userID int64, managerID *int64) error {
	tag, err := r.DB(ctx).Exec(ctx, `UPDATE users SET manager_id = $2 WHERE user_id = $1;`, userID, managerID)
	if err != nil {
		return fmt.Errorf("failed to update manager of user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
