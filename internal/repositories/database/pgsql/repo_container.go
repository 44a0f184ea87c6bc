package pgsql

import (
	portsrepo "github.com/SscSPs/pravaha_expense_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:   newPgxTxManager(dbPool),
		CompanyRepo: newPgxCompanyRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		ExpenseRepo: newPgxExpenseRepository(dbPool),
	}
}
