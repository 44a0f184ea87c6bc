package services

import (
	"github.com/SscSPs/pravaha_expense_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/pravaha_expense_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/platform/config"
)

// Providers groups the outbound integrations services depend on.
// Detector may be nil when text detection could not be initialised.
type Providers struct {
	Countries providers.CountryDirectory
	Rates     providers.RateProvider
	Detector  providers.TextDetector
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, ext Providers) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(ext.Countries)
	container.ExchangeRate = NewExchangeRateService(ext.Rates)
	container.Receipt = NewReceiptService(ext.Detector)

	container.Company = NewCompanyService(repos.TxManager, repos.CompanyRepo, repos.UserRepo, container.Currency)
	container.User = NewUserService(repos.TxManager, repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Expense = NewExpenseService(
		repos.TxManager,
		repos.ExpenseRepo,
		repos.UserRepo,
		repos.CompanyRepo,
		container.ExchangeRate,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CompanySvcFacade      = (*companyService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.ExpenseSvcFacade      = (*expenseService)(nil)
	_ portssvc.ReceiptSvcFacade      = (*receiptService)(nil)
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.TokenSvcFacade        = (*tokenService)(nil)
)
