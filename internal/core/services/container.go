package services

import (
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:      NewAuthService(cfg, repos.UserRepo),
		User:      NewUserService(repos.UserRepo),
		Farmer:    NewFarmerService(repos.FarmerRepo, repos.UserRepo),
		Poultry:   NewPoultryService(repos.PoultryRepo, repos.FarmerRepo, repos.UserRepo),
		Ledger:    NewLedgerService(repos.LedgerRepo, repos.UserRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo, repos.UserRepo),
		Inventory: NewInventoryService(repos.ReportingRepo),
	}
}
