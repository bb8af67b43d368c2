package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		FarmerRepo:    newPgxFarmerRepository(dbPool),
		PoultryRepo:   newPgxPoultryRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
