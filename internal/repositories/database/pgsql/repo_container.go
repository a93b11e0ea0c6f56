package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AnalyticsRepo:   newPgxAnalyticsRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
	}
}
