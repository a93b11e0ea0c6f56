package services

import (
	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Reconciliation = NewReconciliationService(repos.TransactionRepo)
	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo, repos.LoanRepo)
	container.Loan = NewLoanService(repos.LoanRepo)

	return container
}
