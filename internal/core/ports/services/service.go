package services

// ServiceContainer bundles all service interfaces for route registration.
type ServiceContainer struct {
	Transaction    TransactionService
	Reconciliation ReconciliationService
	Analytics      AnalyticsService
	Loan           LoanService
}
