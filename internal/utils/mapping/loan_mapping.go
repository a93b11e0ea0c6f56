package mapping

import (
	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/opms-dev/opms_backend/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:      d.LoanID,
		OwnerID:     d.OwnerID,
		Branch:      d.Branch,
		Name:        d.Name,
		BankName:    d.BankName,
		Amount:      d.Amount,
		DateIssued:  d.DateIssued,
		DatePaid:    d.DatePaid,
		IsArchived:  d.IsArchived,
		ArchivedAt:  d.ArchivedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:      m.LoanID,
		OwnerID:     m.OwnerID,
		Branch:      m.Branch,
		Name:        m.Name,
		BankName:    m.BankName,
		Amount:      m.Amount,
		DateIssued:  m.DateIssued,
		DatePaid:    m.DatePaid,
		IsArchived:  m.IsArchived,
		ArchivedAt:  m.ArchivedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoanSlice converts a slice of model Loans to domain Loans
func ToDomainLoanSlice(ms []models.Loan) []domain.Loan {
	ds := make([]domain.Loan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoan(m)
	}
	return ds
}
