package mapping

import (
	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/opms-dev/opms_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		OwnerID:        d.OwnerID,
		Branch:         d.Branch,
		ParentID:       d.ParentID,
		Name:           d.Name,
		CheckNo:        d.CheckNo,
		CheckDate:      d.CheckDate,
		DueDate:        d.DueDate,
		Status:         models.TransactionStatus(d.Status),
		CheckAmount:    d.CheckAmount,
		CounteredCheck: d.CounteredCheck,
		EWT:            d.EWT,
		Deductions:     ToModelDeductions(d.Deductions),
		Notes:          d.Notes,
		PaidAt:         d.PaidAt,
		PaidBy:         d.PaidBy,
		IsArchived:     d.IsArchived,
		ArchivedAt:     d.ArchivedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		OwnerID:        m.OwnerID,
		Branch:         m.Branch,
		ParentID:       m.ParentID,
		Name:           m.Name,
		CheckNo:        m.CheckNo,
		CheckDate:      m.CheckDate,
		DueDate:        m.DueDate,
		Status:         domain.TransactionStatus(m.Status),
		CheckAmount:    m.CheckAmount,
		CounteredCheck: m.CounteredCheck,
		EWT:            m.EWT,
		Deductions:     ToDomainDeductions(m.Deductions),
		Notes:          m.Notes,
		PaidAt:         m.PaidAt,
		PaidBy:         m.PaidBy,
		IsArchived:     m.IsArchived,
		ArchivedAt:     m.ArchivedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelDeductions converts domain deductions to their JSONB model shape
func ToModelDeductions(ds []domain.Deduction) []models.Deduction {
	ms := make([]models.Deduction, len(ds))
	for i, d := range ds {
		ms[i] = models.Deduction{Name: d.Name, Amount: d.Amount}
	}
	return ms
}

// ToDomainDeductions converts JSONB model deductions to domain deductions
func ToDomainDeductions(ms []models.Deduction) []domain.Deduction {
	ds := make([]domain.Deduction, len(ms))
	for i, m := range ms {
		ds[i] = domain.Deduction{Name: m.Name, Amount: m.Amount}
	}
	return ds
}
