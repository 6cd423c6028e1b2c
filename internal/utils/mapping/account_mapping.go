package mapping

import (
	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/SscSPs/book_reports/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	a := domain.Account{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		DebitNature: m.DebitNature,
		Level:       m.Level,
	}
	if m.BookID != nil {
		a.BookID = *m.BookID
	}
	if m.ParentCode != nil {
		a.ParentCode = *m.ParentCode
	}
	return a
}

// ToDomainAccounts converts a slice of model Accounts to domain Accounts
func ToDomainAccounts(ms []models.Account) []domain.Account {
	if ms == nil {
		return []domain.Account{}
	}
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		Amount:      m.Amount,
		Debit:       m.Debit,
		VoucherID:   m.VoucherID,
	}
}

// ToDomainLineItems converts a slice of model LineItems to domain LineItems
func ToDomainLineItems(ms []models.LineItem) []domain.LineItem {
	if ms == nil {
		return []domain.LineItem{}
	}
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
