package mapping

import (
	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/SscSPs/book_reports/internal/models"
)

// ToDomainInvoiceVoucher converts a joined invoice row and the voucher's line items to a domain record
func ToDomainInvoiceVoucher(m models.InvoiceVoucher, items []models.LineItem) domain.InvoiceVoucher {
	return domain.InvoiceVoucher{
		Invoice: domain.Invoice{
			ID:             m.InvoiceID,
			BookID:         m.BookID,
			No:             m.InvoiceNo,
			Type:           domain.InvoiceType(m.InvoiceType),
			TaxType:        domain.TaxType(m.TaxType),
			Deductible:     m.Deductible,
			PriceBeforeTax: m.PriceBeforeTax,
			TaxPrice:       m.TaxPrice,
			TotalPrice:     m.TotalPrice,
			DateSecond:     m.InvoiceDate,
		},
		Voucher: domain.Voucher{
			ID:         m.VoucherID,
			No:         m.VoucherNo,
			DateSecond: m.VoucherDate,
			LineItems:  ToDomainLineItems(items),
		},
	}
}

// ToDomainBook converts a model Book to a domain Book
func ToDomainBook(m models.Book) domain.Book {
	return domain.Book{
		ID:             m.ID,
		Name:           m.Name,
		TaxID:          m.TaxID,
		TaxSerialNo:    derefString(m.TaxSerialNo),
		Address:        derefString(m.Address),
		PersonInCharge: derefString(m.PersonInCharge),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
