package repositories

import (
	"context"

	"github.com/SscSPs/book_reports/internal/core/domain"
)

// BookReader defines read operations for book (company ledger) data
type BookReader interface {
	// FindBookByID retrieves a book by its ID. Returns apperrors.ErrNotFound if it does not exist.
	FindBookByID(ctx context.Context, bookID int64) (*domain.Book, error)
}

// LedgerReader defines read operations over the chart of accounts and posted line items
type LedgerReader interface {
	// ListAccounts retrieves the chart of accounts visible to a book (shared default chart plus book-specific accounts).
	ListAccounts(ctx context.Context, bookID int64) ([]domain.Account, error)

	// ListLineItems retrieves the line items of posted vouchers dated inside the window.
	ListLineItems(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.LineItem, error)
}

// InvoiceReader defines read operations for invoice and voucher join records
type InvoiceReader interface {
	// ListInvoiceVouchers retrieves invoices dated inside the window together with the vouchers that booked them.
	ListInvoiceVouchers(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.InvoiceVoucher, error)
}
