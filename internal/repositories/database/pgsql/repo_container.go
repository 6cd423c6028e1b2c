package pgsql

import (
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookRepo:    newPgxBookRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
	}
}
