package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	"github.com/SscSPs/book_reports/internal/models"
	"github.com/SscSPs/book_reports/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceReader {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceReader
var _ portsrepo.InvoiceReader = (*PgxInvoiceRepository)(nil)

const listInvoicesQuery = `
	SELECT
		i.id AS invoice_id, i.book_id, i.no AS invoice_no, i.type AS invoice_type, i.tax_type,
		i.deductible, i.price_before_tax, i.tax_price, i.total_price, i.date AS invoice_date,
		v.id AS voucher_id, v.no AS voucher_no, v.date AS voucher_date
	FROM invoices i
	JOIN vouchers v ON v.id = i.voucher_id
	WHERE i.book_id = $1
		AND i.date BETWEEN $2 AND $3
		AND i.deleted_at IS NULL
		AND v.deleted_at IS NULL
	ORDER BY i.date, i.id;
`

const listInvoiceLineItemsQuery = `
	SELECT li.id, li.voucher_id, li.account_id, a.code AS account_code, li.amount, li.debit
	FROM line_items li
	JOIN accounts a ON a.id = li.account_id
	WHERE li.voucher_id = ANY($1)
		AND li.deleted_at IS NULL
	ORDER BY li.voucher_id, li.id;
`

// ListInvoiceVouchers retrieves the invoices of the window with the line items of their vouchers.
// Both queries share one read-only snapshot.
func (r *PgxInvoiceRepository) ListInvoiceVouchers(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.InvoiceVoucher, error) {
	var invoices []models.InvoiceVoucher
	var items []models.LineItem

	err := r.withReadOnlyTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, listInvoicesQuery, bookID, window.StartSecond, window.EndSecond)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to query invoices", err)
		}
		invoices, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.InvoiceVoucher])
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to collect invoice rows", err)
		}
		if len(invoices) == 0 {
			return nil
		}

		voucherIDs := make([]int64, 0, len(invoices))
		for _, inv := range invoices {
			voucherIDs = append(voucherIDs, inv.VoucherID)
		}
		rows, err = tx.Query(ctx, listInvoiceLineItemsQuery, voucherIDs)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to query invoice line items", err)
		}
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.LineItem])
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to collect invoice line item rows", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	byVoucher := make(map[int64][]models.LineItem, len(invoices))
	for _, item := range items {
		byVoucher[item.VoucherID] = append(byVoucher[item.VoucherID], item)
	}

	result := make([]domain.InvoiceVoucher, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, mapping.ToDomainInvoiceVoucher(inv, byVoucher[inv.VoucherID]))
	}
	return result, nil
}
