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

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for chart and line item data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerReader
var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// Book-specific rows come last so they win over the shared chart when codes collide.
const listAccountsQuery = `
	SELECT id, book_id, code, name, debit, parent_code, level
	FROM accounts
	WHERE (book_id IS NULL OR book_id = $1)
		AND deleted_at IS NULL
	ORDER BY book_id NULLS FIRST, code;
`

// Only line items of posted vouchers count towards reports.
const lineItemSelectQuery = `
	SELECT li.id, li.voucher_id, li.account_id, a.code AS account_code, li.amount, li.debit
	FROM line_items li
	JOIN vouchers v ON v.id = li.voucher_id
	JOIN accounts a ON a.id = li.account_id
	WHERE v.book_id = $1
		AND v.status = 'POSTED'
		AND v.deleted_at IS NULL
		AND li.deleted_at IS NULL
`

// ListAccounts retrieves the shared chart plus the book's own accounts.
func (r *PgxLedgerRepository) ListAccounts(ctx context.Context, bookID int64) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, listAccountsQuery, bookID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query accounts", err)
	}
	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect account rows", err)
	}
	return preferBookAccounts(mapping.ToDomainAccounts(modelAccounts)), nil
}

// ListLineItems retrieves posted line items dated inside the window, bounds inclusive.
func (r *PgxLedgerRepository) ListLineItems(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.LineItem, error) {
	query := lineItemSelectQuery + `
		AND v.date BETWEEN $2 AND $3
	ORDER BY v.date, li.id;
	`
	rows, err := r.Pool.Query(ctx, query, bookID, window.StartSecond, window.EndSecond)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query line items", err)
	}
	modelItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LineItem])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect line item rows", err)
	}
	return mapping.ToDomainLineItems(modelItems), nil
}

// preferBookAccounts drops shared accounts whose code the book overrides.
// Input is ordered shared rows first.
func preferBookAccounts(accounts []domain.Account) []domain.Account {
	position := make(map[string]int, len(accounts))
	result := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if i, ok := position[account.Code]; ok {
			result[i] = account
			continue
		}
		position[account.Code] = len(result)
		result = append(result, account)
	}
	return result
}
