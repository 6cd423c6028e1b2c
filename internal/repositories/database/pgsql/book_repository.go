package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	"github.com/SscSPs/book_reports/internal/models"
	"github.com/SscSPs/book_reports/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookRepository struct {
	BaseRepository
}

// newPgxBookRepository creates a new repository for book data.
func newPgxBookRepository(pool *pgxpool.Pool) portsrepo.BookReader {
	return &PgxBookRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBookRepository implements portsrepo.BookReader
var _ portsrepo.BookReader = (*PgxBookRepository)(nil)

// FindBookByID retrieves a book by its ID.
func (r *PgxBookRepository) FindBookByID(ctx context.Context, bookID int64) (*domain.Book, error) {
	query := `
		SELECT id, name, tax_id, tax_serial_no, address, person_in_charge
		FROM books
		WHERE id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query book", err)
	}
	modelBook, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: book %d", apperrors.ErrNotFound, bookID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect book row", err)
	}

	book := mapping.ToDomainBook(modelBook)
	return &book, nil
}
