package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/book_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	"github.com/SscSPs/book_reports/internal/utils/accounting"
)

// ForestBuilder loads a book's chart of accounts and shapes it into report forests.
type ForestBuilder struct {
	BaseService
	bookRepo   portsrepo.BookReader
	ledgerRepo portsrepo.LedgerReader
}

// NewForestBuilder creates a new forest builder
func NewForestBuilder(bookRepo portsrepo.BookReader, ledgerRepo portsrepo.LedgerReader) *ForestBuilder {
	return &ForestBuilder{
		bookRepo:   bookRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Chart returns the accounts visible to the book. It fails with apperrors.ErrNotFound
// when the book does not exist.
func (b *ForestBuilder) Chart(ctx context.Context, bookID int64) ([]domain.Account, error) {
	if _, err := b.bookRepo.FindBookByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("failed to find book %d: %w", bookID, err)
	}

	chart, err := b.ledgerRepo.ListAccounts(ctx, bookID)
	if err != nil {
		b.LogError(ctx, err, "Failed to load chart of accounts", slog.Int64("book_id", bookID))
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	return chart, nil
}

// Build returns the unaggregated forest of one report type for the book.
func (b *ForestBuilder) Build(ctx context.Context, bookID int64, reportType domain.ReportType) ([]domain.AccountNode, error) {
	chart, err := b.Chart(ctx, bookID)
	if err != nil {
		return nil, err
	}

	forest := accounting.BuildForest(chart, reportType)
	b.LogDebug(ctx, "Account forest built",
		slog.Int64("book_id", bookID),
		slog.String("report_type", string(reportType)),
		slog.Int("accounts", len(chart)),
		slog.Int("roots", len(forest)))
	return forest, nil
}
