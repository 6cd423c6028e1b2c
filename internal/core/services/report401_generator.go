package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/book_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	"github.com/SscSPs/book_reports/internal/utils/taxation"
)

// rocEpochOffset converts a Gregorian year to the Republic of China calendar used on 401 filings.
const rocEpochOffset = 1911

// Report401Generator builds the bimonthly business tax return of a book.
type Report401Generator struct {
	BaseService
	bookRepo    portsrepo.BookReader
	invoiceRepo portsrepo.InvoiceReader
	prefixes    taxation.AccountPrefixes
	location    *time.Location
}

// Report401Option is a functional option for configuring the 401 generator
type Report401Option func(*Report401Generator)

// WithAccountPrefixes overrides the chart prefixes used to recognise tax and fixed-asset line items.
func WithAccountPrefixes(prefixes taxation.AccountPrefixes) Report401Option {
	return func(g *Report401Generator) {
		g.prefixes = prefixes
	}
}

// WithFilingLocation sets the time zone used to derive the filing year and months.
func WithFilingLocation(location *time.Location) Report401Option {
	return func(g *Report401Generator) {
		if location != nil {
			g.location = location
		}
	}
}

// NewReport401Generator creates a new 401 generator with the provided options
func NewReport401Generator(bookRepo portsrepo.BookReader, invoiceRepo portsrepo.InvoiceReader, options ...Report401Option) *Report401Generator {
	g := &Report401Generator{
		bookRepo:    bookRepo,
		invoiceRepo: invoiceRepo,
		prefixes:    taxation.DefaultPrefixes(),
		location:    time.UTC,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Generate aggregates the invoices dated inside the window into a 401 return.
func (g *Report401Generator) Generate(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.TaxReport401, error) {
	book, err := g.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to find book %d: %w", bookID, err)
	}

	records, err := g.invoiceRepo.ListInvoiceVouchers(ctx, bookID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	report := taxation.Aggregate401(records, g.prefixes)
	report.BookID = bookID
	report.Period = window
	report.BasicInfo = g.basicInfo(*book, window)

	if report.SkippedInvoices > 0 {
		g.LogWarn(ctx, "Invoices with unmapped types skipped",
			slog.Int64("book_id", bookID),
			slog.Int("skipped", report.SkippedInvoices))
	}
	return &report, nil
}

func (g *Report401Generator) basicInfo(book domain.Book, window domain.PeriodWindow) domain.TaxReportBasicInfo {
	start := window.Start().In(g.location)
	end := window.End().In(g.location)
	return domain.TaxReportBasicInfo{
		UniformNumber:   book.TaxID,
		BusinessName:    book.Name,
		PersonInCharge:  book.PersonInCharge,
		TaxSerialNo:     book.TaxSerialNo,
		BusinessAddress: book.Address,
		CurrentYear:     start.Year() - rocEpochOffset,
		CurrentPeriod:   fmt.Sprintf("%02d-%02d", int(start.Month()), int(end.Month())),
	}
}
