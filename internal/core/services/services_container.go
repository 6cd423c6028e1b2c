package services

import (
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/book_reports/internal/core/ports/services"
	"github.com/SscSPs/book_reports/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	forests := NewForestBuilder(repos.BookRepo, repos.LedgerRepo)

	// The income statement generator feeds both the closer and the balance sheet ratios
	incomeStatements := NewIncomeStatementGenerator(forests, repos.LedgerRepo)
	closer := NewPeriodCloser(forests, incomeStatements)
	balanceSheets := NewBalanceSheetGenerator(forests, repos.LedgerRepo, closer, incomeStatements)
	report401 := NewReport401Generator(repos.BookRepo, repos.InvoiceRepo, WithFilingLocation(cfg.ReportLocation))

	return &portssvc.ServiceContainer{
		Reporting: NewReportingService(balanceSheets, incomeStatements, report401),
	}
}
