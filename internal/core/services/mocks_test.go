package services_test

import (
	"context"

	"github.com/SscSPs/book_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BookReader ---
type MockBookReader struct {
	mock.Mock
}

var _ portsrepo.BookReader = (*MockBookReader)(nil)

func (m *MockBookReader) FindBookByID(ctx context.Context, bookID int64) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

// --- Mock LedgerReader ---
type MockLedgerReader struct {
	mock.Mock
}

var _ portsrepo.LedgerReader = (*MockLedgerReader)(nil)

func (m *MockLedgerReader) ListAccounts(ctx context.Context, bookID int64) ([]domain.Account, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// ListLineItems accepts either a fixed slice or a func filtering by window as its return value.
func (m *MockLedgerReader) ListLineItems(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.LineItem, error) {
	args := m.Called(ctx, bookID, window)
	if fn, ok := args.Get(0).(func(domain.PeriodWindow) []domain.LineItem); ok {
		return fn(window), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

// --- Mock InvoiceReader ---
type MockInvoiceReader struct {
	mock.Mock
}

var _ portsrepo.InvoiceReader = (*MockInvoiceReader)(nil)

func (m *MockInvoiceReader) ListInvoiceVouchers(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.InvoiceVoucher, error) {
	args := m.Called(ctx, bookID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceVoucher), args.Error(1)
}

// --- Fixtures ---

const testBookID int64 = 42

const (
	jan15of2023 int64 = 1673740800
	jun01of2023 int64 = 1685577600
	may01of2024 int64 = 1714521600
	jul01of2024 int64 = 1719792000
)

// year2024 is the calendar year 2024 in UTC; its previous year is 1672531200..1704067199.
var year2024 = domain.PeriodWindow{StartSecond: 1704067200, EndSecond: 1735689599}

func testBook() *domain.Book {
	return &domain.Book{
		ID:             testBookID,
		Name:           "Acme Trading",
		TaxID:          "12345678",
		TaxSerialNo:    "987654321",
		Address:        "1 Market Street",
		PersonInCharge: "Lin",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fullChart holds both report forests of one book.
func fullChart() []domain.Account {
	return []domain.Account{
		{ID: 1, Code: "1XXX", Name: "Assets", DebitNature: true},
		{ID: 2, Code: "1100", Name: "Cash", DebitNature: true, ParentCode: "1XXX"},
		{ID: 3, Code: "1170", Name: "Accounts receivable", DebitNature: true, ParentCode: "1XXX"},
		{ID: 4, Code: "130X", Name: "Inventories", DebitNature: true, ParentCode: "1XXX"},
		{ID: 5, Code: "2XXX", Name: "Liabilities"},
		{ID: 6, Code: "2100", Name: "Notes payable", ParentCode: "2XXX"},
		{ID: 7, Code: "3XXX", Name: "Equity"},
		{ID: 8, Code: "3351", Name: "Accumulated profit", ParentCode: "3XXX"},
		{ID: 9, Code: "3353", Name: "Net income", ParentCode: "3XXX"},
		{ID: 10, Code: "3490", Name: "Other equity", ParentCode: "3XXX"},
		{ID: 11, Code: "4000", Name: "Operating revenue"},
		{ID: 12, Code: "5000", Name: "Operating costs", DebitNature: true},
		{ID: 13, Code: "6000", Name: "Operating expenses", DebitNature: true},
		{ID: 14, Code: "8300", Name: "Other comprehensive income"},
	}
}

func chartWithout(codes ...string) []domain.Account {
	skip := make(map[string]bool, len(codes))
	for _, c := range codes {
		skip[c] = true
	}
	var out []domain.Account
	for _, a := range fullChart() {
		if !skip[a.Code] {
			out = append(out, a)
		}
	}
	return out
}

type datedLineItem struct {
	date int64
	item domain.LineItem
}

func posting(date int64, code, amount string, isDebit bool) datedLineItem {
	return datedLineItem{
		date: date,
		item: domain.LineItem{AccountCode: code, Amount: dec(amount), Debit: isDebit, VoucherID: date},
	}
}

// ledger posts one year of trading in 2023 and another in 2024.
func ledger() []datedLineItem {
	return []datedLineItem{
		posting(jan15of2023, "130X", "1000", true),
		posting(jan15of2023, "2100", "1000", false),
		posting(jun01of2023, "1170", "500", true),
		posting(jun01of2023, "4000", "500", false),
		posting(jun01of2023, "5000", "200", true),
		posting(jun01of2023, "130X", "200", false),
		posting(may01of2024, "1100", "800", true),
		posting(may01of2024, "4000", "800", false),
		posting(may01of2024, "5000", "300", true),
		posting(may01of2024, "130X", "300", false),
		posting(may01of2024, "6000", "100", true),
		posting(may01of2024, "1100", "100", false),
		posting(jul01of2024, "1100", "50", true),
		posting(jul01of2024, "8300", "50", false),
	}
}

// inWindow serves the dated postings the way the repository filters them.
func inWindow(postings []datedLineItem) func(domain.PeriodWindow) []domain.LineItem {
	return func(window domain.PeriodWindow) []domain.LineItem {
		var items []domain.LineItem
		for _, p := range postings {
			if p.date >= window.StartSecond && p.date <= window.EndSecond {
				items = append(items, p.item)
			}
		}
		return items
	}
}

func findItem(items []domain.ReportItem, code string) (domain.ReportItem, bool) {
	for _, item := range items {
		if item.Code == code {
			return item, true
		}
		if found, ok := findItem(item.Children, code); ok {
			return found, true
		}
	}
	return domain.ReportItem{}, false
}
