package taxation

import (
	"strings"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// refundRate is the VAT rate applied to zero-tax sales when computing the refund ceiling.
var refundRate = decimal.RequireFromString("0.05")

// AccountPrefixes are the chart code prefixes used to recognise tax and fixed-asset line items.
type AccountPrefixes struct {
	OutputTax  string
	InputTax   string
	FixedAsset string
}

// DefaultPrefixes derives the prefixes from the special account codes.
// Fixed assets are matched on the two-digit group of their root code.
func DefaultPrefixes() AccountPrefixes {
	return AccountPrefixes{
		OutputTax:  domain.OutputTax.String(),
		InputTax:   domain.InputTax.String(),
		FixedAsset: domain.FixedAsset.String()[:2],
	}
}

var salesCategoryByType = map[domain.InvoiceType]domain.SalesCategory{
	domain.InvoiceTypeOutput31: domain.SalesTriplicateAndElectronic,
	domain.InvoiceTypeOutput35: domain.SalesCashRegisterAndElectronic,
	domain.InvoiceTypeOutput32: domain.SalesDuplicateCashRegisterAndOther,
	domain.InvoiceTypeOutput36: domain.SalesInvoiceExempt,
	domain.InvoiceTypeOutput33: domain.SalesReturnsAndAllowances,
	domain.InvoiceTypeOutput34: domain.SalesReturnsAndAllowances,
}

var purchaseCategoryByType = map[domain.InvoiceType]domain.PurchaseCategory{
	domain.InvoiceTypeInput21: domain.PurchaseUniformInvoice,
	domain.InvoiceTypeInput26: domain.PurchaseUniformInvoice,
	domain.InvoiceTypeInput25: domain.PurchaseCashRegisterAndElectronic,
	domain.InvoiceTypeInput22: domain.PurchaseOtherCertificates,
	domain.InvoiceTypeInput27: domain.PurchaseOtherCertificates,
	domain.InvoiceTypeInput28: domain.PurchaseCustomsDeclaration,
	domain.InvoiceTypeInput23: domain.PurchaseReturnsAndAllowances,
	domain.InvoiceTypeInput24: domain.PurchaseReturnsAndAllowances,
	domain.InvoiceTypeInput29: domain.PurchaseReturnsAndAllowances,
}

var importCategoryByType = map[domain.InvoiceType]domain.ImportCategory{
	domain.InvoiceTypeImportExempt:   domain.ImportTaxExemptGoods,
	domain.InvoiceTypeForeignService: domain.ImportForeignServices,
}

// Row order of each section as printed on the filing form.
var (
	SalesCategoryOrder = []domain.SalesCategory{
		domain.SalesTriplicateAndElectronic,
		domain.SalesCashRegisterAndElectronic,
		domain.SalesDuplicateCashRegisterAndOther,
		domain.SalesInvoiceExempt,
		domain.SalesReturnsAndAllowances,
	}
	PurchaseCategoryOrder = []domain.PurchaseCategory{
		domain.PurchaseUniformInvoice,
		domain.PurchaseCashRegisterAndElectronic,
		domain.PurchaseOtherCertificates,
		domain.PurchaseCustomsDeclaration,
		domain.PurchaseReturnsAndAllowances,
	}
	ImportCategoryOrder = []domain.ImportCategory{
		domain.ImportTaxExemptGoods,
		domain.ImportForeignServices,
	}
)

// NewTaxReport401 returns a report with every breakdown row present and zeroed.
func NewTaxReport401() domain.TaxReport401 {
	report := domain.TaxReport401{
		Sales: domain.SalesSection{
			Breakdown: make(map[domain.SalesCategory]domain.SalesAmounts, len(SalesCategoryOrder)),
		},
		Purchases: domain.PurchasesSection{
			Breakdown: make(map[domain.PurchaseCategory]domain.PurchaseAmounts, len(PurchaseCategoryOrder)),
		},
		Imports: domain.ImportsSection{
			Breakdown: make(map[domain.ImportCategory]decimal.Decimal, len(ImportCategoryOrder)),
		},
	}
	for _, c := range SalesCategoryOrder {
		report.Sales.Breakdown[c] = domain.SalesAmounts{}
	}
	for _, c := range PurchaseCategoryOrder {
		report.Purchases.Breakdown[c] = domain.PurchaseAmounts{}
	}
	for _, c := range ImportCategoryOrder {
		report.Imports.Breakdown[c] = decimal.Zero
	}
	return report
}

// rowSign is -1 for returns and allowances rows, which are stored negated
// so that every total stays the plain sum of its rows.
func rowSign(isReturn bool) decimal.Decimal {
	if isReturn {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

// Aggregate401 classifies invoice/voucher records into the sales, purchases and imports tables.
// Records with an unmapped invoice type are skipped and counted. The tax calculation block is
// filled by Reconcile.
func Aggregate401(records []domain.InvoiceVoucher, prefixes AccountPrefixes) domain.TaxReport401 {
	report := NewTaxReport401()
	for _, record := range records {
		invoiceType := record.Invoice.Type
		if category, ok := salesCategoryByType[invoiceType]; ok {
			addSale(&report.Sales, category, record, prefixes)
			continue
		}
		if category, ok := purchaseCategoryByType[invoiceType]; ok {
			addPurchase(&report.Purchases, category, record, prefixes)
			continue
		}
		if category, ok := importCategoryByType[invoiceType]; ok {
			report.Imports.Breakdown[category] = report.Imports.Breakdown[category].Add(record.Invoice.PriceBeforeTax)
			report.Imports.Total = report.Imports.Total.Add(record.Invoice.PriceBeforeTax)
			continue
		}
		report.SkippedInvoices++
	}
	report.Sales.TotalTaxableAmount = report.Sales.Total.Sales.Add(report.Sales.Total.ZeroTax)
	report.TaxCalculation = Reconcile(report.Sales, report.Purchases)
	return report
}

func addSale(section *domain.SalesSection, category domain.SalesCategory, record domain.InvoiceVoucher, prefixes AccountPrefixes) {
	sign := rowSign(category == domain.SalesReturnsAndAllowances)
	row := section.Breakdown[category]

	switch record.Invoice.TaxType {
	case domain.TaxTypeZeroTax:
		amount := record.Invoice.TotalPrice.Mul(sign)
		row.ZeroTax = row.ZeroTax.Add(amount)
		section.Total.ZeroTax = section.Total.ZeroTax.Add(amount)
	case domain.TaxTypeTaxFree:
		section.TaxFreeSales = section.TaxFreeSales.Add(record.Invoice.TotalPrice.Mul(sign))
	default:
		total := debitTotal(record.Voucher.LineItems)
		tax := prefixedTotal(record.Voucher.LineItems, prefixes.OutputTax).Abs()
		sales := total.Sub(tax).Mul(sign)
		tax = tax.Mul(sign)
		row.Sales = row.Sales.Add(sales)
		row.Tax = row.Tax.Add(tax)
		section.Total.Sales = section.Total.Sales.Add(sales)
		section.Total.Tax = section.Total.Tax.Add(tax)
	}
	section.Breakdown[category] = row
}

func addPurchase(section *domain.PurchasesSection, category domain.PurchaseCategory, record domain.InvoiceVoucher, prefixes AccountPrefixes) {
	if !record.Invoice.Deductible {
		section.Undeductible = section.Undeductible.Add(record.Invoice.PriceBeforeTax)
		return
	}

	sign := rowSign(category == domain.PurchaseReturnsAndAllowances)

	items := record.Voucher.LineItems
	inputTax := prefixedTotal(items, prefixes.InputTax).Abs()
	fixed := prefixedDebitTotal(items, prefixes.FixedAsset)
	general := debitTotal(items).Sub(fixed).Sub(inputTax)
	if general.IsNegative() {
		general = decimal.Zero
	}
	fixedTax := decimal.Zero
	if base := fixed.Add(general); !base.IsZero() {
		fixedTax = inputTax.Mul(fixed).Div(base).Round(2)
	}
	generalTax := inputTax.Sub(fixedTax)

	entry := domain.PurchaseAmounts{
		GeneralPurchases: domain.AmountAndTax{Amount: general.Mul(sign), Tax: generalTax.Mul(sign)},
		FixedAssets:      domain.AmountAndTax{Amount: fixed.Mul(sign), Tax: fixedTax.Mul(sign)},
	}
	section.Breakdown[category] = addPurchaseAmounts(section.Breakdown[category], entry)
	section.Total = addPurchaseAmounts(section.Total, entry)
}

func addPurchaseAmounts(a, b domain.PurchaseAmounts) domain.PurchaseAmounts {
	return domain.PurchaseAmounts{
		GeneralPurchases: domain.AmountAndTax{
			Amount: a.GeneralPurchases.Amount.Add(b.GeneralPurchases.Amount),
			Tax:    a.GeneralPurchases.Tax.Add(b.GeneralPurchases.Tax),
		},
		FixedAssets: domain.AmountAndTax{
			Amount: a.FixedAssets.Amount.Add(b.FixedAssets.Amount),
			Tax:    a.FixedAssets.Tax.Add(b.FixedAssets.Tax),
		},
	}
}

func debitTotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Debit {
			total = total.Add(item.Amount)
		}
	}
	return total
}

func prefixedTotal(items []domain.LineItem, prefix string) decimal.Decimal {
	total := decimal.Zero
	if prefix == "" {
		return total
	}
	for _, item := range items {
		if strings.HasPrefix(item.AccountCode, prefix) {
			total = total.Add(item.Amount)
		}
	}
	return total
}

func prefixedDebitTotal(items []domain.LineItem, prefix string) decimal.Decimal {
	total := decimal.Zero
	if prefix == "" {
		return total
	}
	for _, item := range items {
		if item.Debit && strings.HasPrefix(item.AccountCode, prefix) {
			total = total.Add(item.Amount)
		}
	}
	return total
}

// Reconcile computes the payable or refundable tax of the period.
// The previous period offset is not carried between filings and is always zero.
func Reconcile(sales domain.SalesSection, purchases domain.PurchasesSection) domain.TaxCalculation {
	calc := domain.TaxCalculation{
		OutputTax:            sales.Total.Tax,
		DeductibleInputTax:   purchases.Total.Tax(),
		PreviousPeriodOffset: decimal.Zero,
	}
	calc.Subtotal = calc.DeductibleInputTax.Add(calc.PreviousPeriodOffset)
	calc.RefundCeiling = sales.Total.ZeroTax.Mul(refundRate).Add(purchases.Total.FixedAssets.Tax)

	diff := calc.OutputTax.Sub(calc.Subtotal)
	if !diff.IsNegative() {
		calc.CurrentPeriodTaxPayable = diff
		return calc
	}

	calc.CurrentPeriodFilingOffset = diff.Neg()
	calc.CurrentPeriodRefundableTax = decimal.Min(calc.RefundCeiling, calc.CurrentPeriodFilingOffset)
	calc.CurrentPeriodAccumulatedOffset = calc.CurrentPeriodFilingOffset.Sub(calc.CurrentPeriodRefundableTax)
	return calc
}
