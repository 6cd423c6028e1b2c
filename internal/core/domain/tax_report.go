package domain

import "github.com/shopspring/decimal"

// SalesCategory is a row of the sales table of the 401 return.
type SalesCategory string

const (
	SalesTriplicateAndElectronic       SalesCategory = "triplicateAndElectronic"
	SalesCashRegisterAndElectronic     SalesCategory = "cashRegisterAndElectronic"
	SalesDuplicateCashRegisterAndOther SalesCategory = "duplicateCashRegisterAndOther"
	SalesInvoiceExempt                 SalesCategory = "invoiceExempt"
	SalesReturnsAndAllowances          SalesCategory = "returnsAndAllowances"
)

// PurchaseCategory is a row of the purchases table of the 401 return.
type PurchaseCategory string

const (
	PurchaseUniformInvoice            PurchaseCategory = "uniformInvoice"
	PurchaseCashRegisterAndElectronic PurchaseCategory = "cashRegisterAndElectronic"
	PurchaseOtherCertificates         PurchaseCategory = "otherCertificates"
	PurchaseCustomsDeclaration        PurchaseCategory = "customsDeclaration"
	PurchaseReturnsAndAllowances      PurchaseCategory = "returnsAndAllowances"
)

// ImportCategory is a row of the imports table of the 401 return.
type ImportCategory string

const (
	ImportTaxExemptGoods  ImportCategory = "taxExemptGoods"
	ImportForeignServices ImportCategory = "foreignServices"
)

// SalesAmounts are the columns of one sales row.
type SalesAmounts struct {
	Sales   decimal.Decimal `json:"sales"`
	Tax     decimal.Decimal `json:"tax"`
	ZeroTax decimal.Decimal `json:"zeroTax"`
}

// AmountAndTax is an amount with its VAT.
type AmountAndTax struct {
	Amount decimal.Decimal `json:"amount"`
	Tax    decimal.Decimal `json:"tax"`
}

// PurchaseAmounts splits a purchase row into general purchases and fixed assets.
type PurchaseAmounts struct {
	GeneralPurchases AmountAndTax `json:"generalPurchases"`
	FixedAssets      AmountAndTax `json:"fixedAssets"`
}

// Tax returns the total input tax of the row.
func (p PurchaseAmounts) Tax() decimal.Decimal {
	return p.GeneralPurchases.Tax.Add(p.FixedAssets.Tax)
}

// SalesSection is the sales table of the return.
type SalesSection struct {
	Breakdown          map[SalesCategory]SalesAmounts `json:"breakdown"`
	Total              SalesAmounts                   `json:"total"`
	TaxFreeSales       decimal.Decimal                `json:"taxFreeSales"`
	TotalTaxableAmount decimal.Decimal                `json:"totalTaxableAmount"`
}

// PurchasesSection is the purchases table of the return.
type PurchasesSection struct {
	Breakdown    map[PurchaseCategory]PurchaseAmounts `json:"breakdown"`
	Total        PurchaseAmounts                      `json:"total"`
	Undeductible decimal.Decimal                      `json:"undeductible"`
}

// ImportsSection is the imports table of the return.
type ImportsSection struct {
	Breakdown map[ImportCategory]decimal.Decimal `json:"breakdown"`
	Total     decimal.Decimal                    `json:"total"`
}

// TaxCalculation is the payable/refund reconciliation block.
type TaxCalculation struct {
	OutputTax                      decimal.Decimal `json:"outputTax"`
	DeductibleInputTax             decimal.Decimal `json:"deductibleInputTax"`
	PreviousPeriodOffset           decimal.Decimal `json:"previousPeriodOffset"`
	Subtotal                       decimal.Decimal `json:"subtotal"`
	CurrentPeriodTaxPayable        decimal.Decimal `json:"currentPeriodTaxPayable"`
	CurrentPeriodFilingOffset      decimal.Decimal `json:"currentPeriodFilingOffset"`
	RefundCeiling                  decimal.Decimal `json:"refundCeiling"`
	CurrentPeriodRefundableTax     decimal.Decimal `json:"currentPeriodRefundableTax"`
	CurrentPeriodAccumulatedOffset decimal.Decimal `json:"currentPeriodAccumulatedOffset"`
}

// TaxReportBasicInfo identifies the filer and the filing period.
type TaxReportBasicInfo struct {
	UniformNumber   string `json:"uniformNumber"`
	BusinessName    string `json:"businessName"`
	PersonInCharge  string `json:"personInCharge"`
	TaxSerialNo     string `json:"taxSerialNo"`
	BusinessAddress string `json:"businessAddress"`
	CurrentYear     int    `json:"currentYear"`
	CurrentPeriod   string `json:"currentPeriod"`
}

// TaxReport401 is the bimonthly business tax return.
type TaxReport401 struct {
	BookID          int64              `json:"bookID"`
	Period          PeriodWindow       `json:"period"`
	BasicInfo       TaxReportBasicInfo `json:"basicInfo"`
	Sales           SalesSection       `json:"sales"`
	Purchases       PurchasesSection   `json:"purchases"`
	Imports         ImportsSection     `json:"imports"`
	TaxCalculation  TaxCalculation     `json:"taxCalculation"`
	SkippedInvoices int                `json:"skippedInvoices"`
}
