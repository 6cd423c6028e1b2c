package domain

import "github.com/shopspring/decimal"

// InvoiceType is the tax-authority format code of an invoice (certificate).
type InvoiceType string

// Output (sales) formats.
const (
	InvoiceTypeOutput31 InvoiceType = "OUTPUT_31" // Triplicate / electronic computer
	InvoiceTypeOutput32 InvoiceType = "OUTPUT_32" // Duplicate / duplicate cash register
	InvoiceTypeOutput33 InvoiceType = "OUTPUT_33" // Triplicate sales returns and allowances
	InvoiceTypeOutput34 InvoiceType = "OUTPUT_34" // Duplicate sales returns and allowances
	InvoiceTypeOutput35 InvoiceType = "OUTPUT_35" // Triplicate cash register / e-invoice
	InvoiceTypeOutput36 InvoiceType = "OUTPUT_36" // Exempt from uniform invoice
)

// Input (purchase) formats.
const (
	InvoiceTypeInput21 InvoiceType = "INPUT_21" // Triplicate / electronic computer
	InvoiceTypeInput22 InvoiceType = "INPUT_22" // Duplicate cash register / other certificates with tax
	InvoiceTypeInput23 InvoiceType = "INPUT_23" // Triplicate purchase returns and allowances
	InvoiceTypeInput24 InvoiceType = "INPUT_24" // Duplicate purchase returns and allowances
	InvoiceTypeInput25 InvoiceType = "INPUT_25" // Triplicate cash register / e-invoice
	InvoiceTypeInput26 InvoiceType = "INPUT_26" // Summary-filed triplicate
	InvoiceTypeInput27 InvoiceType = "INPUT_27" // Summary-filed duplicate
	InvoiceTypeInput28 InvoiceType = "INPUT_28" // Customs business tax payment certificate
	InvoiceTypeInput29 InvoiceType = "INPUT_29" // Customs refund of overpaid business tax
)

// Import formats.
const (
	InvoiceTypeImportExempt   InvoiceType = "INPUT_IMPORT_EXEMPT"
	InvoiceTypeForeignService InvoiceType = "INPUT_FOREIGN_SERVICE"
)

// TaxType classifies the VAT treatment of an invoice.
type TaxType string

const (
	TaxTypeTaxable TaxType = "TAXABLE"
	TaxTypeZeroTax TaxType = "ZERO_TAX"
	TaxTypeTaxFree TaxType = "TAX_FREE"
)

// Invoice is a tax certificate recorded against a book.
type Invoice struct {
	ID             int64           `json:"id"`
	BookID         int64           `json:"bookID"`
	No             string          `json:"no"`
	Type           InvoiceType     `json:"type"`
	TaxType        TaxType         `json:"taxType"`
	Deductible     bool            `json:"deductible"`
	PriceBeforeTax decimal.Decimal `json:"priceBeforeTax"`
	TaxPrice       decimal.Decimal `json:"taxPrice"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	DateSecond     int64           `json:"dateSecond"`
}

// Voucher is the journal entry an invoice was booked with.
type Voucher struct {
	ID         int64      `json:"id"`
	No         string     `json:"no"`
	DateSecond int64      `json:"dateSecond"`
	LineItems  []LineItem `json:"lineItems"`
}

// InvoiceVoucher joins an invoice with the voucher that booked it.
type InvoiceVoucher struct {
	Invoice Invoice `json:"invoice"`
	Voucher Voucher `json:"voucher"`
}
