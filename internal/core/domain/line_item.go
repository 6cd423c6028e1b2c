package domain

import "github.com/shopspring/decimal"

// ClosingVoucherID is carried by pseudo line items synthesised when closing a period for display.
const ClosingVoucherID int64 = 0

// LineItem is a single ledger entry posted against one account.
type LineItem struct {
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Amount      decimal.Decimal `json:"amount"` // Always non-negative
	Debit       bool            `json:"debit"`
	VoucherID   int64           `json:"voucherID"`
}

// IsClosingEntry reports whether the item was synthesised by the period closer.
func (l LineItem) IsClosingEntry() bool {
	return l.VoucherID == ClosingVoucherID
}
