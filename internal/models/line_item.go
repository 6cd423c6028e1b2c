package models

import "github.com/shopspring/decimal"

// LineItem represents a posted voucher line joined with its account code.
type LineItem struct {
	ID          int64           `db:"id"`
	VoucherID   int64           `db:"voucher_id"`
	AccountID   int64           `db:"account_id"`
	AccountCode string          `db:"account_code"`
	Amount      decimal.Decimal `db:"amount"`
	Debit       bool            `db:"debit"`
}
