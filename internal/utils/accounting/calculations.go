package accounting

import (
	"fmt"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the sign convention of an account's nature to a line item.
// DEBIT to a debit-natured account -> Positive (+)
// CREDIT to a debit-natured account -> Negative (-)
// and the reverse for credit-natured accounts.
func SignedAmount(item domain.LineItem, debitNature bool) decimal.Decimal {
	if item.Debit == debitNature {
		return item.Amount
	}
	return item.Amount.Neg()
}

// NetAmount sums line items under the sign convention of one account.
func NetAmount(items []domain.LineItem, debitNature bool) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(SignedAmount(item, debitNature))
	}
	return total
}

// ValidateLineItems checks that every line item carries a non-negative amount and an account code.
func ValidateLineItems(items []domain.LineItem) error {
	for i, item := range items {
		if item.Amount.IsNegative() {
			return fmt.Errorf("line item %d of voucher %d has negative amount %s", i, item.VoucherID, item.Amount.String())
		}
		if item.AccountCode == "" {
			return fmt.Errorf("line item %d of voucher %d has no account code", i, item.VoucherID)
		}
	}
	return nil
}

// PseudoLineItem builds a closing entry that posts a signed amount to a credit-natured equity account.
// Positive amounts are credits, negative amounts debits of the absolute value.
func PseudoLineItem(account domain.Account, amount decimal.Decimal) domain.LineItem {
	return domain.LineItem{
		AccountID:   account.ID,
		AccountCode: account.Code,
		Amount:      amount.Abs(),
		Debit:       amount.IsNegative(),
		VoucherID:   domain.ClosingVoucherID,
	}
}
