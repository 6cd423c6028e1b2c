package accounting

import (
	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemIndex groups line items by account code.
type LineItemIndex map[string][]domain.LineItem

// IndexLineItems groups line items by the code of the account they post to.
func IndexLineItems(items []domain.LineItem) LineItemIndex {
	idx := make(LineItemIndex)
	for _, item := range items {
		idx[item.AccountCode] = append(idx[item.AccountCode], item)
	}
	return idx
}

// UpdateAccountAmounts returns a new forest whose amounts are rolled up from the line items.
// A node's amount is its own signed line items plus its children's amounts; a child of the
// opposite nature (a contra account) is subtracted. Composite rules run afterwards in order.
// The input forest is not modified.
func UpdateAccountAmounts(forest []domain.AccountNode, index LineItemIndex, rules []domain.CompositeRule) []domain.AccountNode {
	out := make([]domain.AccountNode, len(forest))
	for i, root := range forest {
		out[i] = rollup(root, index)
	}
	return ApplyCompositeRules(out, rules)
}

func rollup(node domain.AccountNode, index LineItemIndex) domain.AccountNode {
	out := node
	out.Amount = NetAmount(index[node.Code], node.DebitNature)
	out.Children = make([]domain.AccountNode, len(node.Children))
	for i, child := range node.Children {
		updated := rollup(child, index)
		out.Children[i] = updated
		out.Amount = out.Amount.Add(ContributionTo(node, updated))
	}
	return out
}

// ContributionTo is the amount a child adds to its parent under the parent's nature.
func ContributionTo(parent, child domain.AccountNode) decimal.Decimal {
	if parent.DebitNature == child.DebitNature {
		return child.Amount
	}
	return child.Amount.Neg()
}

// ApplyCompositeRules sets every composite node to the signed sum of its named totals.
// Rules are applied in order so a rule may read the result of an earlier one.
// Terms whose code is absent from the forest contribute zero.
func ApplyCompositeRules(forest []domain.AccountNode, rules []domain.CompositeRule) []domain.AccountNode {
	out := forest
	for _, rule := range rules {
		amount := decimal.Zero
		for _, term := range rule.Terms {
			amount = amount.Add(domain.AmountOf(out, term.Code.String()).Mul(decimal.NewFromInt(int64(term.Sign))))
		}
		out = setAmount(out, rule.Code.String(), amount)
	}
	return out
}

func setAmount(forest []domain.AccountNode, code string, amount decimal.Decimal) []domain.AccountNode {
	out := make([]domain.AccountNode, len(forest))
	for i, node := range forest {
		if node.Code == code {
			node.Amount = amount
			out[i] = node
			continue
		}
		if len(node.Children) > 0 {
			node.Children = setAmount(node.Children, code, amount)
		}
		out[i] = node
	}
	return out
}
