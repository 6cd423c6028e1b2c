package domain

import (
	"github.com/shopspring/decimal"
)

// PlaceholderAccountID marks an account that was substituted because a special
// account code did not resolve to a chart-of-accounts entry.
const PlaceholderAccountID int64 = -1

// Account represents a chart-of-accounts entry as persisted for a book.
// BookID 0 denotes the shared default chart.
type Account struct {
	ID          int64  `json:"id"`
	BookID      int64  `json:"bookID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	DebitNature bool   `json:"debitNature"`
	ParentCode  string `json:"parentCode"` // Empty for root accounts
	Level       int    `json:"level"`
}

// IsRoot reports whether the account sits at the top of its tree.
func (a Account) IsRoot() bool {
	return a.ParentCode == "" || a.ParentCode == a.Code
}

// IsPlaceholder reports whether the account is a synthetic fallback.
func (a Account) IsPlaceholder() bool {
	return a.ID == PlaceholderAccountID
}

// NewPlaceholderAccount builds the zero-valued stand-in used when a special code is missing from the chart.
func NewPlaceholderAccount(code string) Account {
	return Account{
		ID:          PlaceholderAccountID,
		Code:        code,
		Name:        "Unresolved account " + code,
		DebitNature: false,
	}
}

// AccountNode is one node of an account forest built for a single report.
// Nodes are values: every transformation produces a fresh forest.
type AccountNode struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	DebitNature bool            `json:"debitNature"`
	Amount      decimal.Decimal `json:"amount"`
	ParentCode  string          `json:"parentCode"`
	Children    []AccountNode   `json:"children"`
}

// IsLeaf reports whether the node has no children.
func (n AccountNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Clone returns a deep copy of the node and its subtree.
func (n AccountNode) Clone() AccountNode {
	out := n
	if n.Children != nil {
		out.Children = make([]AccountNode, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Find returns the node with the given code from the subtree rooted at n.
func (n AccountNode) Find(code string) (AccountNode, bool) {
	if n.Code == code {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.Find(code); ok {
			return found, true
		}
	}
	return AccountNode{}, false
}

// FindInForest searches every tree of the forest for the given code.
func FindInForest(forest []AccountNode, code string) (AccountNode, bool) {
	for _, root := range forest {
		if found, ok := root.Find(code); ok {
			return found, true
		}
	}
	return AccountNode{}, false
}

// AmountOf returns the amount of the node with the given code, or zero when the code is absent.
func AmountOf(forest []AccountNode, code string) decimal.Decimal {
	node, ok := FindInForest(forest, code)
	if !ok {
		return decimal.Zero
	}
	return node.Amount
}
