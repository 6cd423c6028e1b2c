package accounting

import (
	"sort"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// chartIndex provides lookups over a flat chart of accounts.
type chartIndex struct {
	byCode   map[string]domain.Account
	children map[string][]domain.Account
}

func newChartIndex(chart []domain.Account) chartIndex {
	idx := chartIndex{
		byCode:   make(map[string]domain.Account, len(chart)),
		children: make(map[string][]domain.Account),
	}
	for _, a := range chart {
		if _, dup := idx.byCode[a.Code]; dup {
			continue
		}
		idx.byCode[a.Code] = a
		if !a.IsRoot() {
			idx.children[a.ParentCode] = append(idx.children[a.ParentCode], a)
		}
	}
	for parent := range idx.children {
		kids := idx.children[parent]
		sort.SliceStable(kids, func(i, j int) bool { return kids[i].Code < kids[j].Code })
	}
	return idx
}

// BuildForest turns a flat chart of accounts into the ordered forest of one report.
// Roots follow the configured order of the report, children are sorted by code.
// Composite roots missing from the chart are synthesised from their rule.
func BuildForest(chart []domain.Account, reportType domain.ReportType) []domain.AccountNode {
	forest := []domain.AccountNode{}
	if len(chart) == 0 {
		return forest
	}

	idx := newChartIndex(chart)
	composites := make(map[domain.SpecialAccountCode]domain.CompositeRule)
	for _, rule := range domain.CompositeRules(reportType) {
		composites[rule.Code] = rule
	}

	for _, rootCode := range domain.ReportRoots(reportType) {
		if account, ok := idx.byCode[rootCode.String()]; ok {
			forest = append(forest, idx.buildNode(account, map[string]bool{}))
			continue
		}
		if rule, ok := composites[rootCode]; ok {
			forest = append(forest, domain.AccountNode{
				Code:        rule.Code.String(),
				Name:        rule.Name,
				DebitNature: rule.DebitNature,
				Amount:      decimal.Zero,
				Children:    []domain.AccountNode{},
			})
		}
	}
	return forest
}

// visited guards against cycles in a malformed chart.
func (idx chartIndex) buildNode(account domain.Account, visited map[string]bool) domain.AccountNode {
	visited[account.Code] = true
	node := domain.AccountNode{
		Code:        account.Code,
		Name:        account.Name,
		DebitNature: account.DebitNature,
		Amount:      decimal.Zero,
		ParentCode:  account.ParentCode,
		Children:    []domain.AccountNode{},
	}
	for _, child := range idx.children[account.Code] {
		if visited[child.Code] {
			continue
		}
		node.Children = append(node.Children, idx.buildNode(child, visited))
	}
	return node
}

// ResolveAccount finds an account by code in a flat chart.
func ResolveAccount(chart []domain.Account, code string) (domain.Account, bool) {
	for _, a := range chart {
		if a.Code == code {
			return a, true
		}
	}
	return domain.Account{}, false
}

// Flatten lists every node of the forest in depth-first order.
func Flatten(forest []domain.AccountNode) []domain.AccountNode {
	var out []domain.AccountNode
	var walk func(n domain.AccountNode)
	walk = func(n domain.AccountNode) {
		out = append(out, n)
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range forest {
		walk(root)
	}
	return out
}
