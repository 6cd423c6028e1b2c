package domain_test

import (
	"testing"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriodWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   int64
		end     int64
		wantErr bool
	}{
		{name: "ordered window", start: 100, end: 200},
		{name: "single second", start: 100, end: 100},
		{name: "from time zero", start: 0, end: 200},
		{name: "negative start", start: -1, end: 200, wantErr: true},
		{name: "negative end", start: 0, end: -5, wantErr: true},
		{name: "start after end", start: 300, end: 200, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := domain.NewPeriodWindow(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, w.StartSecond)
			assert.Equal(t, tt.end, w.EndSecond)
		})
	}
}

func TestPeriodWindow_History(t *testing.T) {
	w := domain.PeriodWindow{StartSecond: 1704067200, EndSecond: 1735689599}

	assert.True(t, w.HasHistory())
	assert.Equal(t, int64(1704067199), w.PriorYearEnd())
	assert.Equal(t, domain.PeriodWindow{StartSecond: 0, EndSecond: 1704067199}, w.FromTimeZeroToPriorYearEnd())
	assert.Equal(t, domain.PeriodWindow{StartSecond: 0, EndSecond: 1735689599}, w.FromTimeZeroToEnd())

	fromZero := domain.PeriodWindow{StartSecond: 0, EndSecond: 500}
	assert.False(t, fromZero.HasHistory())
	assert.Equal(t, int64(0), fromZero.PriorYearEnd())
}

func TestPeriodWindow_PreviousYear(t *testing.T) {
	t.Run("shifts both bounds one calendar year", func(t *testing.T) {
		w := domain.PeriodWindow{StartSecond: 1704067200, EndSecond: 1735689599}
		assert.Equal(t, domain.PeriodWindow{StartSecond: 1672531200, EndSecond: 1704067199}, w.PreviousYear())
	})

	t.Run("leap day", func(t *testing.T) {
		// 2024-03-01 -> 2023-03-01
		w := domain.PeriodWindow{StartSecond: 1709251200, EndSecond: 1709251200}
		assert.Equal(t, int64(1677628800), w.PreviousYear().StartSecond)
	})

	t.Run("clamps before the epoch", func(t *testing.T) {
		w := domain.PeriodWindow{StartSecond: 0, EndSecond: 13046400}
		prev := w.PreviousYear()
		assert.Equal(t, int64(0), prev.StartSecond)
		assert.Equal(t, int64(0), prev.EndSecond)
		assert.NoError(t, prev.Validate())
	})
}

func TestAccountNode_CloneIsDeep(t *testing.T) {
	original := domain.AccountNode{
		Code: "1XXX",
		Children: []domain.AccountNode{
			{Code: "1100", ParentCode: "1XXX"},
		},
	}

	clone := original.Clone()
	clone.Children[0].Name = "changed"

	assert.Empty(t, original.Children[0].Name)

	found, ok := original.Find("1100")
	require.True(t, ok)
	assert.Equal(t, "1XXX", found.ParentCode)

	_, ok = original.Find("9999")
	assert.False(t, ok)
}

func TestAmountOf_MissingCodeIsZero(t *testing.T) {
	assert.True(t, domain.AmountOf(nil, "4000").IsZero())
}

func TestReportRootsAndRules_AreCopies(t *testing.T) {
	roots := domain.ReportRoots(domain.ReportTypeBalanceSheet)
	require.Len(t, roots, 4)
	roots[0] = "mutated"
	assert.Equal(t, domain.AssetTotal, domain.ReportRoots(domain.ReportTypeBalanceSheet)[0])

	rules := domain.CompositeRules(domain.ReportTypeIncomeStatement)
	require.Len(t, rules, 5)
	assert.Equal(t, domain.GrossProfit, rules[0].Code)
	assert.Equal(t, domain.ComprehensiveIncome, rules[4].Code)

	assert.Empty(t, domain.CompositeRules(domain.ReportType401))
}
