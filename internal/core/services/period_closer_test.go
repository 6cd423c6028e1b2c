package services_test

import (
	"context"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *GeneratorTestSuite) TestClosingLineItems() {
	suite.givenLedger(fullChart(), ledger())

	items, err := suite.closer.ClosingLineItems(context.Background(), testBookID, year2024)

	suite.Require().NoError(err)
	suite.Require().Len(items, 3)

	suite.Equal("3353", items[0].AccountCode)
	suite.Equal(int64(9), items[0].AccountID)
	suite.True(dec("400").Equal(items[0].Amount))
	suite.False(items[0].Debit)

	suite.Equal("3351", items[1].AccountCode)
	suite.True(dec("300").Equal(items[1].Amount))
	suite.False(items[1].Debit)

	suite.Equal("3490", items[2].AccountCode)
	suite.True(dec("50").Equal(items[2].Amount))

	for _, item := range items {
		suite.True(item.IsClosingEntry())
	}
}

func (suite *GeneratorTestSuite) TestClosingLineItems_NetLossIsDebit() {
	postings := []datedLineItem{
		posting(may01of2024, "6000", "100", true),
		posting(may01of2024, "1100", "100", false),
	}
	suite.givenLedger(fullChart(), postings)

	items, err := suite.closer.ClosingLineItems(context.Background(), testBookID, year2024)

	suite.Require().NoError(err)
	suite.True(dec("100").Equal(items[0].Amount))
	suite.True(items[0].Debit)
	suite.True(items[1].Amount.IsZero())
	suite.True(items[2].Amount.IsZero())
}

func (suite *GeneratorTestSuite) TestClosingLineItems_PlaceholderForMissingAccount() {
	suite.givenLedger(chartWithout("3353"), ledger())

	items, err := suite.closer.ClosingLineItems(context.Background(), testBookID, year2024)

	suite.Require().NoError(err)
	suite.Equal(domain.PlaceholderAccountID, items[0].AccountID)
	suite.Equal("3353", items[0].AccountCode)
	suite.True(dec("400").Equal(items[0].Amount))
	suite.False(items[0].Debit)
	suite.Equal(int64(8), items[1].AccountID)
}

func (suite *GeneratorTestSuite) TestClosingLineItems_NoHistoryBeforeTimeZero() {
	window := domain.PeriodWindow{StartSecond: 0, EndSecond: year2024.EndSecond}
	suite.givenLedger(fullChart(), ledger())

	items, err := suite.closer.ClosingLineItems(context.Background(), testBookID, window)

	suite.Require().NoError(err)
	suite.ledgerRepo.AssertNumberOfCalls(suite.T(), "ListLineItems", 1)
	suite.ledgerRepo.AssertCalled(suite.T(), "ListLineItems", mock.Anything, testBookID, window)
	// Both years of trading fall inside the window.
	suite.True(dec("700").Equal(items[0].Amount))
	suite.True(items[1].Amount.IsZero())
	suite.True(dec("50").Equal(items[2].Amount))
}

func (suite *GeneratorTestSuite) TestClosingLineItems_BalanceSheetPicksUpPlaceholder() {
	suite.givenLedger(chartWithout("3353"), ledger())

	report, err := suite.balanceSheets.Generate(context.Background(), testBookID, year2024)

	suite.Require().NoError(err)
	// The current net income has nowhere to land, so equity falls short by it.
	suite.requireAmounts(report.Content, "3XXX", "350", "0")
	suite.requireAmounts(report.Content, "1XXX", "1750", "1300")
}
