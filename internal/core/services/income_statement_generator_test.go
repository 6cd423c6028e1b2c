package services_test

import (
	"context"

	"github.com/SscSPs/book_reports/internal/apperrors"
)

func (suite *GeneratorTestSuite) TestIncomeStatement_Comparative() {
	suite.givenLedger(fullChart(), ledger())

	report, err := suite.incomeStatements.Generate(context.Background(), testBookID, year2024)

	suite.Require().NoError(err)
	roots := make([]string, 0, len(report.Content))
	for _, root := range report.Content {
		roots = append(roots, root.Code)
	}
	suite.Equal([]string{"4000", "5000", "5900", "6000", "6900", "7900", "8200", "8300", "8500"}, roots)

	suite.requireAmounts(report.Content, "4000", "800", "500")
	suite.requireAmounts(report.Content, "5000", "300", "200")
	suite.requireAmounts(report.Content, "5900", "500", "300")
	suite.requireAmounts(report.Content, "6900", "400", "300")
	suite.requireAmounts(report.Content, "8200", "400", "300")
	suite.requireAmounts(report.Content, "8300", "50", "0")
	suite.requireAmounts(report.Content, "8500", "450", "300")

	revenue, _ := findItem(report.Content, "4000")
	suite.Equal(int64(100), revenue.CurPeriodPercentage)
	suite.Equal(int64(100), revenue.PrePeriodPercentage)
	netIncome, _ := findItem(report.Content, "8200")
	suite.Equal(int64(50), netIncome.CurPeriodPercentage)
	suite.Equal(int64(60), netIncome.PrePeriodPercentage)
	oci, _ := findItem(report.Content, "8300")
	suite.Equal(int64(6), oci.CurPeriodPercentage)
}

func (suite *GeneratorTestSuite) TestIncomeStatement_RevenueExpenseRatio() {
	suite.givenLedger(fullChart(), ledger())

	report, err := suite.incomeStatements.Generate(context.Background(), testBookID, year2024)

	suite.Require().NoError(err)
	cur := report.OtherInfo.RevenueAndExpenseRatio.CurPeriod
	suite.True(dec("800").Equal(cur.Revenue))
	suite.True(dec("400").Equal(cur.Expense))
	suite.Equal(int64(50), cur.Ratio)

	pre := report.OtherInfo.RevenueAndExpenseRatio.PrePeriod
	suite.True(dec("500").Equal(pre.Revenue))
	suite.True(dec("200").Equal(pre.Expense))
	suite.Equal(int64(40), pre.Ratio)
}

func (suite *GeneratorTestSuite) TestIncomeStatement_MissingRevenue() {
	suite.givenLedger(chartWithout("4000"), ledger())

	report, err := suite.incomeStatements.Generate(context.Background(), testBookID, year2024)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrMissingTotal)
}

func (suite *GeneratorTestSuite) TestIncomeStatement_NoActivity() {
	suite.givenLedger(fullChart(), nil)

	report, err := suite.incomeStatements.Generate(context.Background(), testBookID, year2024)

	suite.Require().NoError(err)
	for _, item := range report.Content {
		suite.True(item.CurPeriodAmount.IsZero(), item.Code)
		suite.Equal(int64(0), item.CurPeriodPercentage, item.Code)
	}
	suite.Equal(int64(0), report.OtherInfo.RevenueAndExpenseRatio.CurPeriod.Ratio)
}
