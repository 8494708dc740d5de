package ledger_test

import (
	"github.com/envelope-zero/questbook/pkg/ledger"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAddEnvelope() {
	e := ledger.AddEnvelope(suite.state, models.EnvelopeCreate{
		Name:          "  Travel ",
		MonthlyBudget: decimal.NewFromInt(250),
	})

	suite.Assert().Equal("Travel", e.Name)
	suite.assertDecimal(250, e.Balance)
	suite.Assert().NotNil(suite.state.Envelope(e.ID))
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeFirstFunding() {
	e := suite.createTestEnvelope(0, true)
	budget := decimal.NewFromInt(300)

	suite.Assert().True(ledger.UpdateEnvelope(suite.state, e.ID, models.EnvelopeUpdate{MonthlyBudget: &budget}))
	suite.assertDecimal(300, suite.balance(e.ID))
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeBudgetKeepsBalance() {
	e := suite.createTestEnvelope(200, true)
	ledger.AllocateEnvelope(suite.state, e.ID, decimal.NewFromInt(-50))

	budget := decimal.NewFromInt(500)
	name := "Renamed"
	ledger.UpdateEnvelope(suite.state, e.ID, models.EnvelopeUpdate{MonthlyBudget: &budget, Name: &name})

	suite.assertDecimal(150, suite.balance(e.ID))
	suite.Assert().Equal("Renamed", suite.state.Envelope(e.ID).Name)
	suite.Assert().True(budget.Equal(suite.state.Envelope(e.ID).MonthlyBudget))
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeUnknown() {
	name := "x"
	suite.Assert().False(ledger.UpdateEnvelope(suite.state, "unknown", models.EnvelopeUpdate{Name: &name}))
}

func (suite *TestSuiteStandard) TestAllocateEnvelope() {
	e := suite.createTestEnvelope(100, true)

	suite.Assert().True(ledger.AllocateEnvelope(suite.state, e.ID, decimal.NewFromInt(25)))
	suite.assertDecimal(125, suite.balance(e.ID))

	ledger.AllocateEnvelope(suite.state, e.ID, decimal.NewFromInt(-500))
	suite.assertDecimal(0, suite.balance(e.ID))

	suite.Assert().False(ledger.AllocateEnvelope(suite.state, "unknown", decimal.NewFromInt(1)))
}

func (suite *TestSuiteStandard) TestAllocateEnvelopeNoRewards() {
	e := suite.createTestEnvelope(100, true)
	before := suite.state.Game.Clone()

	ledger.AllocateEnvelope(suite.state, e.ID, decimal.NewFromInt(25))

	suite.Assert().Equal(before, suite.state.Game)
}

func (suite *TestSuiteStandard) TestDeleteEnvelopeKeepsTransactions() {
	e := suite.createTestEnvelope(100, true)
	ledger.AddTransaction(suite.state, models.Transaction{Type: models.Expense, Amount: decimal.NewFromInt(10), EnvelopeID: e.ID}, suite.now)

	suite.Assert().True(ledger.DeleteEnvelope(suite.state, e.ID))
	suite.Assert().False(ledger.DeleteEnvelope(suite.state, e.ID))

	suite.Assert().Nil(suite.state.Envelope(e.ID))
	suite.Require().Len(suite.state.Transactions, 1)
	suite.Assert().Equal(e.ID, suite.state.Transactions[0].EnvelopeID)
}
