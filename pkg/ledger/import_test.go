package ledger_test

import (
	"time"

	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/importer"
	"github.com/envelope-zero/questbook/pkg/ledger"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestImportTransactions() {
	suite.withoutDailyQuests()
	ledger.AddTransaction(suite.state, models.Transaction{Type: models.Expense, Amount: decimal.NewFromInt(5)}, suite.now)
	envelopes := suite.state.Clone().Envelopes
	xp := suite.state.Game.XP

	rows := []importer.Row{
		{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(20), Type: models.Expense, Merchant: "Corner Shop"},
		{Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(900), Type: models.Income, Merchant: "Employer"},
	}

	imported := ledger.ImportTransactions(suite.state, rows, suite.now)

	suite.Require().Len(imported, 2)
	suite.Require().Len(suite.state.Transactions, 3)
	suite.Assert().Equal(imported[0].ID, suite.state.Transactions[0].ID)
	suite.Assert().Equal(imported[1].ID, suite.state.Transactions[1].ID)
	suite.Assert().True(imported[0].HasTag(models.TagImported))
	suite.Assert().NotEmpty(imported[0].ImportHash)

	suite.Assert().Equal(envelopes, suite.state.Envelopes, "imports do not move balances")
	suite.Assert().Equal(xp+gamification.XPImportBonus, suite.state.Game.XP)
}

func (suite *TestSuiteStandard) TestImportTransactionsEmpty() {
	before := suite.state.Clone()

	suite.Assert().Empty(ledger.ImportTransactions(suite.state, nil, suite.now))
	suite.Assert().Equal(before, suite.state)
}

func (suite *TestSuiteStandard) TestImportTransactionsSkipsDuplicates() {
	first := importer.Row{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(20), Type: models.Expense, Merchant: "Corner Shop"}
	second := importer.Row{Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(8), Type: models.Expense, Merchant: "Bakery"}

	suite.Require().Len(ledger.ImportTransactions(suite.state, []importer.Row{first}, suite.now), 1)
	xp := suite.state.Game.XP

	imported := ledger.ImportTransactions(suite.state, []importer.Row{first, second}, suite.now)
	suite.Require().Len(imported, 1)
	suite.Assert().Equal("Bakery", imported[0].Merchant)
	suite.Assert().Len(suite.state.Transactions, 2)
	suite.Assert().Equal(xp+gamification.XPImportBonus, suite.state.Game.XP)

	// A batch of known rows changes nothing
	before := suite.state.Clone()
	suite.Assert().Empty(ledger.ImportTransactions(suite.state, []importer.Row{first, second}, suite.now))
	suite.Assert().Equal(before, suite.state)
}

func (suite *TestSuiteStandard) TestImportTransactionsDefaultsDate() {
	imported := ledger.ImportTransactions(suite.state, []importer.Row{{Amount: decimal.NewFromInt(1), Type: models.Expense}}, suite.now)

	suite.Require().Len(imported, 1)
	suite.Assert().Equal(suite.now, imported[0].Date)
	suite.Assert().Equal(importer.Hash(imported[0]), imported[0].ImportHash)
}

func (suite *TestSuiteStandard) TestImportTransactionsAppliesRules() {
	ledger.AddImportRule(suite.state, models.ImportRule{Priority: 2, Match: "*", EnvelopeID: models.FunEnvelopeID})
	rule := ledger.AddImportRule(suite.state, models.ImportRule{Priority: 1, Match: "Corner*", EnvelopeID: models.GroceryEnvelopeID})

	rows := []importer.Row{
		{Amount: decimal.NewFromInt(20), Type: models.Expense, Merchant: "Corner Shop"},
		{Amount: decimal.NewFromInt(30), Type: models.Expense, Merchant: "Cinema"},
		{Amount: decimal.NewFromInt(40), Type: models.Expense, Merchant: "Corner Shop", EnvelopeID: models.BillsEnvelopeID},
	}

	imported := ledger.ImportTransactions(suite.state, rows, suite.now)

	suite.Assert().Equal(models.GroceryEnvelopeID, imported[0].EnvelopeID)
	suite.Assert().Equal(models.FunEnvelopeID, imported[1].EnvelopeID)
	suite.Assert().Equal(models.BillsEnvelopeID, imported[2].EnvelopeID)

	suite.Assert().True(ledger.DeleteImportRule(suite.state, rule.ID))
	suite.Assert().Len(suite.state.ImportRules, 1)
}
