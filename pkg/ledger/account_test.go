package ledger_test

import (
	"github.com/envelope-zero/questbook/pkg/ledger"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func (suite *TestSuiteStandard) TestAccounts() {
	a := ledger.AddAccount(suite.state, models.AccountCreate{Name: " Wallet "})
	suite.Assert().Equal("Wallet", a.Name)
	suite.Assert().Equal(models.AccountChecking, a.Kind)
	suite.Assert().True(a.Balance.IsZero())

	ledger.AddTransaction(suite.state, models.Transaction{Type: models.Income, Amount: decimal.NewFromInt(40), AccountID: a.ID}, suite.now)
	suite.assertDecimal(40, suite.state.Account(a.ID).Balance)

	kind := models.AccountCash
	suite.Assert().True(ledger.UpdateAccount(suite.state, a.ID, models.AccountUpdate{Kind: &kind}))
	suite.Assert().Equal(models.AccountCash, suite.state.Account(a.ID).Kind)

	suite.Assert().True(ledger.DeleteAccount(suite.state, a.ID))
	suite.Assert().Nil(suite.state.Account(a.ID))
	suite.Assert().Len(suite.state.Transactions, 1)
	suite.Assert().False(ledger.UpdateAccount(suite.state, a.ID, models.AccountUpdate{Kind: &kind}))
}

func (suite *TestSuiteStandard) TestUpdatePrefs() {
	currency := "EUR"
	locale := language.German

	ledger.UpdatePrefs(suite.state, models.PrefsUpdate{
		Currency: &currency,
		Locale:   &locale,
		Sound:    &models.SoundSettings{Enabled: false, Volume: 1.7},
	})

	suite.Assert().Equal("EUR", suite.state.Prefs.Currency)
	suite.Assert().Equal(language.German, suite.state.Prefs.Locale)
	suite.Assert().Equal("system", suite.state.Prefs.Theme)
	suite.Require().NotNil(suite.state.Prefs.Sound)
	suite.Assert().False(suite.state.Prefs.Sound.Enabled)
	suite.Assert().Equal(1.0, suite.state.Prefs.Sound.Volume)
}
