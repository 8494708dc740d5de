package store_test

import (
	"context"
	"time"

	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/metrics"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/envelope-zero/questbook/pkg/persistence"
	"github.com/envelope-zero/questbook/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOpenEmptyBackend() {
	s, err := store.Open(context.Background(), &persistence.Memory{}, store.WithClock(func() time.Time { return suite.now }))
	suite.Require().Nil(err)

	state := s.State()
	suite.Assert().Len(state.Envelopes, 4)
	suite.Assert().NotEmpty(state.Game.Quests)
}

func (suite *TestSuiteStandard) TestOpenCorruptBackend() {
	backend := &persistence.Memory{}
	suite.Require().Nil(backend.Write(context.Background(), []byte(`{"version": 3, "state": "garbage"}`)))

	_, err := store.Open(context.Background(), backend)
	suite.Assert().ErrorIs(err, persistence.ErrCorruptDocument)
}

func (suite *TestSuiteStandard) TestOpenWithAutoSaver() {
	ctx := context.Background()
	backend := &persistence.Memory{}
	saver := persistence.NewAutoSaver(backend, zerolog.Nop(), nil)

	s, err := store.Open(ctx, backend, store.WithSaver(saver), store.WithClock(func() time.Time { return suite.now }))
	suite.Require().Nil(err)

	created := s.AddTransaction(expense(25, models.FunEnvelopeID))
	s.Flush()
	saver.Close()

	reopened, err := store.Open(ctx, backend, store.WithClock(func() time.Time { return suite.now }))
	suite.Require().Nil(err)

	state := reopened.State()
	suite.Require().Len(state.Transactions, 1)
	suite.Assert().Equal(created.ID, state.Transactions[0].ID)
	suite.assertDecimal(125, state.Envelope(models.FunEnvelopeID).Balance)
	suite.Assert().Equal(1, state.Game.LifetimeExpenses)
}

func (suite *TestSuiteStandard) TestMetrics() {
	m, err := metrics.New(prometheus.NewRegistry())
	suite.Require().Nil(err)
	suite.store = suite.newStore(nil, store.WithMetrics(m))

	suite.store.AddTransaction(expense(5, models.FunEnvelopeID))
	suite.store.AddTransaction(expense(5, models.FunEnvelopeID))
	suite.store.AllocateEnvelope(models.FunEnvelopeID, decimal.NewFromInt(10))
	suite.store.CheckAndAwardBadges()

	suite.Assert().Equal(2.0, testutil.ToFloat64(m.Actions.WithLabelValues("add_transaction")))
	suite.Assert().Equal(1.0, testutil.ToFloat64(m.Actions.WithLabelValues("allocate_envelope")))
	suite.Assert().GreaterOrEqual(testutil.ToFloat64(m.XPAwarded), 20.0)
	suite.Assert().Equal(1.0, testutil.ToFloat64(m.BadgesUnlocked))
	suite.Assert().GreaterOrEqual(testutil.ToFloat64(m.CoinsAwarded), float64(gamification.BadgeCoinBonus))
}
