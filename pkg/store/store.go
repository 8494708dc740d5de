// Package store holds a budget and is the only way to change it.
//
// Every action locks the store, applies its mutation to the budget state,
// queues follow-up events and hands the new state to the saver. Queued
// events are processed before the next action or read, always on the
// current state.
package store

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/ledger"
	"github.com/envelope-zero/questbook/pkg/metrics"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/envelope-zero/questbook/pkg/persistence"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Event is a follow-up task queued by an action.
type Event int

const (
	// EventReconcileAchievements recomputes the achievement quests from the
	// lifetime counters.
	EventReconcileAchievements Event = iota + 1
)

func (e Event) String() string {
	switch e {
	case EventReconcileAchievements:
		return "reconcile_achievements"
	}
	return "unknown"
}

// Saver persists states. Save must not keep a reference to the state.
type Saver interface {
	Save(s *models.BudgetState)
}

// Store wraps one budget state.
type Store struct {
	mu      sync.Mutex
	state   *models.BudgetState
	events  []Event
	clock   func() time.Time
	rand    *rand.Rand
	saver   Saver
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the source of the current time.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithRand sets the random source daily quests are drawn from.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rand = r }
}

// WithSaver sets where the state is saved to after every change.
func WithSaver(saver Saver) Option {
	return func(s *Store) { s.saver = saver }
}

// WithMetrics sets the metrics actions are recorded in.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithLogger sets the logger of the store.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.log = logger }
}

// New returns a store for state. A nil state is replaced by a freshly
// seeded one.
func New(state *models.BudgetState, opts ...Option) *Store {
	s := &Store{
		clock: time.Now,
		log:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if state == nil {
		state = ledger.NewState(s.clock(), s.rand)
	}
	s.state = state

	return s
}

// Open loads the state stored in backend and returns a store for it.
// A backend without a document starts with a freshly seeded state.
func Open(ctx context.Context, backend persistence.Backend, opts ...Option) (*Store, error) {
	s := New(&models.BudgetState{}, opts...)

	state, version, err := persistence.Load(ctx, backend, s.clock())
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		s.log.Info().Msg("no stored budget found, starting with a new one")
		state = ledger.NewState(s.clock(), s.rand)
	case err != nil:
		return nil, err
	case version < persistence.CurrentVersion:
		s.log.Info().Int("from", version).Int("to", persistence.CurrentVersion).Msg("migrated stored budget")
	}

	s.state = state
	return s, nil
}

// do runs mutate under the lock after processing pending events. When
// mutate reports a change, the follow-up events are queued and the state
// is saved.
func (s *Store) do(action string, mutate func(state *models.BudgetState, now time.Time) bool, follow ...Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	before := progressOf(&s.state.Game)

	changed := s.drain()
	if mutate(s.state, s.clock()) {
		changed = true
		s.events = append(s.events, follow...)
		s.log.Debug().Str("action", action).Int("pending", len(s.events)).Msg("applied action")
	}

	if changed {
		s.commit(before)
	}
	s.metrics.Action(action, start)
}

// read runs query under the lock after processing pending events.
func (s *Store) read(query func(state *models.BudgetState, now time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := progressOf(&s.state.Game)
	if s.drain() {
		s.commit(before)
	}

	query(s.state, s.clock())
}

// drain processes all queued events and reports whether the state changed.
func (s *Store) drain() bool {
	changed := false

	for len(s.events) > 0 {
		event := s.events[0]
		s.events = s.events[1:]

		switch event {
		case EventReconcileAchievements:
			for _, q := range gamification.UpdateAchievementQuests(&s.state.Game) {
				s.log.Info().Str("quest", q.ID).Msg("achievement completed")
				changed = true
			}
		default:
			s.log.Warn().Stringer("event", event).Msg("ignoring unknown event")
		}
	}

	return changed
}

// commit records the progress made since before and saves the state.
func (s *Store) commit(before progress) {
	after := progressOf(&s.state.Game)
	s.metrics.Progress(
		after.xp-before.xp,
		after.coins-before.coins,
		after.badges-before.badges,
		after.quests-before.quests,
	)

	if s.saver != nil {
		s.saver.Save(s.state)
	}
}

type progress struct {
	xp, coins, badges, quests int
}

func progressOf(g *models.Gamification) progress {
	p := progress{xp: g.TotalXPEarned, coins: g.TotalCoinsEarned, quests: g.QuestsCompleted}
	for _, b := range g.Badges {
		if b.Unlocked() {
			p.badges++
		}
	}
	return p
}

// Pending returns the number of queued events.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Flush processes all queued events.
func (s *Store) Flush() {
	s.read(func(*models.BudgetState, time.Time) {})
}

// State returns a copy of the current state.
func (s *Store) State() *models.BudgetState {
	var c *models.BudgetState
	s.read(func(state *models.BudgetState, _ time.Time) { c = state.Clone() })
	return c
}

// SafeToSpend returns the money that can be spent without touching bills
// due in the coming days.
func (s *Store) SafeToSpend() decimal.Decimal {
	var sts decimal.Decimal
	s.read(func(state *models.BudgetState, now time.Time) { sts = ledger.SafeToSpend(state, now) })
	return sts
}

// TotalMonthlyBudget returns the monthly income of all enabled income sources.
func (s *Store) TotalMonthlyBudget() decimal.Decimal {
	var total decimal.Decimal
	s.read(func(state *models.BudgetState, _ time.Time) { total = ledger.TotalMonthlyBudget(state) })
	return total
}
