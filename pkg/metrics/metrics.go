// Package metrics collects Prometheus metrics about budget activity.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "questbook"

// Metrics holds the collectors of one store.
type Metrics struct {
	Actions         *prometheus.CounterVec
	ActionDuration  *prometheus.HistogramVec
	XPAwarded       prometheus.Counter
	CoinsAwarded    prometheus.Counter
	BadgesUnlocked  prometheus.Counter
	QuestsCompleted prometheus.Counter
	Saves           *prometheus.CounterVec
}

// New returns metrics registered with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Total number of actions applied to the budget",
		}, []string{"action"}),
		ActionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Duration of actions in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"action"}),
		XPAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "xp_awarded_total",
			Help:      "Total XP earned",
		}),
		CoinsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coins_awarded_total",
			Help:      "Total coins earned",
		}),
		BadgesUnlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badges_unlocked_total",
			Help:      "Total number of badges unlocked",
		}),
		QuestsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quests_completed_total",
			Help:      "Total number of quests completed",
		}),
		Saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "Total number of state writes by result",
		}, []string{"result"}),
	}

	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Actions,
		m.ActionDuration,
		m.XPAwarded,
		m.CoinsAwarded,
		m.BadgesUnlocked,
		m.QuestsCompleted,
		m.Saves,
	}
}

// Unregister removes all collectors from reg.
func (m *Metrics) Unregister(reg prometheus.Registerer) bool {
	for _, c := range m.collectors() {
		if ok := reg.Unregister(c); !ok {
			return false
		}
	}
	return true
}

// Action records an applied action and how long it took.
func (m *Metrics) Action(name string, start time.Time) {
	if m == nil {
		return
	}
	m.Actions.WithLabelValues(name).Inc()
	m.ActionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

// Progress records the difference between two gamification snapshots.
func (m *Metrics) Progress(xp, coins, badges, quests int) {
	if m == nil {
		return
	}
	if xp > 0 {
		m.XPAwarded.Add(float64(xp))
	}
	if coins > 0 {
		m.CoinsAwarded.Add(float64(coins))
	}
	if badges > 0 {
		m.BadgesUnlocked.Add(float64(badges))
	}
	if quests > 0 {
		m.QuestsCompleted.Add(float64(quests))
	}
}

// Save records the result of a state write.
func (m *Metrics) Save(err error) {
	if m == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	m.Saves.WithLabelValues(result).Inc()
}
