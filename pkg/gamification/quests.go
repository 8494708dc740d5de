package gamification

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/models"
)

// Daily quests are sampled between these bounds, inclusive.
const (
	MinDailyQuests = 3
	MaxDailyQuests = 4
)

// DailyQuestID returns the ID of the instance of a template for the day now falls on.
func DailyQuestID(templateID string, now time.Time) string {
	return templateID + "-" + types.DayKey(now)
}

// TemplateID returns the template a daily quest was created from.
// The ID of a daily quest changes every day, use this to group quests across days.
func TemplateID(q models.Quest) string {
	if q.Type != models.QuestDaily {
		return q.ID
	}

	// The date suffix is "-YYYY-MM-DD"
	suffix := len("-2006-01-02")
	if len(q.ID) <= suffix || !strings.HasPrefix(q.ID[len(q.ID)-suffix:], "-") {
		return q.ID
	}
	return q.ID[:len(q.ID)-suffix]
}

// GenerateDailyQuests samples a fresh set of distinct daily quests for the
// day now falls on. They expire at the next midnight.
//
// When r is nil, the global random source is used.
func GenerateDailyQuests(r *rand.Rand, now time.Time) []models.Quest {
	count := MinDailyQuests + intN(r, MaxDailyQuests-MinDailyQuests+1)
	order := perm(r, len(DailyTemplates))
	expires := types.NextMidnight(now)

	quests := make([]models.Quest, 0, count)
	for _, i := range order[:min(count, len(order))] {
		t := DailyTemplates[i]
		quests = append(quests, models.Quest{
			ID:         DailyQuestID(t.ID, now),
			Title:      t.Title,
			Type:       models.QuestDaily,
			Category:   t.Category,
			Target:     t.Target,
			XP:         t.XP,
			CoinReward: t.CoinReward,
			ExpiresAt:  models.TimePtr(expires),
		})
	}

	return quests
}

// RefreshDailyQuests replaces all daily quests with a fresh sample once any
// of them has expired. Achievement quests are kept as they are.
//
// While no daily quest has expired, nothing changes. A user without any daily
// quests gets a fresh sample. It reports whether the quests were replaced.
func RefreshDailyQuests(g *models.Gamification, r *rand.Rand, now time.Time) bool {
	daily := 0
	expired := false
	for _, q := range g.Quests {
		if q.Type != models.QuestDaily {
			continue
		}

		daily++
		if q.ExpiresAt == nil || !now.Before(*q.ExpiresAt) {
			expired = true
		}
	}

	if daily > 0 && !expired {
		return false
	}

	kept := make([]models.Quest, 0, len(g.Quests))
	for _, q := range g.Quests {
		if q.Type != models.QuestDaily {
			kept = append(kept, q)
		}
	}

	g.Quests = append(kept, GenerateDailyQuests(r, now)...)
	return true
}

// UpdateQuestProgress moves active daily quests of the category to the
// observed value, clamped at their target. Progress never decreases.
// Quests that reach their target are completed and returned.
func UpdateQuestProgress(g *models.Gamification, category models.QuestCategory, observed int, now time.Time) []models.Quest {
	var completed []models.Quest

	for i := range g.Quests {
		q := &g.Quests[i]
		if q.Type != models.QuestDaily || q.Category != category || q.Done {
			continue
		}

		if q.ExpiresAt != nil && !now.Before(*q.ExpiresAt) {
			continue
		}

		progress := min(observed, q.Target)
		if progress <= q.Progress {
			continue
		}

		q.Progress = progress
		if q.Progress >= q.Target {
			complete(g, i)
			completed = append(completed, g.Quests[i])
		}
	}

	return completed
}

// CompleteQuest completes the quest with the given ID and grants its reward.
// Unknown and already completed quests are ignored. It reports whether the
// quest was completed by this call.
func CompleteQuest(g *models.Gamification, id string) bool {
	for i := range g.Quests {
		if g.Quests[i].ID != id {
			continue
		}

		if g.Quests[i].Done {
			return false
		}

		complete(g, i)
		return true
	}

	return false
}

// UpdateAchievementQuests recomputes the progress of every open achievement
// quest from its lifetime counter and completes those that reached their
// target. Completed quests are never recomputed again.
//
// Rewards can advance other counters (level, coins), so the pass is repeated
// until no further quest completes.
func UpdateAchievementQuests(g *models.Gamification) []models.Quest {
	var completed []models.Quest

	for {
		progressed := false

		for i := range g.Quests {
			q := &g.Quests[i]
			if q.Type != models.QuestAchievement || q.Done {
				continue
			}

			counter, ok := AchievementCounter(q.Category)
			if !ok {
				continue
			}

			value, _ := CounterValue(g, counter)
			q.Progress = max(0, min(value, q.Target))

			if q.Progress >= q.Target {
				complete(g, i)
				completed = append(completed, g.Quests[i])
				progressed = true
			}
		}

		if !progressed {
			return completed
		}
	}
}

// complete marks the quest at index i as done and grants its reward.
// Callers must have checked that it is not done yet.
func complete(g *models.Gamification, i int) {
	q := &g.Quests[i]
	q.Progress = q.Target
	q.Done = true

	xp, coins := q.XP, q.CoinReward
	g.QuestsCompleted++
	AwardXP(g, xp)
	grantCoins(g, coins)
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

func perm(r *rand.Rand, n int) []int {
	if r == nil {
		return rand.Perm(n)
	}
	return r.Perm(n)
}
