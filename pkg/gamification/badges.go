package gamification

import (
	"time"

	"github.com/envelope-zero/questbook/pkg/models"
)

// CheckAndAwardBadges recomputes the progress of every locked badge from its
// lifetime counter and unlocks the badges whose requirement is met.
//
// Unlocking sets UnlockedAt and grants BadgeCoinBonus, once per badge.
// Unlocked badges are skipped, their progress stays as it was at unlock time.
// The newly unlocked badges are returned.
func CheckAndAwardBadges(g *models.Gamification, now time.Time) []models.Badge {
	var unlocked []models.Badge

	for i := range g.Badges {
		b := &g.Badges[i]
		if b.Unlocked() {
			continue
		}

		value, ok := CounterValue(g, b.Counter)
		if !ok {
			continue
		}

		b.Progress = max(0, min(value, b.Requirement))
		if b.Progress < b.Requirement {
			continue
		}

		b.UnlockedAt = models.TimePtr(now)
		grantCoins(g, BadgeCoinBonus)
		unlocked = append(unlocked, g.Badges[i])
	}

	return unlocked
}
