package gamification

import (
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/models"
)

// CheckStreak updates the streak for activity at now.
//
// The gap to the last activity is measured in calendar days: on the same day
// nothing changes, on the next day the streak grows by one and after a longer
// break it starts over at 1. It reports whether the streak was updated.
func CheckStreak(g *models.Gamification, now time.Time) bool {
	updated := true

	switch {
	case g.LastActive == nil:
		g.Streak = 1
	default:
		gap := types.DaysBetween(*g.LastActive, now)
		switch {
		case gap <= 0:
			updated = false
		case gap == 1:
			g.Streak++
		default:
			g.Streak = 1
		}
	}

	if updated {
		g.StreakRecord = max(g.StreakRecord, g.Streak)
		g.LastActive = models.TimePtr(now)
	}

	UpdateQuestProgress(g, models.CategoryCheckIn, 1, now)
	return updated
}
