// Package gamification computes XP, levels, streaks, quests and badges.
//
// All functions mutate the *models.Gamification they are given and never
// fail. Every transition that grants a reward is guarded by a check of the
// current completion state made right before the grant, so calling any of
// them redundantly never grants a reward twice.
package gamification

import (
	"math"

	"github.com/envelope-zero/questbook/pkg/models"
)

// MaxXP is the ceiling for the XP of a user.
const MaxXP = 999_999

// RequiredXP returns the XP threshold of a level. A user is at the highest
// level whose threshold their XP has reached, and never below level 1.
func RequiredXP(level int) int {
	return int(math.Round(60 * math.Pow(float64(level), 1.35)))
}

// LevelForXP returns the level that corresponds to an XP total.
func LevelForXP(xp int) int {
	level := 1
	for xp >= RequiredXP(level+1) {
		level++
	}
	return level
}

// AwardXP adds XP and the coins that come with it.
//
// XP is capped at MaxXP, the level only ever increases and coins grow by
// one tenth of the awarded amount, rounded down. Non-positive amounts are
// ignored.
func AwardXP(g *models.Gamification, amount int) {
	if amount <= 0 {
		return
	}

	g.XP = min(g.XP+amount, MaxXP)
	g.TotalXPEarned += amount

	if g.Level < 1 {
		g.Level = 1
	}
	for g.XP >= RequiredXP(g.Level+1) {
		g.Level++
	}

	grantCoins(g, amount/10)
}

func grantCoins(g *models.Gamification, coins int) {
	if coins <= 0 {
		return
	}

	g.Coins += coins
	g.TotalCoinsEarned += coins
}
