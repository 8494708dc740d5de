package gamification

import (
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/models"
	"golang.org/x/exp/slices"
)

var sections = []models.Section{
	models.SectionDashboard,
	models.SectionEnvelopes,
	models.SectionTransactions,
	models.SectionBills,
	models.SectionGoals,
	models.SectionQuests,
	models.SectionInsights,
}

// ValidSection reports whether s is a known section.
func ValidSection(s models.Section) bool {
	return slices.Contains(sections, s)
}

// TrackSectionView records a visit to a section for the day now falls on and
// progresses explore quests with the number of distinct sections visited.
// The record starts over on every new day. Unknown sections are ignored.
func TrackSectionView(g *models.Gamification, section models.Section, now time.Time) bool {
	if !ValidSection(section) {
		return false
	}

	today := types.DayKey(now)
	if g.DailySectionViews == nil || g.DailySectionViews.Date != today {
		g.DailySectionViews = &models.DailySectionViews{Date: today, Sections: []models.Section{}}
	}

	views := g.DailySectionViews
	if slices.Contains(views.Sections, section) {
		return false
	}

	views.Sections = append(views.Sections, section)
	UpdateQuestProgress(g, models.CategoryExplore, len(views.Sections), now)
	return true
}
