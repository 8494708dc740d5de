package display

import (
	"fmt"
	"io"

	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var (
	heading = color.New(color.Bold)
	good    = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	bad     = color.New(color.FgRed)
)

// Status writes a short summary of the budget to w.
func Status(w io.Writer, s *models.BudgetState, safeToSpend decimal.Decimal) {
	heading.Fprintf(w, "Questbook %s\n", s.CurrentMonth)

	sts := FormatAmount(safeToSpend, s.Prefs)
	switch {
	case safeToSpend.IsPositive():
		good.Fprintf(w, "  Safe to spend: %s\n", sts)
	case safeToSpend.IsZero():
		warn.Fprintf(w, "  Safe to spend: %s\n", sts)
	default:
		bad.Fprintf(w, "  Safe to spend: %s\n", sts)
	}

	g := s.Game
	fmt.Fprintf(w, "  Level %d, %d XP, %d coins\n", g.Level, g.XP, g.Coins)
	fmt.Fprintf(w, "  Streak: %d days (record %d)\n", g.Streak, g.StreakRecord)

	open, unlocked := 0, 0
	for _, q := range g.Quests {
		if q.Type == models.QuestDaily && !q.Done {
			open++
		}
	}
	for _, b := range g.Badges {
		if b.Unlocked() {
			unlocked++
		}
	}
	fmt.Fprintf(w, "  Open daily quests: %d, badges: %d/%d\n", open, unlocked, len(g.Badges))
}
