package importer

import (
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// SortRules orders rules by ascending priority. Rules with the same
// priority keep their relative order.
func SortRules(rules []models.ImportRule) []models.ImportRule {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b models.ImportRule) int {
		switch {
		case a.Priority < b.Priority:
			return -1
		case a.Priority > b.Priority:
			return 1
		}
		return 0
	})
	return sorted
}

// Match returns the envelope and rule ID of the first rule matching the
// merchant. Rules must be sorted with SortRules.
func Match(rules []models.ImportRule, merchant string) (envelopeID, ruleID string) {
	if merchant == "" {
		return "", ""
	}

	for _, rule := range rules {
		// Since rules are sorted in priority order, we can simply return the first match
		if glob.Glob(rule.Match, merchant) {
			return rule.EnvelopeID, rule.ID
		}
	}
	return "", ""
}

// Apply sets the envelope of every transaction without one to the envelope
// of the first matching rule.
func Apply(rules []models.ImportRule, transactions []models.Transaction) {
	sorted := SortRules(rules)
	for i := range transactions {
		if transactions[i].EnvelopeID != "" {
			continue
		}

		transactions[i].EnvelopeID, _ = Match(sorted, transactions[i].Merchant)
	}
}
