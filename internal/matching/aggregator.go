package matching

import (
	"math"
	"strings"
)

// CompatibilityReport summarizes how much of a recipe the user can cook
// from their current inventory. Derived data: recompute whenever the
// recipe, inventory or global catalog changes.
type CompatibilityReport struct {
	RecipeID           string        `json:"recipe_id"`
	TotalIngredients   int           `json:"total_ingredients"`
	Available          []MatchResult `json:"available_ingredients"`
	Missing            []MatchResult `json:"missing_ingredients"`
	CompatibilityScore int           `json:"compatibility_score"`
	ConfidenceScore    int           `json:"confidence_score"`
}

// Aggregate folds per-ingredient match results into a single report.
// Header lines and empty names are skipped and do not count toward the
// total. A result is available iff its type is not None and its
// confidence meets the availability threshold.
func (m *Matcher) Aggregate(recipeID string, parsed []ParsedIngredient, inv, global *Index) CompatibilityReport {
	report := CompatibilityReport{
		RecipeID:  recipeID,
		Available: []MatchResult{},
		Missing:   []MatchResult{},
	}

	confidenceSum := 0
	for _, p := range parsed {
		if p.IsHeader || strings.TrimSpace(p.Name) == "" {
			continue
		}
		report.TotalIngredients++

		result := m.Match(p, inv, global)
		if result.Type != MatchNone && result.Confidence >= m.params.AvailabilityThreshold {
			report.Available = append(report.Available, result)
			confidenceSum += result.Confidence
		} else {
			report.Missing = append(report.Missing, result)
		}
	}

	if report.TotalIngredients > 0 {
		report.CompatibilityScore = roundHalfUp(100 * float64(len(report.Available)) / float64(report.TotalIngredients))
	}
	if len(report.Available) > 0 {
		report.ConfidenceScore = roundHalfUp(float64(confidenceSum) / float64(len(report.Available)))
	}

	return report
}

// ScoreRecipe parses raw ingredient lines and aggregates them in one
// call.
func (m *Matcher) ScoreRecipe(recipeID string, lines []string, inv, global *Index) CompatibilityReport {
	return m.Aggregate(recipeID, ParseLines(lines), inv, global)
}

// ShoppingList returns the missing ingredient display names,
// deduplicated by normalized name, preserving first-occurrence order.
func (r CompatibilityReport) ShoppingList() []string {
	seen := make(map[string]struct{}, len(r.Missing))
	items := make([]string, 0, len(r.Missing))
	for _, m := range r.Missing {
		key := Normalize(m.RecipeIngredient)
		if key == "" {
			key = m.RecipeIngredient
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, m.RecipeIngredient)
	}
	return items
}

// ShoppingListText renders the shopping list as plain text, one
// ingredient per line.
func (r CompatibilityReport) ShoppingListText() string {
	return strings.Join(r.ShoppingList(), "\n")
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
