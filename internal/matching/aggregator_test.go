package matching

import (
	"strings"
	"testing"
)

func TestAggregateBasic(t *testing.T) {
	inv := BuildIndex(map[string][]string{
		"produce": {"tomato", "onion"},
	})
	global := BuildIndex(nil)
	m := NewMatcher(DefaultParams())

	lines := []string{"2 cups tomato, diced", "1 onion", "1 cup flour"}
	report := m.ScoreRecipe("r1", lines, inv, global)

	if report.TotalIngredients != 3 {
		t.Fatalf("total = %d, want 3", report.TotalIngredients)
	}
	if len(report.Available) != 2 || len(report.Missing) != 1 {
		t.Fatalf("available/missing = %d/%d, want 2/1", len(report.Available), len(report.Missing))
	}
	if report.CompatibilityScore != 67 {
		t.Errorf("compatibility = %d, want 67", report.CompatibilityScore)
	}
	if report.ConfidenceScore != 100 {
		t.Errorf("confidence = %d, want 100 (two exact matches)", report.ConfidenceScore)
	}
	if report.Missing[0].RecipeIngredient != "flour" {
		t.Errorf("missing = %q, want flour", report.Missing[0].RecipeIngredient)
	}
}

func TestAggregateSkipsHeadersAndEmpty(t *testing.T) {
	inv := BuildIndex(map[string][]string{"produce": {"tomato"}})
	global := BuildIndex(nil)
	m := NewMatcher(DefaultParams())

	lines := []string{
		"---Produce---",
		"1 tomato",
		"",
		"---Pantry---",
		"2 cups rice",
		"   ",
	}
	report := m.ScoreRecipe("r2", lines, inv, global)

	if report.TotalIngredients != 2 {
		t.Errorf("total = %d, want 2 (headers and blanks excluded)", report.TotalIngredients)
	}
	if got := len(report.Available) + len(report.Missing); got != report.TotalIngredients {
		t.Errorf("partition sums to %d, want %d", got, report.TotalIngredients)
	}
}

func TestAggregateEmptyRecipe(t *testing.T) {
	m := NewMatcher(DefaultParams())
	report := m.ScoreRecipe("r3", nil, BuildIndex(nil), BuildIndex(nil))

	if report.TotalIngredients != 0 {
		t.Errorf("total = %d, want 0", report.TotalIngredients)
	}
	if report.CompatibilityScore != 0 || report.ConfidenceScore != 0 {
		t.Errorf("scores = %d/%d, want 0/0", report.CompatibilityScore, report.ConfidenceScore)
	}
	if report.Available == nil || report.Missing == nil {
		t.Error("result slices should be empty, not nil")
	}
}

func TestAggregateGlobalCountsAvailable(t *testing.T) {
	inv := BuildIndex(nil)
	global := BuildIndex(map[string][]string{"spices": {"saffron threads"}})
	m := NewMatcher(DefaultParams())

	report := m.ScoreRecipe("r4", []string{"saffron threads"}, inv, global)

	if len(report.Available) != 1 {
		t.Fatalf("global match at confidence 60 should count as available")
	}
	if report.Available[0].Type != MatchGlobal {
		t.Errorf("type = %v, want global", report.Available[0].Type)
	}
	if report.CompatibilityScore != 100 || report.ConfidenceScore != 60 {
		t.Errorf("scores = %d/%d, want 100/60", report.CompatibilityScore, report.ConfidenceScore)
	}
}

func TestAggregateThresholdConsistency(t *testing.T) {
	inv := BuildIndex(map[string][]string{
		"produce": {"tomato", "onion"},
		"pantry":  {"chicken"},
	})
	global := BuildIndex(map[string][]string{"spices": {"saffron threads"}})
	m := NewMatcher(DefaultParams())

	lines := []string{
		"---Main---",
		"2 cups tomato, diced",
		"1 lb chicken breast",
		"spicy tomato sauce",
		"saffron threads",
		"1 cup flour",
		"",
	}
	report := m.ScoreRecipe("r5", lines, inv, global)

	threshold := m.Params().AvailabilityThreshold
	for _, res := range report.Available {
		if res.Type == MatchNone || res.Confidence < threshold {
			t.Errorf("available result violates threshold: %+v", res)
		}
	}
	for _, res := range report.Missing {
		if res.Type != MatchNone && res.Confidence >= threshold {
			t.Errorf("missing result should be available: %+v", res)
		}
	}

	if report.CompatibilityScore < 0 || report.CompatibilityScore > 100 {
		t.Errorf("compatibility score out of bounds: %d", report.CompatibilityScore)
	}
	if report.ConfidenceScore < 0 || report.ConfidenceScore > 100 {
		t.Errorf("confidence score out of bounds: %d", report.ConfidenceScore)
	}

	if report.TotalIngredients != 5 {
		t.Errorf("total = %d, want 5", report.TotalIngredients)
	}
	if report.CompatibilityScore != 60 {
		t.Errorf("compatibility = %d, want 60 (3 of 5)", report.CompatibilityScore)
	}
	if report.ConfidenceScore != 77 {
		t.Errorf("confidence = %d, want 77 (mean of 100, 70, 60)", report.ConfidenceScore)
	}
}

func TestShoppingListRoundTrip(t *testing.T) {
	inv := BuildIndex(nil)
	global := BuildIndex(nil)
	m := NewMatcher(DefaultParams())

	lines := []string{
		"1 cup flour",
		"2 eggs",
		"1/2 cup Flour", // duplicate after normalization
		"1 tsp vanilla extract",
	}
	report := m.ScoreRecipe("r6", lines, inv, global)

	list := report.ShoppingList()
	want := []string{"flour", "eggs", "vanilla extract"}
	if len(list) != len(want) {
		t.Fatalf("shopping list = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("shopping list = %v, want %v", list, want)
		}
	}

	// Export and re-split reproduces the exact ordered list.
	back := strings.Split(report.ShoppingListText(), "\n")
	if len(back) != len(list) {
		t.Fatalf("round trip produced %d lines, want %d", len(back), len(list))
	}
	for i := range list {
		if back[i] != list[i] {
			t.Errorf("line %d = %q, want %q", i, back[i], list[i])
		}
	}
}
