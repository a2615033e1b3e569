package matching

import (
	"encoding/json"
	"testing"
)

func testIndexes() (*Index, *Index) {
	inv := BuildIndex(map[string][]string{
		"produce": {"tomato", "onion"},
		"pantry":  {"chicken", "sea salt", "dry salt"},
	})
	global := BuildIndex(map[string][]string{
		"spices": {"saffron threads", "smoked paprika"},
	})
	return inv, global
}

func TestMatchExact(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	res := m.Match(Parse("2 cups tomato, diced"), inv, global)
	if res.Type != MatchExact || res.Confidence != 100 {
		t.Fatalf("got %v/%d, want exact/100", res.Type, res.Confidence)
	}
	if res.MatchedName != "tomato" || res.Category != "produce" {
		t.Errorf("matched %q in %q, want tomato in produce", res.MatchedName, res.Category)
	}
}

func TestMatchExactAfterNormalization(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	// Stopword and plural handling makes "2 ripe tomatoes" land on the
	// inventory's "tomato" verbatim.
	res := m.Match(Parse("2 ripe tomatoes"), inv, global)
	if res.Type != MatchExact || res.Confidence < 70 {
		t.Errorf("got %v/%d, want exact with confidence >= 70", res.Type, res.Confidence)
	}
}

func TestMatchPartial(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	// "chicken breast" overlaps "chicken" on 1 of 2 tokens: ratio 0.5,
	// confidence round(50 + 0.5*40) = 70.
	res := m.Match(Parse("1 lb chicken breast"), inv, global)
	if res.Type != MatchPartial {
		t.Fatalf("got %v, want partial", res.Type)
	}
	if res.Confidence != 70 {
		t.Errorf("confidence = %d, want 70", res.Confidence)
	}
	if res.MatchedName != "chicken" {
		t.Errorf("matched %q, want chicken", res.MatchedName)
	}
}

func TestMatchFuzzy(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	// "spicy tomato sauce" overlaps "tomato" on 1 of 3 tokens:
	// ratio 1/3, confidence round(70/3) = 23, below availability.
	res := m.Match(Parse("spicy tomato sauce"), inv, global)
	if res.Type != MatchFuzzy {
		t.Fatalf("got %v, want fuzzy", res.Type)
	}
	if res.Confidence != 23 {
		t.Errorf("confidence = %d, want 23", res.Confidence)
	}
	if res.Confidence >= m.Params().AvailabilityThreshold {
		t.Errorf("fuzzy confidence %d should stay below threshold %d", res.Confidence, m.Params().AvailabilityThreshold)
	}
}

func TestMatchGlobal(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	res := m.Match(Parse("saffron threads"), inv, global)
	if res.Type != MatchGlobal {
		t.Fatalf("got %v, want global", res.Type)
	}
	if res.Confidence != 60 {
		t.Errorf("confidence = %d, want fixed 60", res.Confidence)
	}
	if res.MatchedName != "saffron threads" {
		t.Errorf("matched %q, want saffron threads", res.MatchedName)
	}
}

func TestMatchGlobalOverlap(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	// No inventory overlap at all, partial hit in the global catalog:
	// still the fixed global confidence regardless of overlap strength.
	res := m.Match(Parse("sweet paprika"), inv, global)
	if res.Type != MatchGlobal || res.Confidence != 60 {
		t.Errorf("got %v/%d, want global/60", res.Type, res.Confidence)
	}
}

func TestMatchNone(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	res := m.Match(Parse("1 cup flour"), inv, global)
	if res.Type != MatchNone || res.Confidence != 0 || res.MatchedName != "" {
		t.Errorf("got %+v, want none/0 with no matched name", res)
	}
}

func TestMatchDegradesToNone(t *testing.T) {
	m := NewMatcher(DefaultParams())

	cases := []ParsedIngredient{
		{},
		{Name: "Produce", IsHeader: true},
		{Name: "   "},
		{Name: "fresh organic"}, // normalizes to empty
	}
	for _, parsed := range cases {
		res := m.Match(parsed, nil, nil)
		if res.Type != MatchNone || res.Confidence != 0 {
			t.Errorf("Match(%+v) = %v/%d, want none/0", parsed, res.Type, res.Confidence)
		}
	}
}

func TestMatchTieBreakShorterName(t *testing.T) {
	global := BuildIndex(nil)
	inv := BuildIndex(map[string][]string{
		"produce": {"apple pie filling", "apple"},
	})
	m := NewMatcher(DefaultParams())

	// Both candidates overlap "green apple" at ratio 0.5; the shorter
	// normalized name wins.
	res := m.Match(Parse("1 green apple"), inv, global)
	if res.MatchedName != "apple" {
		t.Errorf("matched %q, want apple (shorter candidate)", res.MatchedName)
	}
}

func TestMatchTieBreakFirstInserted(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(DefaultParams())

	// "sea salt" and "dry salt" tie on ratio and key length; the
	// first-inserted entry wins.
	res := m.Match(Parse("salt and pepper"), inv, global)
	if res.MatchedName != "sea salt" {
		t.Errorf("matched %q, want sea salt (first inserted)", res.MatchedName)
	}
}

func TestMatcherParamOverrides(t *testing.T) {
	inv, global := testIndexes()
	m := NewMatcher(Params{GlobalConfidence: 40, AvailabilityThreshold: 50})

	res := m.Match(Parse("saffron threads"), inv, global)
	if res.Confidence != 40 {
		t.Errorf("confidence = %d, want overridden 40", res.Confidence)
	}
	if m.Params().PartialCutoff != DefaultParams().PartialCutoff {
		t.Errorf("zero cutoff should fall back to default")
	}
}

func TestMatchTypeJSON(t *testing.T) {
	tests := []struct {
		mt   MatchType
		want string
	}{
		{MatchExact, `"exact"`},
		{MatchPartial, `"partial"`},
		{MatchFuzzy, `"fuzzy"`},
		{MatchGlobal, `"global"`},
		{MatchNone, `"none"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.mt)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.mt, err)
		}
		if string(data) != tt.want {
			t.Errorf("marshal %v = %s, want %s", tt.mt, data, tt.want)
		}

		var back MatchType
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != tt.mt {
			t.Errorf("round trip %v = %v", tt.mt, back)
		}
	}

	var mt MatchType
	if err := json.Unmarshal([]byte(`"teleported"`), &mt); err == nil {
		t.Error("unknown match type should fail to unmarshal")
	}
}

func TestMatchTypeOrdering(t *testing.T) {
	if !(MatchExact > MatchPartial && MatchPartial > MatchFuzzy &&
		MatchFuzzy > MatchGlobal && MatchGlobal > MatchNone) {
		t.Error("match type preference ordering broken")
	}
}
