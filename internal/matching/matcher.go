package matching

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// MatchType classifies how a recipe ingredient was matched against the
// user's inventory. Higher values are stronger matches.
type MatchType int

const (
	MatchNone MatchType = iota
	MatchGlobal
	MatchFuzzy
	MatchPartial
	MatchExact
)

func (t MatchType) String() string {
	switch t {
	case MatchExact:
		return "exact"
	case MatchPartial:
		return "partial"
	case MatchFuzzy:
		return "fuzzy"
	case MatchGlobal:
		return "global"
	case MatchNone:
		return "none"
	}
	return "none"
}

func (t MatchType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *MatchType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "exact":
		*t = MatchExact
	case "partial":
		*t = MatchPartial
	case "fuzzy":
		*t = MatchFuzzy
	case "global":
		*t = MatchGlobal
	case "none":
		*t = MatchNone
	default:
		return fmt.Errorf("unknown match type %q", s)
	}
	return nil
}

// MatchResult is the classification of a single recipe ingredient.
type MatchResult struct {
	RecipeIngredient string    `json:"recipe_ingredient"`
	Type             MatchType `json:"match_type"`
	Confidence       int       `json:"confidence"`
	MatchedName      string    `json:"matched_name,omitempty"`
	Category         string    `json:"category,omitempty"`
}

// Params are the matcher's tunable constants. The partial/fuzzy cutoff
// and the fixed Global confidence are product calibration, not
// correctness requirements.
type Params struct {
	// PartialCutoff is the token-overlap ratio at which a match counts
	// as Partial instead of Fuzzy.
	PartialCutoff float64

	// GlobalConfidence is the fixed confidence assigned to any global
	// catalog hit: a known ingredient, but not one the user has.
	GlobalConfidence int

	// AvailabilityThreshold is the minimum confidence for a match to
	// count as available.
	AvailabilityThreshold int
}

// DefaultParams returns the calibration observed in production.
func DefaultParams() Params {
	return Params{
		PartialCutoff:         0.5,
		GlobalConfidence:      60,
		AvailabilityThreshold: 50,
	}
}

// Matcher classifies parsed ingredients against inventory and global
// catalog indexes. Stateless after construction, safe for concurrent use.
type Matcher struct {
	params Params
}

// NewMatcher creates a matcher. Zero fields in params fall back to the
// defaults.
func NewMatcher(params Params) *Matcher {
	def := DefaultParams()
	if params.PartialCutoff <= 0 {
		params.PartialCutoff = def.PartialCutoff
	}
	if params.GlobalConfidence <= 0 {
		params.GlobalConfidence = def.GlobalConfidence
	}
	if params.AvailabilityThreshold <= 0 {
		params.AvailabilityThreshold = def.AvailabilityThreshold
	}
	return &Matcher{params: params}
}

// Params returns the matcher's effective calibration.
func (m *Matcher) Params() Params {
	return m.params
}

// Match classifies one parsed ingredient. Tiers are evaluated in order
// and the first hit wins: exact inventory key, token overlap against the
// inventory (partial or fuzzy), exact-then-overlap against the global
// catalog, and finally none. Match is total: headers, empty names and
// nil indexes all degrade to a None result with confidence 0 rather
// than failing.
func (m *Matcher) Match(parsed ParsedIngredient, inv, global *Index) MatchResult {
	result := MatchResult{
		RecipeIngredient: strings.TrimSpace(parsed.Name),
		Type:             MatchNone,
	}

	if parsed.IsHeader {
		return result
	}
	key := Normalize(parsed.Name)
	if key == "" {
		return result
	}

	if entry, ok := inv.Lookup(key); ok {
		result.Type = MatchExact
		result.Confidence = 100
		result.MatchedName = entry.DisplayName
		result.Category = entry.Category
		return result
	}

	words := tokenSet(key)
	if entry, ratio, ok := bestOverlap(words, inv); ok {
		result.MatchedName = entry.DisplayName
		result.Category = entry.Category
		if ratio >= m.params.PartialCutoff {
			result.Type = MatchPartial
			result.Confidence = int(math.Round(50 + ratio*40))
		} else {
			result.Type = MatchFuzzy
			result.Confidence = int(math.Round(ratio * 70))
			if result.Confidence < 1 {
				result.Confidence = 1
			}
		}
		return result
	}

	// Global catalog is a recognition signal only: fixed confidence no
	// matter how strong the lexical hit.
	if entry, ok := global.Lookup(key); ok {
		result.Type = MatchGlobal
		result.Confidence = m.params.GlobalConfidence
		result.MatchedName = entry.DisplayName
		result.Category = entry.Category
		return result
	}
	if entry, _, ok := bestOverlap(words, global); ok {
		result.Type = MatchGlobal
		result.Confidence = m.params.GlobalConfidence
		result.MatchedName = entry.DisplayName
		result.Category = entry.Category
		return result
	}

	return result
}

// bestOverlap scans every index entry for the highest token-overlap
// ratio |intersection| / |words|. Ties break by shortest normalized
// name, then by first-inserted order.
func bestOverlap(words map[string]struct{}, idx *Index) (IndexEntry, float64, bool) {
	if idx == nil || len(words) == 0 {
		return IndexEntry{}, 0, false
	}

	var best IndexEntry
	bestRatio := 0.0
	found := false

	for _, entry := range idx.Entries() {
		overlap := 0
		for w := range words {
			if _, ok := entry.tokens[w]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		ratio := float64(overlap) / float64(len(words))

		switch {
		case !found || ratio > bestRatio:
			best, bestRatio, found = entry, ratio, true
		case ratio == bestRatio && len(entry.Key) < len(best.Key):
			best = entry
		}
	}

	return best, bestRatio, found
}
