package matching

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// stopwords are descriptors that never distinguish one ingredient from
// another ("fresh basil" and "basil" are the same pantry item).
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "and": {}, "or": {},
	"fresh": {}, "frozen": {}, "raw": {}, "organic": {},
	"chopped": {}, "diced": {}, "minced": {}, "sliced": {},
	"grated": {}, "shredded": {}, "peeled": {}, "crushed": {},
	"ground": {}, "melted": {}, "softened": {}, "packed": {},
	"finely": {}, "roughly": {}, "coarsely": {}, "thinly": {}, "freshly": {},
	"large": {}, "small": {}, "medium": {}, "ripe": {},
}

// Normalize canonicalizes an ingredient name for comparison: lowercase,
// diacritics removed, punctuation replaced by spaces, stopwords dropped,
// plural tokens singularized. Idempotent and pure.
func Normalize(s string) string {
	s = strings.ToLower(s)

	// Remove accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = nonAlnumRegex.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if _, skip := stopwords[w]; skip {
			continue
		}
		kept = append(kept, singularize(w))
	}

	return strings.Join(kept, " ")
}

// singularize applies lightweight plural rules. It only needs to map the
// singular and plural spellings of a word to the same token, not to
// produce dictionary-correct English.
func singularize(w string) string {
	if len(w) <= 3 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies"):
		return strings.TrimSuffix(w, "ies") + "y"
	case strings.HasSuffix(w, "oes"),
		strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"),
		strings.HasSuffix(w, "sses"),
		strings.HasSuffix(w, "xes"),
		strings.HasSuffix(w, "zes"):
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s"):
		return strings.TrimSuffix(w, "s")
	}
	return w
}

// tokenSet splits a normalized name into its word set.
func tokenSet(key string) map[string]struct{} {
	words := strings.Fields(key)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
