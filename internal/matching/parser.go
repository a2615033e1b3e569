package matching

import (
	"regexp"
	"strings"
)

// ParsedIngredient is the structured form of one raw recipe ingredient
// line. Empty Amount/Prep mean the line carried none.
type ParsedIngredient struct {
	Name     string `json:"name"`
	Amount   string `json:"amount,omitempty"`
	Prep     string `json:"prep,omitempty"`
	IsHeader bool   `json:"is_header,omitempty"`
}

var (
	// Leading quantity: "2", "1.5", "1/2", "1 1/2", "½", "1-2", "1 to 2"
	amountRegex = regexp.MustCompile(`^((?:\d+\s+\d+\s*/\s*\d+|\d+\s*/\s*\d+|\d+(?:[.,]\d+)?|[¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞])(?:\s*(?:-|–|—|to)\s*(?:\d+\s*/\s*\d+|\d+(?:[.,]\d+)?))?(?:\s*[¼½¾⅓⅔⅛⅜⅝⅞])?)\s*`)

	// Trailing parenthetical such as "(about 200g)" or "(sifted)"
	parenRegex = regexp.MustCompile(`\(([^)]*)\)\s*$`)
)

var unitWords = map[string]struct{}{
	"cup": {}, "cups": {},
	"tablespoon": {}, "tablespoons": {}, "tbsp": {},
	"teaspoon": {}, "teaspoons": {}, "tsp": {},
	"ounce": {}, "ounces": {}, "oz": {},
	"pound": {}, "pounds": {}, "lb": {}, "lbs": {},
	"gram": {}, "grams": {}, "g": {},
	"kilogram": {}, "kilograms": {}, "kg": {},
	"milliliter": {}, "milliliters": {}, "ml": {},
	"liter": {}, "liters": {}, "litre": {}, "litres": {}, "l": {},
	"clove": {}, "cloves": {},
	"can": {}, "cans": {},
	"pinch": {}, "pinches": {}, "dash": {},
	"slice": {}, "slices": {},
	"piece": {}, "pieces": {},
	"stick": {}, "sticks": {},
	"bunch": {}, "bunches": {},
	"head": {}, "heads": {},
	"sprig": {}, "sprigs": {},
	"stalk": {}, "stalks": {},
	"package": {}, "packages": {}, "pkg": {},
	"bag": {}, "bags": {},
	"jar": {}, "jars": {},
	"quart": {}, "quarts": {},
	"pint": {}, "pints": {},
	"gallon": {}, "gallons": {},
	"handful": {},
}

// Parse splits a raw recipe ingredient line into quantity, name and prep
// note, or flags it as a section header. Parsing never fails: anything
// not recognized as quantity or prep stays in Name.
func Parse(line string) ParsedIngredient {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ParsedIngredient{}
	}

	// Section headers are wrapped in dash markers: ---Produce---
	if len(trimmed) >= 6 && strings.HasPrefix(trimmed, "---") && strings.HasSuffix(trimmed, "---") {
		return ParsedIngredient{
			Name:     strings.TrimSpace(strings.Trim(trimmed, "-")),
			IsHeader: true,
		}
	}

	rest := trimmed
	var amount string

	if m := amountRegex.FindStringSubmatch(rest); m != nil {
		amount = strings.TrimSpace(m[1])
		rest = strings.TrimSpace(rest[len(m[0]):])

		word, tail := splitFirstWord(rest)
		if _, ok := unitWords[strings.ToLower(strings.TrimSuffix(word, "."))]; ok {
			amount += " " + word
			rest = tail
		}
	}

	var prep string
	if i := strings.Index(rest, ","); i >= 0 {
		prep = strings.TrimSpace(rest[i+1:])
		rest = strings.TrimSpace(rest[:i])
	} else if m := parenRegex.FindStringSubmatch(rest); m != nil {
		prep = strings.TrimSpace(m[1])
		rest = strings.TrimSpace(strings.TrimSuffix(rest, m[0]))
	}

	return ParsedIngredient{
		Name:   rest,
		Amount: amount,
		Prep:   prep,
	}
}

// ParseLines parses every line of a recipe ingredient list in order.
func ParseLines(lines []string) []ParsedIngredient {
	parsed := make([]ParsedIngredient, 0, len(lines))
	for _, line := range lines {
		parsed = append(parsed, Parse(line))
	}
	return parsed
}

func splitFirstWord(s string) (string, string) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
