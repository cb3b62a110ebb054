package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxUnitLength = 20
	minUnitLength = 2
)

// unitSynonyms maps singular unit names to their canonical abbreviation
var unitSynonyms = map[string]string{
	"tablespoon": "tbsp",
	"teaspoon":   "tsp",
	"ounce":      "oz",
	"gram":       "g",
}

// canonicalUnits are the abbreviations unitSynonyms produces. They are
// accepted as-is so normalizing an already-canonical key is a no-op.
var canonicalUnits = map[string]bool{
	"tbsp": true,
	"tsp":  true,
	"oz":   true,
	"g":    true,
}

// NormalizeUnit maps a free-text measure name to a canonical unit key.
// The second return value is false when the name is not a plausible unit
// (too long, parenthesized, no letters or no vowels).
func NormalizeUnit(raw string) (string, bool) {
	unit := strings.TrimSpace(strings.ToLower(raw))
	if canonicalUnits[unit] {
		return unit, true
	}

	length := utf8.RuneCountInString(unit)
	if length > maxUnitLength || strings.ContainsAny(unit, "():") {
		return "", false
	}
	if length < minUnitLength {
		return "", false
	}
	if strings.IndexFunc(unit, unicode.IsLetter) < 0 {
		return "", false
	}
	if !strings.ContainsAny(unit, "aeiou") {
		return "", false
	}

	// Naive singular: "cups" -> "cup", but "glass" stays
	if strings.HasSuffix(unit, "s") && !strings.HasSuffix(unit, "ss") {
		unit = strings.TrimSuffix(unit, "s")
	}

	if canonical, ok := unitSynonyms[unit]; ok {
		return canonical, true
	}
	return unit, true
}
