// Package country resolves free-form country identifiers (ISO 3166-1
// alpha-2 codes, regional-indicator flag emoji, and country names in many
// formats) into a canonical representation and back.
//
// All functions are pure lookups over an immutable compiled-in dataset.
// The lookup index is built lazily on first use and never mutated, so
// every entry point is safe for concurrent use. Absence of a result is
// the only failure mode, reported comma-ok style:
//
//	code, ok := country.Code("Republic of Moldova") // "MD", true
//	flag, ok := country.Flag("UK")                  // "🇬🇧", true
//	name, ok := country.Name("🇩🇪")                  // "Germany", true
package country

import "strings"

// flagOffset is the distance from an ASCII uppercase letter to the
// corresponding Unicode regional-indicator symbol.
const flagOffset = 127397

// Regional-indicator symbol range (🇦 through 🇿).
const (
	regionalIndicatorA = '\U0001F1E6'
	regionalIndicatorZ = '\U0001F1FF'
)

// Code resolves a flag emoji or a country name to an ISO code. Flag
// decoding is tried first; everything else goes through name resolution.
func Code(input string) (string, bool) {
	if code, ok := FlagToCode(input); ok {
		return code, true
	}
	return NameToCode(input)
}

// Name resolves a flag emoji or an ISO code to the canonical display
// name.
func Name(input string) (string, bool) {
	if code, ok := FlagToCode(input); ok {
		return CodeToName(code)
	}
	return CodeToName(input)
}

// Flag resolves an ISO code or a country name to a flag emoji.
func Flag(input string) (string, bool) {
	if flag, ok := CodeToFlag(input); ok {
		return flag, true
	}
	if code, ok := NameToCode(input); ok {
		return CodeToFlag(code)
	}
	return "", false
}

// NameToCode resolves a country name to an ISO code with no flag or code
// auto-detection.
func NameToCode(name string) (string, bool) {
	return resolveName(name)
}

// CodeToName returns the canonical display name for an ISO code.
func CodeToName(code string) (string, bool) {
	i, ok := lookupIndex().codes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return "", false
	}
	return countryTable[i].Names[0], true
}

// CodeToFlag returns the flag emoji for a valid ISO code. Offset
// arithmetic is only applied after validation; invalid codes yield no
// result.
func CodeToFlag(code string) (string, bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if !IsCode(c) {
		return "", false
	}
	flag := make([]rune, 0, 2)
	for _, r := range c {
		flag = append(flag, r+flagOffset)
	}
	return string(flag), true
}

// FlagToCode decodes a flag emoji to its ISO code. Anything that is not
// exactly two regional-indicator symbols, or that decodes to an unknown
// code, yields no result.
func FlagToCode(flag string) (string, bool) {
	rs := []rune(strings.TrimSpace(flag))
	if len(rs) != 2 {
		return "", false
	}
	code := make([]rune, 0, 2)
	for _, r := range rs {
		if r < regionalIndicatorA || r > regionalIndicatorZ {
			return "", false
		}
		code = append(code, r-flagOffset)
	}
	c := string(code)
	if !IsCode(c) {
		return "", false
	}
	return c, true
}

// IsCode reports whether code is a known ISO 3166-1 alpha-2 code,
// ignoring case and surrounding whitespace.
func IsCode(code string) bool {
	_, ok := lookupIndex().codes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// IsCountryFlag reports whether s is the flag emoji of a known country.
func IsCountryFlag(s string) bool {
	_, ok := FlagToCode(s)
	return ok
}

// AllCodes returns every ISO code in the dataset, in table order.
func AllCodes() []string {
	codes := make([]string, len(countryTable))
	for i, c := range countryTable {
		codes[i] = c.Code
	}
	return codes
}

// Count returns the number of countries in the dataset.
func Count() int {
	return len(countryTable)
}
