package country

import "strings"

// Titulary prefixes and suffixes stripped when deriving name variants.
// Each pattern is applied independently to the normalized form with plain
// string operations; every accepted removal becomes its own variant.
var (
	titlePrefixes = []string{
		"the ",
		"republic of ",
		"democratic republic of ",
		"people's republic of ",
		"islamic republic of ",
		"socialist republic of ",
		"kingdom of ",
		"principality of ",
		"federation of ",
		"state of ",
		"commonwealth of ",
		"united states of ",
	}
	titleSuffixes = []string{
		" republic",
		" federation",
		" kingdom",
		" islands",
		" island",
	}
)

// genericWords are words too common across country names to carry any
// distinguishing signal on their own. A bare generic word never becomes a
// variant and never fuzzy-matches.
var genericWords = map[string]bool{
	"united": true, "republic": true, "democratic": true, "kingdom": true,
	"state": true, "states": true, "island": true, "islands": true,
	"federation": true, "socialist": true, "islamic": true,
	"the": true, "of": true, "and": true, "new": true,
	"north": true, "south": true, "east": true, "west": true,
	"saint": true, "st": true,
}

// ambiguousBare are terms that legitimately name more than one country
// when used alone, so stripping must never surface them as variants.
var ambiguousBare = map[string]bool{
	"korea": true, "guinea": true, "congo": true,
	"virgin": true, "samoa": true, "sudan": true,
}

// deriveVariants returns the normalized form of raw plus every variant
// derived from it: title-stripped forms, and for comma-separated names
// ("korea, republic of") the clause-reversed form ("republic of korea")
// with its own stripped forms. The result is deduplicated and keeps
// insertion order so index construction stays deterministic.
func deriveVariants(raw string) []string {
	base := normalize(raw)
	if base == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	add(base)
	for _, v := range stripTitles(base) {
		add(v)
	}

	if strings.Contains(base, ", ") {
		parts := strings.Split(base, ", ")
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
		rev := strings.Join(parts, " ")
		add(rev)
		for _, v := range stripTitles(rev) {
			add(v)
		}
	}
	return out
}

// stripTitles applies every title pattern to s and returns the removals
// that survive acceptVariant.
func stripTitles(s string) []string {
	var out []string
	for _, p := range titlePrefixes {
		if rest, ok := strings.CutPrefix(s, p); ok && acceptVariant(rest) {
			out = append(out, rest)
		}
	}
	for _, suf := range titleSuffixes {
		if rest, ok := strings.CutSuffix(s, suf); ok && acceptVariant(rest) {
			out = append(out, rest)
		}
	}
	return out
}

// acceptVariant rejects stripped fragments that would act as universal
// matches: too short, bare generic words, or bare terms that name more
// than one country.
func acceptVariant(v string) bool {
	if len(v) < 4 {
		return false
	}
	if !strings.Contains(v, " ") && (genericWords[v] || ambiguousBare[v]) {
		return false
	}
	return true
}
