package country

import (
	"strings"
	"sync"
)

// variantSet is the per-country derived data used by the fuzzy fallback.
type variantSet struct {
	code      string
	canonical string   // normalized Names[0]
	variants  []string // deduplicated, insertion order
}

// nameIndex holds the lookup structures built from countryTable: a flat
// exact-match map, a code → table position map, and the per-country
// variant lists. Append-only during construction, read-only afterwards,
// so concurrent readers need no locks.
type nameIndex struct {
	exact     map[string]string // literal/normalized/derived key → code
	codes     map[string]int    // ISO code → countryTable position
	countries []variantSet
}

// lookupIndex builds the index at most once per process.
var lookupIndex = sync.OnceValue(buildIndex)

func buildIndex() *nameIndex {
	idx := &nameIndex{
		exact:     make(map[string]string, len(countryTable)*8),
		codes:     make(map[string]int, len(countryTable)),
		countries: make([]variantSet, 0, len(countryTable)),
	}

	// Pass 1: explicit names only. Literal lowercased forms and
	// normalized forms go in before any derived variant, so a generic
	// variant from one country can never shadow another country's real
	// name. First writer wins; table order breaks ties for names shared
	// between countries.
	for i, c := range countryTable {
		if len(c.Names) == 0 {
			panic("country: no names for code " + c.Code)
		}
		if _, dup := idx.codes[c.Code]; dup {
			panic("country: duplicate code " + c.Code)
		}
		idx.codes[c.Code] = i
		for _, n := range c.Names {
			idx.put(strings.ToLower(strings.TrimSpace(n)), c.Code)
			idx.put(normalize(n), c.Code)
		}
	}

	// Pass 2: derived variants fill the remaining keys.
	for _, c := range countryTable {
		vs := variantSet{code: c.Code, canonical: normalize(c.Names[0])}
		seen := make(map[string]bool)
		for _, n := range c.Names {
			for _, v := range deriveVariants(n) {
				idx.put(v, c.Code)
				if !seen[v] {
					seen[v] = true
					vs.variants = append(vs.variants, v)
				}
			}
		}
		idx.countries = append(idx.countries, vs)
	}
	return idx
}

// put inserts a key unless it is empty or already present.
func (idx *nameIndex) put(key, code string) {
	if key == "" {
		return
	}
	if _, ok := idx.exact[key]; !ok {
		idx.exact[key] = code
	}
}
