package country

import (
	"strings"
	"unicode/utf8"
)

// Resolution thresholds. One-word inputs are inherently higher-risk for
// false positives ("korea") and get the stricter bar.
const (
	singleWordThreshold = 0.4
	multiWordThreshold  = 0.2
)

// maxInputLen bounds resolver work per call. The longest official name in
// the dataset is around 60 characters; anything past this cannot match.
const maxInputLen = 128

// resolveName turns a free-form country name into an ISO code. Single
// pass, no retries: exact literal lookup, normalized lookup, derived
// variant lookup, then a scored fuzzy search with ambiguity thresholds.
func resolveName(input string) (string, bool) {
	in := strings.TrimSpace(input)
	if in == "" || utf8.RuneCountInString(in) > maxInputLen {
		return "", false
	}
	idx := lookupIndex()

	// Literal fast path. Stored names are compared case-only, so two
	// countries sharing a derived variant still resolve by stored order.
	if code, ok := idx.exact[strings.ToLower(in)]; ok {
		return code, true
	}

	n := normalize(in)
	if n == "" {
		return "", false
	}
	if code, ok := idx.exact[n]; ok {
		return code, true
	}

	// Government-pattern lookup on the input itself: "Republic of
	// France" probes as "france".
	for _, v := range deriveVariants(in) {
		if code, ok := idx.exact[v]; ok {
			return code, true
		}
	}

	// Bare generic words ("united", "republic") never fuzzy-match.
	words := strings.Fields(n)
	allGeneric := true
	for _, w := range words {
		if !genericWords[w] {
			allGeneric = false
			break
		}
	}
	if allGeneric {
		return "", false
	}

	// Fuzzy fallback: best score across every canonical name and
	// variant. Strict > keeps the first-seen candidate on ties, so the
	// result is deterministic by table order.
	bestCode, bestScore := "", 0.0
search:
	for _, vs := range idx.countries {
		if s := similarity(n, vs.canonical); s > bestScore {
			bestCode, bestScore = vs.code, s
			if bestScore == 1 {
				break search
			}
		}
		for _, v := range vs.variants {
			if s := similarity(n, v); s > bestScore {
				bestCode, bestScore = vs.code, s
				if bestScore == 1 {
					break search
				}
			}
		}
	}

	threshold := multiWordThreshold
	if len(words) == 1 {
		threshold = singleWordThreshold
	}
	if bestScore >= threshold {
		return bestCode, true
	}
	return "", false
}
