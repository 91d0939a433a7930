package country

import "strings"

// Scoring constants. The values are empirically tuned and ambiguity
// rejection is defined by these exact numbers; changing any of them
// changes which inputs resolve.
const (
	lengthRatioCutoff     = 0.2 // below this length ratio, no overlap is meaningful
	shortFragmentLen      = 6   // inputs this short get the fragment penalty
	shortFragmentPenalty  = 0.3 // short substring of a long name
	singleWordPenalty     = 0.2 // one-word input against a multi-word name
	genericOverlapPenalty = 0.1 // word overlap consisting only of generic words
)

// similarity scores a normalized input against a normalized candidate
// name, returning a confidence in [0, 1]. Rules apply in order and the
// first applicable one decides.
func similarity(input, candidate string) float64 {
	if input == candidate {
		return 1
	}
	if input == "" || candidate == "" {
		return 0
	}

	li, lc := len(input), len(candidate)
	shorter, longer := li, lc
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if float64(shorter)/float64(longer) < lengthRatioCutoff {
		return 0
	}

	if strings.Contains(candidate, input) {
		s := float64(li) / float64(lc)
		// "guinea" must not score high against "equatorial guinea",
		// while a long fragment like "vatican" may still score well
		// against "holy see (vatican city state)".
		if li <= shortFragmentLen && s < 0.6 {
			s *= shortFragmentPenalty
		}
		return s
	}
	if strings.Contains(input, candidate) {
		return float64(lc) / float64(li)
	}

	// Word-set (Jaccard) similarity.
	inWords := strings.Fields(input)
	candWords := strings.Fields(candidate)
	inSet := make(map[string]bool, len(inWords))
	for _, w := range inWords {
		inSet[w] = true
	}
	candSet := make(map[string]bool, len(candWords))
	for _, w := range candWords {
		candSet[w] = true
	}

	inter := 0
	sharedNonGeneric := false
	for w := range inSet {
		if candSet[w] {
			inter++
			if !genericWords[w] {
				sharedNonGeneric = true
			}
		}
	}
	union := len(inSet) + len(candSet) - inter
	if union == 0 {
		return 0
	}
	s := float64(inter) / float64(union)

	if len(inWords) == 1 && len(candWords) > 1 {
		// Bare single words must not casually match multi-word names.
		s *= singleWordPenalty
	} else if inter > 0 && !sharedNonGeneric {
		// "republic of x" must not match "republic of y" via "republic".
		s *= genericOverlapPenalty
	}
	return s
}
