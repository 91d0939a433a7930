package country

import (
	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance caps the edit distance considered "close". Higher
// values turn into O(N) scans that mostly surface noise.
const maxSuggestDistance = 2

// Suggest returns up to max canonical display names whose normalized
// name or variant is within a small edit distance of the input, in table
// order. Intended for "did you mean" output after a failed lookup; the
// resolver itself never consults it.
func Suggest(input string, max int) []string {
	n := normalize(input)
	if n == "" || max <= 0 {
		return nil
	}

	var out []string
	for _, vs := range lookupIndex().countries {
		for _, v := range vs.variants {
			if levenshtein.ComputeDistance(n, v) <= maxSuggestDistance {
				if name, ok := CodeToName(vs.code); ok {
					out = append(out, name)
				}
				break
			}
		}
		if len(out) == max {
			break
		}
	}
	return out
}
