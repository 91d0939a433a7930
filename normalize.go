package country

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldPool hands out NFD → strip combining marks (Mn) → NFC pipelines.
// transform.Chain transformers carry internal state and are not safe for
// concurrent use, so each caller borrows its own.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

// foldDiacritics transliterates extended Latin characters to their base
// form ("Côte" → "Cote", "Curaçao" → "Curacao").
func foldDiacritics(s string) string {
	t := foldPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		foldPool.Put(t)
	}()

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

var (
	// "&" with any surrounding whitespace reads as the word "and".
	ampersandRe = sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(`\s*&\s*`)
	})
	// "st"/"st." at a word boundary, followed by whitespace, reads as
	// "saint". Matches at string start and mid-string alike.
	saintRe = sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(`\bst\.?\s+`)
	})
)

// normalize folds a raw string into the canonical comparable form used by
// the index and the scorer. Pure and idempotent.
//
// Steps, in order: trim, diacritic folding, lowercase, period removal,
// "&" → "and", "st"/"st." → "saint", whitespace collapse. Commas survive
// because comma placement drives variant derivation; periods do not, so
// "U.S. Virgin Islands" and "US Virgin Islands" meet at one key. Periods
// drop before the saint rule so a second pass can never see a fresh "st"
// token, which keeps normalize idempotent.
func normalize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	s = foldDiacritics(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = ampersandRe().ReplaceAllString(s, " and ")
	s = saintRe().ReplaceAllString(s, "saint ")
	return strings.Join(strings.Fields(s), " ")
}
