package country

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Chile", "chile"},
		{"  United States  ", "united states"},
		{"United   States", "united states"},
		{"United\tStates", "united states"},
		{"UNITED KINGDOM", "united kingdom"},
		{"Côte d'Ivoire", "cote d'ivoire"},
		{"Curaçao", "curacao"},
		{"São Tomé & Príncipe", "sao tome and principe"},
		{"Åland Islands", "aland islands"},
		{"Bosnia & Herzegovina", "bosnia and herzegovina"},
		{"Bosnia&Herzegovina", "bosnia and herzegovina"},
		{"St. Lucia", "saint lucia"},
		{"St Lucia", "saint lucia"},
		{"Saint Lucia", "saint lucia"},
		{"St. Kitts & Nevis", "saint kitts and nevis"},
		// The saint rule applies at word boundaries mid-string too.
		{"Mont St. Michel", "mont saint michel"},
		// Periods drop; commas stay (they drive comma reversal).
		{"U.S. Virgin Islands", "us virgin islands"},
		{"Virgin Islands, U.S.", "virgin islands, us"},
		{"Korea, Republic of", "korea, republic of"},
		// "st" embedded in a word is untouched.
		{"East Timor", "east timor"},
		{"West Bank", "west bank"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Côte d'Ivoire",
		"St. Pierre & Miquelon",
		"Virgin Islands, U.S.",
		"  Bosnia  &  Herzegovina ",
		"s.t. x", // period removal must not surface a fresh "st" token
		"Holy See (Vatican City State)",
	}
	for _, c := range countryTable {
		inputs = append(inputs, c.Names...)
	}

	for _, in := range inputs {
		once := normalize(in)
		if twice := normalize(once); twice != once {
			t.Errorf("normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Côte", "Cote"},
		{"Curaçao", "Curacao"},
		{"Türkiye", "Turkiye"},
		{"Réunion", "Reunion"},
		{"plain ascii", "plain ascii"},
	}
	for _, tt := range tests {
		if got := foldDiacritics(tt.in); got != tt.want {
			t.Errorf("foldDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// The fold pipeline is pooled; hammer it from multiple goroutines to
// catch transformer state leaking between borrowers.
func TestFoldDiacriticsConcurrent(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 500; j++ {
				if got := foldDiacritics("Curaçao"); got != "Curacao" {
					t.Errorf("foldDiacritics = %q, want %q", got, "Curacao")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestNormalizeLongInput(t *testing.T) {
	long := strings.Repeat("a", 10_000)
	if got := normalize(long); got != long {
		t.Errorf("normalize(long ascii) changed the string")
	}
}
