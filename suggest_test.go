package country

import (
	"slices"
	"testing"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Germny", "Germany"},
		{"Austra", "Austria"},
		{"Swedenn", "Sweden"},
		{"chille", "Chile"},
		{"portugal", "Portugal"}, // exact still suggests itself
	}
	for _, tt := range tests {
		got := Suggest(tt.in, 3)
		if !slices.Contains(got, tt.want) {
			t.Errorf("Suggest(%q, 3) = %v, missing %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggestMax(t *testing.T) {
	got := Suggest("Austra", 1)
	if len(got) != 1 {
		t.Fatalf("Suggest(Austra, 1) = %v, want exactly one result", got)
	}

	if got := Suggest("Germny", 0); got != nil {
		t.Errorf("Suggest(_, 0) = %v, want nil", got)
	}
}

func TestSuggestNoMatch(t *testing.T) {
	for _, in := range []string{"", "   ", "xqzzyv", "1234567890"} {
		if got := Suggest(in, 3); got != nil {
			t.Errorf("Suggest(%q) = %v, want nil", in, got)
		}
	}
}
