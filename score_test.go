package country

import "testing"

func TestSimilarityExact(t *testing.T) {
	if got := similarity("chile", "chile"); got != 1 {
		t.Errorf("similarity(exact) = %v, want 1", got)
	}
	if got := similarity("", ""); got != 1 {
		t.Errorf("similarity(empty, empty) = %v, want 1", got)
	}
}

func TestSimilarityLengthRatioCutoff(t *testing.T) {
	// 1/7 < 0.2: too disproportionate to mean anything.
	if got := similarity("a", "albania"); got != 0 {
		t.Errorf("similarity(a, albania) = %v, want 0", got)
	}
	// "korea" against the long official form: 5/37 < 0.2.
	if got := similarity("korea", "korea, democratic people's republic of"); got != 0 {
		t.Errorf("similarity ratio cutoff not applied, got %v", got)
	}
}

func TestSimilarityContains(t *testing.T) {
	// Short fragment of a long name gets the 0.3 penalty: "guinea" must
	// not score high against "equatorial guinea".
	got := similarity("guinea", "equatorial guinea")
	want := 6.0 / 17.0 * shortFragmentPenalty
	if got != want {
		t.Errorf("similarity(guinea, equatorial guinea) = %v, want %v", got, want)
	}
	if got >= singleWordThreshold {
		t.Errorf("penalized fragment score %v crosses the single-word threshold", got)
	}

	// A long distinctive fragment keeps its full ratio.
	got = similarity("vatican", "vatican city")
	want = 7.0 / 12.0
	if got != want {
		t.Errorf("similarity(vatican, vatican city) = %v, want %v", got, want)
	}

	// Input containing the candidate scores the inverse ratio, no penalty.
	got = similarity("vatican city state", "vatican city")
	want = 12.0 / 18.0
	if got != want {
		t.Errorf("similarity(input contains candidate) = %v, want %v", got, want)
	}
}

func TestSimilarityWordOverlap(t *testing.T) {
	// Identical word sets in different order are a perfect match.
	if got := similarity("virgin islands us", "us virgin islands"); got != 1 {
		t.Errorf("similarity(reordered words) = %v, want 1", got)
	}

	// Partial overlap: {virgin, islands} shared out of 4 distinct words.
	got := similarity("virgin islands us", "british virgin islands")
	if got != 0.5 {
		t.Errorf("similarity(partial overlap) = %v, want 0.5", got)
	}

	// Overlap consisting only of generic words collapses to noise:
	// "republic of x" must not match "republic of y" via "republic".
	got = similarity("republic of foo", "republic of bar")
	want := 2.0 / 4.0 * genericOverlapPenalty
	if got != want {
		t.Errorf("similarity(generic-only overlap) = %v, want %v", got, want)
	}
	if got >= multiWordThreshold {
		t.Errorf("generic-only overlap %v crosses the multi-word threshold", got)
	}

	// No overlap at all.
	if got := similarity("mongolia", "paraguay"); got != 0 {
		t.Errorf("similarity(disjoint) = %v, want 0", got)
	}
}
