package content

import (
	"sort"
	"strings"
	"testing"
)

func TestCompareNumeric(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024", "2023", 1},
		{"9", "100", -1},
		{"2024", "2024", 0},
		{"2024", "n/a", 1},
		{"", "2024", -1},
		{"abc", "abd", -1},
	}
	for _, tc := range cases {
		if got := CompareNumeric(tc.a, tc.b); got != tc.want {
			t.Errorf("CompareNumeric(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompareNumericIsTransitive(t *testing.T) {
	want := "10,2,1a"
	for _, in := range [][]string{{"10", "2", "1a"}, {"1a", "10", "2"}, {"2", "1a", "10"}} {
		vals := append([]string(nil), in...)
		sort.SliceStable(vals, func(i, j int) bool { return CompareNumeric(vals[i], vals[j]) > 0 })
		if got := strings.Join(vals, ","); got != want {
			t.Errorf("sorted %v = %s, want %s", in, got, want)
		}
	}
}

func TestCompareTextIgnoresCaseAtPrimaryLevel(t *testing.T) {
	if CompareText("apple", "Banana") >= 0 {
		t.Error("apple should sort before Banana")
	}
	if CompareText("zeta", "Alpha") <= 0 {
		t.Error("zeta should sort after Alpha")
	}
	if CompareText("same", "same") != 0 {
		t.Error("equal strings should compare equal")
	}
}

func TestReadingTime(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
	}
	for _, tc := range cases {
		text := ""
		for i := 0; i < tc.words; i++ {
			text += "word "
		}
		if got := ReadingTime(text); got != tc.want {
			t.Errorf("ReadingTime(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}
