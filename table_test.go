package unifold

import "testing"

func scenarioTable(t *testing.T) *Table {
	t.Helper()
	var entries []Record
	for c := rune(0x41); c <= 0x5A; c++ { // A-Z
		entries = append(entries, Record{Source: c, Targets: []rune{c + 0x20}})
	}
	entries = append(entries,
		Record{Source: 0xDF, Targets: []rune{0x73, 0x73}},
		Record{Source: 0x130, Targets: []rune{0x69, 0x307}},
	)
	return compileRecords(t, entries)
}

func TestFoldLookup(t *testing.T) {
	table := scenarioTable(t)
	if got := table.Fold(0x41); !got.Equal(FoldOne(0x61)) {
		t.Fatalf("Fold(A) = %v, want Fold(0x61)", got)
	}
	if got := table.Fold(0x130); !got.Equal(FoldTwo(0x69, 0x307)) {
		t.Fatalf("Fold(0x130) = %v, want Fold(0x69 0x307)", got)
	}
}

func TestFoldIdentityFallback(t *testing.T) {
	table := scenarioTable(t)
	for _, c := range []rune{0x40, 0x5B, 0x61, table.Max() + 1, 0x10FFFF} {
		if got := table.Fold(c); !got.Equal(FoldOne(c)) {
			t.Fatalf("Fold(%#04x) = %v, want self-map", c, got)
		}
	}
}

func TestFoldString(t *testing.T) {
	table := scenarioTable(t)
	if got := table.FoldString("Maße"); got != "masse" {
		t.Fatalf("FoldString(Maße) = %q, want masse", got)
	}
}

func TestEqualFold(t *testing.T) {
	table := scenarioTable(t)
	cases := []struct {
		a, b string
		want bool
	}{
		{"foo bar", "FoO BAR", true},
		{"MASSE", "Maße", true},
		{"Maße", "masse", true},
		{"masse", "messa", false},
		{"foo", "foox", false},
	}
	for _, c := range cases {
		if got := table.EqualFold(c.a, c.b); got != c.want {
			t.Fatalf("EqualFold(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestEqualFoldASCII(t *testing.T) {
	if !EqualFoldASCII("foobar", "FoObAr") {
		t.Fatalf("foobar should equal FoObAr")
	}
	if EqualFoldASCII("foobar", "foobaz") {
		t.Fatalf("foobar should not equal foobaz")
	}
	if EqualFoldASCII("foo", "fooo") {
		t.Fatalf("lengths differ")
	}
}
