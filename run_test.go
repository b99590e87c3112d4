package unifold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContiguousMerge(t *testing.T) {
	table := compileRecords(t, []Record{
		{Source: 0x41, Targets: []rune{0x61}},
		{Source: 0x42, Targets: []rune{0x62}},
	})
	want := []Run{{Start: 0x41, End: 0x42, Targets: []rune{0x61}, Parity: ParityContiguous}}
	if diff := cmp.Diff(want, table.runs); diff != "" {
		t.Fatalf("run mismatch (-want +got):\n%s", diff)
	}
}

func TestAlternatingMerge(t *testing.T) {
	table := compileRecords(t, []Record{
		{Source: 0x100, Targets: []rune{0x101}},
		{Source: 0x102, Targets: []rune{0x103}},
	})
	want := []Run{{Start: 0x100, End: 0x102, Targets: []rune{0x101}, Parity: ParityAlternating}}
	if diff := cmp.Diff(want, table.runs); diff != "" {
		t.Fatalf("run mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiTargetNeverMerges(t *testing.T) {
	table := compileRecords(t, []Record{
		{Source: 0x48, Targets: []rune{0x68}},
		{Source: 0x49, Targets: []rune{0x69, 0x307}},
		{Source: 0x4A, Targets: []rune{0x6A}},
	})
	if len(table.runs) != 3 {
		t.Fatalf("expected 3 runs around a multi-target record, got %d: %v", len(table.runs), table.runs)
	}
	mid := table.runs[1]
	if mid.Start != mid.End || len(mid.Targets) != 2 {
		t.Fatalf("multi-target run must stay one code point wide, got %v", mid)
	}
}

func TestCommittedParityNeverSwitches(t *testing.T) {
	// 0x100 and 0x102 commit an alternating run; 0x103 would extend it
	// contiguously and must open a new run instead.
	table := compileRecords(t, []Record{
		{Source: 0x100, Targets: []rune{0x101}},
		{Source: 0x102, Targets: []rune{0x103}},
		{Source: 0x103, Targets: []rune{0x104}},
	})
	if len(table.runs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %v", len(table.runs), table.runs)
	}
	if table.runs[0].Parity != ParityAlternating {
		t.Fatalf("first run should stay alternating, is %v", table.runs[0].Parity)
	}
	if table.runs[1].Start != 0x103 || table.runs[1].Parity != ParityNone {
		t.Fatalf("unexpected second run %v", table.runs[1])
	}
	// The mirror case: a committed contiguous run refuses a step-2 record
	// with the matching offset.
	table = compileRecords(t, []Record{
		{Source: 0x200, Targets: []rune{0x230}},
		{Source: 0x201, Targets: []rune{0x231}},
		{Source: 0x203, Targets: []rune{0x233}},
	})
	if len(table.runs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %v", len(table.runs), table.runs)
	}
	if table.runs[0].Parity != ParityContiguous || table.runs[0].End != 0x201 {
		t.Fatalf("unexpected first run %v", table.runs[0])
	}
}

func TestOffsetChangeClosesRun(t *testing.T) {
	table := compileRecords(t, []Record{
		{Source: 0x41, Targets: []rune{0x61}},
		{Source: 0x42, Targets: []rune{0x100}},
	})
	if len(table.runs) != 2 {
		t.Fatalf("expected 2 runs for an offset change, got %d", len(table.runs))
	}
}

func TestSingletsMirrorRecords(t *testing.T) {
	entries := []Record{
		{Source: 0x41, Targets: []rune{0x61}},
		{Source: 0x42, Targets: []rune{0x62}},
		{Source: 0x130, Targets: []rune{0x69, 0x307}},
	}
	table := compileRecords(t, entries)
	if len(table.singlets) != len(entries) {
		t.Fatalf("expected %d singlets, got %d", len(entries), len(table.singlets))
	}
	for i, s := range table.singlets {
		if s.Start != entries[i].Source || s.End != entries[i].Source {
			t.Fatalf("singlet %d spans %#04x..%#04x, want %#04x", i, s.Start, s.End, entries[i].Source)
		}
		if s.Parity != ParityNone {
			t.Fatalf("singlet %d carries parity %v", i, s.Parity)
		}
	}
}

func TestAlternatingApplyParity(t *testing.T) {
	run := Run{Start: 0x100, End: 0x106, Targets: []rune{0x101}, Parity: ParityAlternating}
	for c := rune(0x100); c <= 0x106; c++ {
		got := run.apply(c)
		want := FoldOne(c) // odd code points self-map
		if c&1 == 0 {
			want = FoldOne(c + 1)
		}
		if !got.Equal(want) {
			t.Fatalf("apply(%#04x) = %v, want %v", c, got, want)
		}
	}
}

func TestNegativeOffsetApply(t *testing.T) {
	// Cherokee-style mapping: targets below the sources.
	run := Run{Start: 0x13F8, End: 0x13FD, Targets: []rune{0x13F0}, Parity: ParityContiguous}
	if got := run.apply(0x13FA); !got.Equal(FoldOne(0x13F2)) {
		t.Fatalf("apply(0x13fa) = %v, want Fold(0x13f2)", got)
	}
}
