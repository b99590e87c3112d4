package unifold

import "fmt"

// verifyMargin extends the offline check past the last mapped code point,
// confirming the identity fallback right after the table's range.
const verifyMargin = 1000

// Verify checks the compiled table offline, before any code is emitted:
// run invariants (ordering, disjointness, multi-target runs of width one)
// and bit-exact equivalence of the merged runs against the unmerged
// singlet oracle for every code point in [0, Max()+1000].
func (t *Table) Verify() error {
	if err := auditRuns("merged", t.runs); err != nil {
		return err
	}
	if err := auditRuns("singlet", t.singlets); err != nil {
		return err
	}
	limit := t.max + verifyMargin
	for c := rune(0); c <= limit; c++ {
		want := lookupRuns(t.singlets, c)
		got := lookupRuns(t.runs, c)
		if !got.Equal(want) {
			return fmt.Errorf("case-folding %#04x diverges: oracle %v, optimized %v", c, want, got)
		}
	}
	return nil
}

// auditRuns checks the structural invariants of a run list.
func auditRuns(kind string, runs []Run) error {
	for i, r := range runs {
		if r.Start > r.End {
			return fmt.Errorf("%s run %d: inverted bounds %#04x..%#04x", kind, i, r.Start, r.End)
		}
		if len(r.Targets) < 1 || len(r.Targets) > 3 {
			return fmt.Errorf("%s run %d: %d targets", kind, i, len(r.Targets))
		}
		if len(r.Targets) > 1 && r.Start != r.End {
			return fmt.Errorf("%s run %d: multi-target run spans %#04x..%#04x", kind, i, r.Start, r.End)
		}
		if i > 0 && runs[i-1].End >= r.Start {
			return fmt.Errorf("%s runs %d and %d overlap at %#04x", kind, i-1, i, r.Start)
		}
	}
	return nil
}
