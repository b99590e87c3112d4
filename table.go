package unifold

import "sort"

// lookupRuns finds the run covering c in an ascending, disjoint run list
// and applies it. Code points covered by no run map to themselves.
func lookupRuns(runs []Run, c rune) Fold {
	i := sort.Search(len(runs), func(i int) bool { return runs[i].End >= c })
	if i < len(runs) && runs[i].Start <= c {
		return runs[i].apply(c)
	}
	return FoldOne(c)
}

// Fold returns the full case fold of r. The semantics are identical to the
// generated lookup function; this is the in-memory evaluation of the same
// compiled runs.
func (t *Table) Fold(r rune) Fold {
	return lookupRuns(t.runs, r)
}

// FoldString returns s with every code point replaced by its full fold.
func (t *Table) FoldString(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = t.Fold(r).Append(out)
	}
	return string(out)
}

// EqualFold reports whether a and b are equal under full case folding:
// both strings are flat-mapped through Fold and compared code point by
// code point.
func (t *Table) EqualFold(a, b string) bool {
	fa := make([]rune, 0, len(a))
	for _, r := range a {
		fa = t.Fold(r).Append(fa)
	}
	fb := make([]rune, 0, len(b))
	for _, r := range b {
		fb = t.Fold(r).Append(fb)
	}
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}
	return true
}

// EqualFoldASCII reports case-insensitive equality for ASCII input without
// consulting any table. Non-ASCII bytes compare verbatim.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
