package unifold

import (
	"fmt"
	"strings"
)

// Fold is the case-fold expansion of a single code point. Most code points
// fold to exactly one code point; full case folding expands a few of them
// into an ordered sequence of two or three (for example U+00DF 'ß' folds to
// "ss"). The zero Fold is empty and only useful as a placeholder.
type Fold struct {
	n     int
	runes [3]rune
}

// FoldOne wraps a single-code-point fold.
func FoldOne(r rune) Fold {
	return Fold{n: 1, runes: [3]rune{r}}
}

// FoldTwo wraps a two-code-point fold.
func FoldTwo(a, b rune) Fold {
	return Fold{n: 2, runes: [3]rune{a, b}}
}

// FoldThree wraps a three-code-point fold.
func FoldThree(a, b, c rune) Fold {
	return Fold{n: 3, runes: [3]rune{a, b, c}}
}

// foldOf builds a Fold from an ordered target sequence of width 1 to 3.
func foldOf(targets []rune) (Fold, error) {
	switch len(targets) {
	case 1:
		return FoldOne(targets[0]), nil
	case 2:
		return FoldTwo(targets[0], targets[1]), nil
	case 3:
		return FoldThree(targets[0], targets[1], targets[2]), nil
	}
	return Fold{}, fmt.Errorf("fold must expand to 1..3 code points, got %d", len(targets))
}

func mustFold(targets []rune) Fold {
	f, err := foldOf(targets)
	assert(err == nil, "fold width out of range")
	return f
}

// Len returns the number of code points in the expansion.
func (f Fold) Len() int { return f.n }

// At returns the i-th code point of the expansion.
func (f Fold) At(i int) rune {
	assert(i >= 0 && i < f.n, "fold index out of range")
	return f.runes[i]
}

// Append appends the expansion to dst and returns the extended slice.
func (f Fold) Append(dst []rune) []rune {
	return append(dst, f.runes[:f.n]...)
}

// Equal reports whether two folds expand to the same sequence.
func (f Fold) Equal(other Fold) bool {
	if f.n != other.n {
		return false
	}
	for i := 0; i < f.n; i++ {
		if f.runes[i] != other.runes[i] {
			return false
		}
	}
	return true
}

func (f Fold) String() string {
	if f.n == 0 {
		return "Fold()"
	}
	parts := make([]string, f.n)
	for i := 0; i < f.n; i++ {
		parts[i] = fmt.Sprintf("%#04x", f.runes[i])
	}
	return "Fold(" + strings.Join(parts, " ") + ")"
}
