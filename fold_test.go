package unifold

import (
	"reflect"
	"testing"
)

func TestFoldConstructors(t *testing.T) {
	cases := []struct {
		fold Fold
		want []rune
	}{
		{FoldOne(0x61), []rune{0x61}},
		{FoldTwo(0x69, 0x307), []rune{0x69, 0x307}},
		{FoldThree(0x69, 0x307, 0x300), []rune{0x69, 0x307, 0x300}},
	}
	for _, c := range cases {
		if c.fold.Len() != len(c.want) {
			t.Fatalf("%v: expected length %d, got %d", c.fold, len(c.want), c.fold.Len())
		}
		if got := c.fold.Append(nil); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%v: Append = %v, want %v", c.fold, got, c.want)
		}
		for i, r := range c.want {
			if c.fold.At(i) != r {
				t.Fatalf("%v: At(%d) = %#04x, want %#04x", c.fold, i, c.fold.At(i), r)
			}
		}
	}
}

func TestFoldOf(t *testing.T) {
	f, err := foldOf([]rune{0x69, 0x307})
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(FoldTwo(0x69, 0x307)) {
		t.Fatalf("foldOf = %v", f)
	}
	if _, err := foldOf(nil); err == nil {
		t.Fatalf("expected an error for an empty fold")
	}
	if _, err := foldOf([]rune{1, 2, 3, 4}); err == nil {
		t.Fatalf("expected an error for a 4-code-point fold")
	}
}

func TestFoldEqual(t *testing.T) {
	if FoldOne(0x61).Equal(FoldTwo(0x61, 0x62)) {
		t.Fatalf("folds of different widths must differ")
	}
	if FoldTwo(0x61, 0x62).Equal(FoldTwo(0x61, 0x63)) {
		t.Fatalf("folds with different code points must differ")
	}
	if !FoldThree(1, 2, 3).Equal(FoldThree(1, 2, 3)) {
		t.Fatalf("identical folds must be equal")
	}
}

func TestFoldStringer(t *testing.T) {
	if got := FoldTwo(0x69, 0x307).String(); got != "Fold(0x0069 0x0307)" {
		t.Fatalf("String = %q", got)
	}
	if got := (Fold{}).String(); got != "Fold()" {
		t.Fatalf("zero String = %q", got)
	}
}
