package unifold

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"time"
)

// Emitter renders a compiled table as Go source: one file with the
// optimized two-level lookup function, and one companion _test.go file
// with the unmerged reference oracle and a brute-force equivalence test.
// Both files are gofmt-formatted before they are returned.
//
// The destination package must provide the Fold type surface of this
// package (Fold, FoldOne, FoldTwo, FoldThree); by default the emitted
// files target package unifold itself.
type Emitter struct {
	Package string // package clause of the generated files
	Date    string // generation date for the header comment
	table   *Table
}

// NewEmitter prepares emission for a compiled table.
func NewEmitter(t *Table) *Emitter {
	return &Emitter{
		Package: "unifold",
		Date:    time.Now().Format("2006-01-02"),
		table:   t,
	}
}

// Emit renders the optimized dispatch and its companion equivalence test.
// Everything is produced in memory; callers decide where the two files go.
func (e *Emitter) Emit() (mapSrc, testSrc []byte, err error) {
	chunks, high := partition(e.table.runs)

	var buf bytes.Buffer
	e.writeHeader(&buf)
	fmt.Fprintf(&buf, "package %s\n\n", e.Package)
	e.writeLookup(&buf, chunks, high)
	mapSrc, err = format.Source(buf.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("emitted map source does not format: %w", err)
	}

	buf.Reset()
	e.writeHeader(&buf)
	fmt.Fprintf(&buf, "package %s\n\nimport \"testing\"\n\n", e.Package)
	e.writeOracle(&buf)
	testSrc, err = format.Source(buf.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("emitted test source does not format: %w", err)
	}
	return mapSrc, testSrc, nil
}

func (e *Emitter) writeHeader(w *bytes.Buffer) {
	fmt.Fprintf(w, "// Code generated by foldgen from %s; DO NOT EDIT.\n", e.table.name)
	version := e.table.version
	if version == "" {
		version = "unknown"
	}
	fmt.Fprintf(w, "// Case-folding table version %s, generated %s.\n\n", version, e.Date)
}

// writeLookup emits the public decision procedure: a jump table on the
// high byte for the low range, a flat range dispatch above it.
func (e *Emitter) writeLookup(w *bytes.Buffer, chunks [bucketCount][]Run, high []Run) {
	fmt.Fprintf(w, "// lookupFold returns the full case fold of orig.\n")
	fmt.Fprintf(w, "//\n")
	fmt.Fprintf(w, "// The shape below keeps the function far smaller than a flat\n")
	fmt.Fprintf(w, "// one-entry-per-code-point table. Mappings mostly come as ranges shifted\n")
	fmt.Fprintf(w, "// by a constant offset, so the function matches on ranges; and most\n")
	fmt.Fprintf(w, "// mapped code points are small (0 - 0x%04x), so that range is dispatched\n", lowCeiling)
	fmt.Fprintf(w, "// through a jump table on the high byte.\n")
	fmt.Fprintf(w, "func lookupFold(orig rune) Fold {\n")
	fmt.Fprintf(w, "from := uint32(orig)\n")
	fmt.Fprintf(w, "if from <= 0x%04x {\n", lowCeiling)
	anyLow := false
	for _, chunk := range chunks {
		if len(chunk) > 0 {
			anyLow = true
			break
		}
	}
	if anyLow { // a fully empty low range must not declare an unused low byte
		fmt.Fprintf(w, "low := from & 0xff\n")
	}
	fmt.Fprintf(w, "var single uint32\n")
	fmt.Fprintf(w, "switch from >> 8 {\n")
	for hb, chunk := range chunks {
		fmt.Fprintf(w, "case 0x%02x:\n", hb)
		if len(chunk) == 0 {
			fmt.Fprintf(w, "single = from\n")
			continue
		}
		fmt.Fprintf(w, "switch {\n")
		for _, r := range chunk {
			e.writeArm(w, r, true)
		}
		fmt.Fprintf(w, "default:\nsingle = from\n")
		fmt.Fprintf(w, "}\n")
	}
	fmt.Fprintf(w, "default:\nsingle = from\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "return FoldOne(rune(single))\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "var single uint32\n")
	fmt.Fprintf(w, "switch {\n")
	for _, r := range high {
		e.writeArm(w, r, false)
	}
	fmt.Fprintf(w, "default:\nsingle = from\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "return FoldOne(rune(single))\n")
	fmt.Fprintf(w, "}\n")
}

// writeOracle emits the unmerged reference procedure (one arm per table
// entry) and the equivalence test driving both procedures over every code
// point up to 1000 past the table's end, so the identity fallback just
// beyond the table is covered too.
func (e *Emitter) writeOracle(w *bytes.Buffer) {
	fmt.Fprintf(w, "// lookupFoldNaive is the unmerged reference: one arm per table entry.\n")
	fmt.Fprintf(w, "func lookupFoldNaive(orig rune) Fold {\n")
	fmt.Fprintf(w, "from := uint32(orig)\n")
	fmt.Fprintf(w, "var single uint32\n")
	fmt.Fprintf(w, "switch {\n")
	for _, r := range e.table.singlets {
		e.writeArm(w, r, false)
	}
	fmt.Fprintf(w, "default:\nsingle = from\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "return FoldOne(rune(single))\n")
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "func TestLookupFoldConsistency(t *testing.T) {\n")
	fmt.Fprintf(w, "for c := rune(0); c <= 0x%04x; c++ {\n", e.table.max+verifyMargin)
	fmt.Fprintf(w, "want := lookupFoldNaive(c)\n")
	fmt.Fprintf(w, "got := lookupFold(c)\n")
	fmt.Fprintf(w, "if !got.Equal(want) {\n")
	fmt.Fprintf(w, "t.Fatalf(\"case-folding %%#04x failed: expected %%v, got %%v\", c, want, got)\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "}\n")
}

// writeArm emits one dispatch arm for run r, cheapest matching strategy
// first: direct equality for single code points, plain offset for
// contiguous ranges, a single bit operation for alternating ranges with
// unit offset, and a parity branch for the general alternating case.
// With lowByte set the match is on the low byte of the code point (the
// bucketed dispatch); offsets always apply to the full value.
func (e *Emitter) writeArm(w *bytes.Buffer, r Run, lowByte bool) {
	match := "from"
	if lowByte {
		match = "low"
	}
	switch {
	case r.Start == r.End && len(r.Targets) == 1:
		fmt.Fprintf(w, "case %s == %s:\nsingle = 0x%04x\n", match, hexEdge(r.Start, lowByte), r.Targets[0])
	case r.Start == r.End:
		fmt.Fprintf(w, "case %s == %s:\nreturn %s\n", match, hexEdge(r.Start, lowByte), foldCtor(r.Targets))
	case r.Parity != ParityAlternating:
		fmt.Fprintf(w, "case %s:\nsingle = %s\n", rangeCond(match, r, lowByte), offsetExpr(r.Start, r.Targets[0]))
	case r.Targets[0]-r.Start == 1 && r.Start&1 == 0:
		fmt.Fprintf(w, "case %s:\nsingle = from | 1\n", rangeCond(match, r, lowByte))
	case r.Targets[0]-r.Start == 1:
		fmt.Fprintf(w, "case %s:\nsingle = (from + 1) &^ 1\n", rangeCond(match, r, lowByte))
	default:
		fmt.Fprintf(w, "case %s:\nif from&1 == %d {\nsingle = %s\n} else {\nsingle = from\n}\n",
			rangeCond(match, r, lowByte), r.Start&1, offsetExpr(r.Start, r.Targets[0]))
	}
}

// rangeCond renders the inclusive range test for a run, dropping the
// comparisons that cannot fail (a lower bound of zero, or the full upper
// bound of a bucket in low-byte mode).
func rangeCond(match string, r Run, lowByte bool) string {
	lo, hi := r.Start, r.End
	if lowByte {
		lo &= 0xff
		hi &= 0xff
	}
	var conds []string
	if lo > 0 {
		conds = append(conds, fmt.Sprintf("%s >= %s", match, hexEdge(lo, lowByte)))
	}
	if !lowByte || hi < 0xff {
		conds = append(conds, fmt.Sprintf("%s <= %s", match, hexEdge(hi, lowByte)))
	}
	if len(conds) == 0 {
		return "true"
	}
	return strings.Join(conds, " && ")
}

func hexEdge(c rune, lowByte bool) string {
	if lowByte {
		return fmt.Sprintf("0x%02x", c&0xff)
	}
	return fmt.Sprintf("0x%04x", c)
}

// offsetExpr renders the constant-offset application. uint32 addition and
// subtraction wrap by the language spec, the analogue of wrapping_add /
// wrapping_sub; ranges derive from real table entries, so the result is
// always a valid code point.
func offsetExpr(start, target rune) string {
	if target < start {
		return fmt.Sprintf("from - 0x%04x", start-target)
	}
	return fmt.Sprintf("from + 0x%04x", target-start)
}

func foldCtor(targets []rune) string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = fmt.Sprintf("0x%04x", t)
	}
	if len(targets) == 2 {
		return fmt.Sprintf("FoldTwo(%s)", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("FoldThree(%s)", strings.Join(parts, ", "))
}
