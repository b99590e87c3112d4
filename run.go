package unifold

// Parity selects the extension rule a run has committed to.
type Parity uint8

const (
	// ParityNone marks an open run that has not yet committed to a rule.
	ParityNone Parity = iota
	// ParityContiguous: every code point in [Start,End] shifts by one
	// constant offset.
	ParityContiguous
	// ParityAlternating: only code points sharing Start's parity shift;
	// the opposite-parity code points in [Start,End] map to themselves.
	ParityAlternating
)

func (p Parity) String() string {
	switch p {
	case ParityContiguous:
		return "contiguous"
	case ParityAlternating:
		return "alternating"
	}
	return "none"
}

// Run is a maximal interval of code points describable by one offset rule.
// Targets holds the mapping for Start; a run with more than one target
// never grows beyond a single code point (Start == End), since multi-point
// expansions follow no arithmetic pattern.
type Run struct {
	Start, End rune
	Targets    []rune
	Parity     Parity
}

func newRun(source rune, targets []rune) Run {
	return Run{Start: source, End: source, Targets: append([]rune(nil), targets...)}
}

// extend tries to grow the run by one record and reports success.
// Contiguous extension (step 1) is tried before alternating extension
// (step 2); a run that has committed to one kind never switches, so the
// offset-application rule stays decidable from Start and End alone.
func (r *Run) extend(source rune, targets []rune) bool {
	if len(r.Targets) != 1 || len(targets) != 1 {
		// Do not attempt to combine if we are not mapping to one code
		// point. Those do not follow a simple pattern.
		return false
	}
	if r.Parity != ParityAlternating && source == r.End+1 &&
		targets[0] == r.Targets[0]+(source-r.Start) {
		r.End = source
		r.Parity = ParityContiguous
		return true
	}
	if r.Parity != ParityContiguous && source == r.End+2 &&
		targets[0] == r.Targets[0]+(source-r.Start) {
		r.End = source
		r.Parity = ParityAlternating
		return true
	}
	return false
}

// apply maps one code point through the run's rule. The caller guarantees
// Start <= c <= End.
func (r Run) apply(c rune) Fold {
	if r.Start == r.End {
		return mustFold(r.Targets)
	}
	if r.Parity == ParityAlternating && (c-r.Start)&1 == 1 {
		return FoldOne(c) // opposite-parity half maps to itself
	}
	return FoldOne(c + r.Targets[0] - r.Start)
}

// runBuilder folds ordered records into maximal runs. It keeps exactly one
// open run; records that cannot extend it close it and open a new one.
// Independently of merging, every record also yields a one-code-point
// singlet run, the raw material for the reference oracle.
type runBuilder struct {
	open     *Run
	runs     []Run
	singlets []Run
}

func (b *runBuilder) add(source rune, targets []rune) {
	b.singlets = append(b.singlets, newRun(source, targets))
	if b.open != nil && b.open.extend(source, targets) {
		return
	}
	if b.open != nil {
		b.runs = append(b.runs, *b.open)
	}
	opened := newRun(source, targets)
	b.open = &opened
}

func (b *runBuilder) finish() (runs, singlets []Run) {
	if b.open != nil {
		b.runs = append(b.runs, *b.open)
		b.open = nil
	}
	return b.runs, b.singlets
}
