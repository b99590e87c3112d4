package unifold

// Record is one normalized mapping entry of the input table: one source
// code point folding to an ordered sequence of 1 to 3 target code points.
// Records are immutable and arrive in strictly ascending Source order with
// unique sources; that ordering is an input contract, not something the
// compiler re-validates.
type Record struct {
	Source  rune
	Targets []rune
}

// RecordReader yields mapping records one-by-one in ascending source order.
// It should return io.EOF when the stream is exhausted.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package ucd to parse concrete formats and feed this API.
type RecordReader interface {
	Next() (source rune, targets []rune, err error)
}

// Versioned is implemented by record sources that know the version of the
// table they are reading (package ucd extracts it from the file header).
type Versioned interface {
	Version() string
}
