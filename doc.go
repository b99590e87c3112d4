/*
Package unifold compiles Unicode case-folding tables into compact
decision procedures.

The input is the CaseFolding.txt data file from the Unicode Character
Database. Package unifold reads its common (C) and full (F) entries,
merges neighbouring entries into maximal runs (contiguous blocks shifted
by one constant offset, or blocks where only every other code point is
remapped), and emits a generated Go lookup function that dispatches on
code-point ranges instead of a one-entry-per-code-point table. The low,
densely mapped range is additionally dispatched through a jump table on
the high byte. A naive, unmerged reference procedure plus a brute-force
equivalence test are emitted alongside, and the same equivalence is
checked in-process before anything is written.

File format parsing is intentionally outside the base package and lives
in package ucd; the generator CLI lives in cmd/foldgen.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

License information is available in the LICENSE file.
*/
package unifold

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unifold'
func tracer() tracing.Trace {
	return tracing.Select("unifold")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
