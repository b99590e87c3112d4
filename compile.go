package unifold

import (
	"fmt"
	"io"
)

// Table is a compiled case-folding table: the maximal runs produced by the
// run builder plus the unmerged singlet runs that mirror the raw input.
// A Table is immutable after Compile returns.
type Table struct {
	name     string
	version  string
	runs     []Run
	singlets []Run
	records  int
	max      rune // highest source code point in the input
}

// Compile folds records from a streaming, format-agnostic source into
// maximal runs. Records must arrive in strictly ascending source order.
// If the reader also implements Versioned, the table version is taken
// from it after the stream is exhausted.
func Compile(name string, reader RecordReader) (*Table, error) {
	var b runBuilder
	records := 0
	for {
		source, targets, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(targets) < 1 || len(targets) > 3 {
			return nil, fmt.Errorf("record %#04x: fold must expand to 1..3 code points, got %d",
				source, len(targets))
		}
		b.add(source, targets)
		records++
	}
	runs, singlets := b.finish()
	t := &Table{
		name:     name,
		runs:     runs,
		singlets: singlets,
		records:  records,
	}
	if len(singlets) > 0 {
		t.max = singlets[len(singlets)-1].End
	}
	if v, ok := reader.(Versioned); ok {
		t.version = v.Version()
	}
	tracer().Infof("fold table %q: %d records merged into %d runs, max source %#04x",
		name, records, len(runs), t.max)
	return t, nil
}

// Name identifies the source the table was compiled from.
func (t *Table) Name() string { return t.name }

// Version is the table version detected by the record source ("" if the
// source had none).
func (t *Table) Version() string { return t.version }

// Max is the highest source code point in the table.
func (t *Table) Max() rune { return t.max }

// Stats reports input and compaction sizes.
func (t *Table) Stats() (records, runs, singlets int) {
	return t.records, len(t.runs), len(t.singlets)
}
