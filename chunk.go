package unifold

const (
	// lowCeiling is the last code point served by the bucketed dispatch.
	// Nearly all case mappings live below it.
	lowCeiling = 0x2CFF
	// bucketCount buckets of bucketWidth code points each, keyed by the
	// high byte of the code point.
	bucketCount = lowCeiling>>8 + 1
	bucketWidth = 0x100
)

// clipRun derives a copy of run restricted to [lo, hi]. The second return
// value is false when the run lies fully outside the window. Original runs
// stay canonical; a clipped run is a derived view with its own target
// slice, its first target re-based onto the new Start. For alternating
// runs an odd clip distance is stretched by one so the surviving Start
// keeps the parity phase established at the original Start.
func clipRun(r Run, lo, hi rune) (Run, bool) {
	if r.End < lo || r.Start > hi {
		return Run{}, false
	}
	if r.Start >= lo && r.End <= hi {
		return r, true
	}
	c := r
	c.Targets = append([]rune(nil), r.Targets...)
	if c.Start < lo {
		diff := lo - c.Start
		if c.Parity == ParityAlternating && diff&1 == 1 {
			diff++
		}
		c.Start += diff
		c.Targets[0] += diff
	}
	if c.End > hi {
		c.End = hi
	}
	return c, true
}

// partition splits the run list for the two-level dispatch: 45 per-bucket
// chunks of clipped runs for the low range, and the flat list of runs
// reaching above lowCeiling for the high range. A run straddling the
// boundary appears on both sides; the high dispatch is only consulted for
// code points above lowCeiling, so its runs need no clipping. Bucket
// chunks stay sorted by Start since the source runs are ascending and
// clipping never reorders.
func partition(runs []Run) (chunks [bucketCount][]Run, high []Run) {
	for _, r := range runs {
		if r.End > lowCeiling {
			high = append(high, r)
		}
	}
	for hb := 0; hb < bucketCount; hb++ {
		lo := rune(hb) * bucketWidth
		hi := lo + bucketWidth - 1
		for _, r := range runs {
			if c, ok := clipRun(r, lo, hi); ok {
				chunks[hb] = append(chunks[hb], c)
			}
		}
	}
	return chunks, high
}
