package shaping

// Monospace is a Shaper assigning every code unit the same advance.
// It is deliberately simple: no kerning, no ligatures, no font access.
// Low surrogates measure zero so that surrogate pairs count once.
//
// Hyphen edits are honored by adding HyphenAdvance for every hyphen the
// edit shapes into the measured range, which makes Monospace sufficient
// for exercising hyphenation in the line breaker.
type Monospace struct {
	Advance       float64
	HyphenAdvance float64
	Extent        Extent
}

// NewMonospace creates a monospace shaper with the given advance per
// code unit. The hyphen advance defaults to the ordinary advance, the
// extent to a conventional 80/20 split of the advance.
func NewMonospace(advance float64) *Monospace {
	return &Monospace{
		Advance:       advance,
		HyphenAdvance: advance,
		Extent: Extent{
			Ascent:  -0.8 * advance,
			Descent: 0.2 * advance,
		},
	}
}

// MeasureText measures buf[start:start+count].
//
// Interface Shaper
func (ms *Monospace) MeasureText(buf []uint16, start, count, bufSize int, bidiFlags BidiFlags,
	style Style, paint *Paint, fonts FontCollection,
	outWidths []float64, outExtents []Extent) float64 {
	//
	total := 0.0
	for i := start; i < start+count; i++ {
		w := ms.Advance
		if isLowSurrogate(buf[i]) {
			w = 0
		}
		total += w
		if outWidths != nil {
			outWidths[i-start] = w
		}
		if outExtents != nil {
			if w > 0 {
				outExtents[i-start] = ms.Extent
			} else {
				outExtents[i-start] = Extent{}
			}
		}
	}
	if paint != nil {
		if paint.HyphenEdit.WillInsertHyphenAtEnd() {
			total += ms.HyphenAdvance
		}
		if paint.HyphenEdit.WillInsertHyphenAtStart() {
			total += ms.HyphenAdvance
		}
	}
	return total
}
