package linebreak

import (
	"github.com/npillmayer/parbreak/hyphen"
	"github.com/npillmayer/parbreak/shaping"
)

// computeMaxExtent finds the needed extent between the start and end
// candidate ranges. start and end are inclusive.
func (lb *LineBreaker) computeMaxExtent(start, end int) shaping.Extent {
	res := lb.candidates[end].extent
	for j := start; j < end; j++ {
		res.ExtendBy(lb.candidates[j].extent)
	}
	return res
}

// pushBreak appends one line to the output lists.
func (lb *LineBreaker) pushBreak(offset int, width float64, extent shaping.Extent, hyphenEdit hyphen.Edit) {
	lb.breaks = append(lb.breaks, offset)
	lb.widths = append(lb.widths, width)
	lb.ascents = append(lb.ascents, extent.Ascent)
	lb.descents = append(lb.descents, extent.Descent)
	flags := int(hyphenEdit)
	if lb.firstTabIndex < offset {
		flags |= 1 << TabShift
		// a tab at or after this break belongs to a following line
		lb.firstTabIndex = noTabIndex
		for i := offset; i < len(lb.text); i++ {
			if lb.text[i] == charTab {
				lb.firstTabIndex = i
				break
			}
		}
	}
	lb.flags = append(lb.flags, flags)
}

// pushGreedyBreak commits the current best break. Helper for
// addCandidate.
func (lb *LineBreaker) pushGreedyBreak() {
	best := lb.candidates[lb.bestBreak]
	lb.pushBreak(best.offset, best.postBreak-lb.preBreak,
		lb.computeMaxExtent(lb.lastBreak+1, lb.bestBreak),
		lb.lastHyphenation|hyphen.EditForThisLine(best.hyphenType))
	lb.bestScore = ScoreInfinity
	tracer().Debugf("break: %d %g", lb.breaks[len(lb.breaks)-1], lb.widths[len(lb.widths)-1])
	lb.lastBreak = lb.bestBreak
	lb.preBreak = best.preBreak
	lb.lastHyphenation = hyphen.EditForNextLine(best.hyphenType)
}

// addCandidate appends a candidate and advances the greedy breaker.
//
// lastBreak is the index of the last line break committed so far, and
// preBreak is its preBreak value. bestBreak is the index of the best
// breaking candidate found since then, and bestScore its penalty.
func (lb *LineBreaker) addCandidate(cand candidate) {
	candIndex := len(lb.candidates)
	lb.candidates = append(lb.candidates, cand)

	if cand.postBreak-lb.preBreak > lb.currentLineWidth() {
		// This break would create an overfull line: pick the best
		// break seen so far and break there (greedy).
		if lb.bestBreak == lb.lastBreak {
			// No good break since the last one. Break here.
			lb.bestBreak = candIndex
		}
		lb.pushGreedyBreak()
	}

	for lb.lastBreak != candIndex && cand.postBreak-lb.preBreak > lb.currentLineWidth() {
		// We rarely come here. The line is broken, but the remaining
		// part still doesn't fit. Break at the second best place after
		// the last break; that information was not kept, so go back
		// and find it.
		//
		// In some really rare cases, postBreak - preBreak of a
		// candidate itself may be over the current line width. Guard
		// against an infinite loop by checking that the line has not
		// been broken at this candidate already.
		for i := lb.lastBreak + 1; i < candIndex; i++ {
			if penalty := lb.candidates[i].penalty; penalty <= lb.bestScore {
				lb.bestBreak = i
				lb.bestScore = penalty
			}
		}
		if lb.bestBreak == lb.lastBreak {
			// We didn't find anything good. Break here.
			lb.bestBreak = candIndex
		}
		lb.pushGreedyBreak()
	}

	if cand.penalty <= lb.bestScore {
		lb.bestBreak = candIndex
		lb.bestScore = cand.penalty
	}
}

// computeBreaksGreedy finalizes the greedy output. All breaks but the
// last have been added in addCandidate already.
func (lb *LineBreaker) computeBreaksGreedy() {
	nCand := len(lb.candidates)
	if nCand == 1 || lb.lastBreak != nCand-1 {
		lb.pushBreak(lb.candidates[nCand-1].offset, lb.candidates[nCand-1].postBreak-lb.preBreak,
			lb.computeMaxExtent(lb.lastBreak+1, nCand-1),
			lb.lastHyphenation)
		// no need to update bestScore, we're done
		tracer().Debugf("final break: %d %g", lb.breaks[len(lb.breaks)-1], lb.widths[len(lb.widths)-1])
	}
}
