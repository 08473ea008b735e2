package linebreak

import (
	"github.com/npillmayer/parbreak/hyphen"
)

// computeBreaksOptimal runs a forward dynamic program over the
// candidates, with candidate 0 as the start. For each candidate i it
// finds the predecessor j minimizing the total cost of a paragraph
// whose last line runs from j to i.
//
// The active window advances past any j that yields an overfull line:
// once a line starting at j is overfull for end i, every earlier start
// is too. bestHope prunes dominated predecessors; this relies on the
// width score increasing monotonically as j moves back, for delta >= 0
// and a fixed line width.
func (lb *LineBreaker) computeBreaksOptimal() {
	active := 0
	nCand := len(lb.candidates)
	width := lb.lineWidths.LineWidth(0)
	maxShrink := 0.0
	if lb.justified {
		maxShrink = shrinkability * lb.SpaceWidth()
	}
	lineNumbers := make([]int, 1, nCand) // the first candidate is always on the first line

	// i iterates through candidates for the end of the line
	for i := 1; i < nCand; i++ {
		atEnd := i == nCand-1
		best := ScoreInfinity
		bestPrev := 0

		lineNumberLast := lineNumbers[active]
		width = lb.lineWidths.LineWidth(lineNumberLast)

		leftEdge := lb.candidates[i].postBreak - width
		bestHope := 0.0

		// j iterates through candidates for the beginning of the line
		for j := active; j < i; j++ {
			lineNumber := lineNumbers[j]
			if lineNumber != lineNumberLast {
				// lines may have differing widths
				if widthNew := lb.lineWidths.LineWidth(lineNumber); widthNew != width {
					width = widthNew
					leftEdge = lb.candidates[i].postBreak - width
					bestHope = 0
				}
				lineNumberLast = lineNumber
			}
			jScore := lb.candidates[j].score
			if jScore+bestHope >= best {
				continue
			}
			delta := lb.candidates[j].preBreak - leftEdge

			// compute width score for the line
			widthScore := 0.0
			additionalPenalty := 0.0
			if (atEnd || !lb.justified) && delta < 0 {
				widthScore = ScoreOverfull
			} else if atEnd && lb.strategy != StrategyBalanced {
				// increase penalty for a hyphen on the last line
				additionalPenalty = lastLinePenaltyMultiplier * lb.candidates[j].penalty
			} else {
				widthScore = delta * delta
				if delta < 0 {
					if -delta < maxShrink*float64(lb.candidates[i].postSpaceCount-lb.candidates[j].preSpaceCount) {
						widthScore *= shrinkPenaltyMultiplier
					} else {
						widthScore = ScoreOverfull
					}
				}
			}

			if delta < 0 {
				active = j + 1
			} else {
				bestHope = widthScore
			}

			if score := jScore + widthScore + additionalPenalty; score <= best {
				best = score
				bestPrev = j
			}
		}
		lb.candidates[i].score = best + lb.candidates[i].penalty + lb.linePenalty
		lb.candidates[i].prev = bestPrev
		lineNumbers = append(lineNumbers, lineNumbers[bestPrev]+1)
		tracer().Debugf("break %d: score=%g, prev=%d", i, lb.candidates[i].score, lb.candidates[i].prev)
	}
	lb.finishBreaksOptimal()
}

// finishBreaksOptimal follows the prev links through the candidate
// array and copies the chosen path to the output lists.
func (lb *LineBreaker) finishBreaksOptimal() {
	// clear any existing greedy break result
	lb.breaks = lb.breaks[:0]
	lb.widths = lb.widths[:0]
	lb.ascents = lb.ascents[:0]
	lb.descents = lb.descents[:0]
	lb.flags = lb.flags[:0]

	nCand := len(lb.candidates)
	for i := nCand - 1; i > 0; {
		prev := lb.candidates[i].prev
		lb.breaks = append(lb.breaks, lb.candidates[i].offset)
		lb.widths = append(lb.widths, lb.candidates[i].postBreak-lb.candidates[prev].preBreak)
		extent := lb.computeMaxExtent(prev+1, i)
		lb.ascents = append(lb.ascents, extent.Ascent)
		lb.descents = append(lb.descents, extent.Descent)
		flags := int(hyphen.EditForThisLine(lb.candidates[i].hyphenType))
		if prev > 0 {
			flags |= int(hyphen.EditForNextLine(lb.candidates[prev].hyphenType))
		}
		lb.flags = append(lb.flags, flags)
		i = prev
	}
	reverseInts(lb.breaks)
	reverseFloats(lb.widths)
	reverseFloats(lb.ascents)
	reverseFloats(lb.descents)
	reverseInts(lb.flags)
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
