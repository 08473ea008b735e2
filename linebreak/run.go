package linebreak

import (
	"math"

	"github.com/npillmayer/parbreak/hyphen"
	"github.com/npillmayer/parbreak/shaping"
)

// AddStyleRun measures a style run, feeds the word breaker over it and
// emits break candidates. Runs have to be added in left-to-right order,
// covering the paragraph without gaps.
//
// Ordinarily this method measures the text in the range given. However,
// when paint is nil (replacement spans), it assumes the character
// widths and extents have already been stored in the CharWidths and
// CharExtents buffers.
//
// Returns the measured width of the run (0 for replacement runs).
func (lb *LineBreaker) AddStyleRun(paint *shaping.Paint, fonts shaping.FontCollection,
	style shaping.Style, start, end int, isRTL bool) float64 {
	//
	width := 0.0
	bidiFlags := shaping.BidiForceLTR
	if isRTL {
		bidiFlags = shaping.BidiForceRTL
	}

	hyphenPenalty := 0.0
	if paint != nil {
		width = lb.shaper.MeasureText(lb.text, start, end-start, len(lb.text), bidiFlags,
			style, paint, fonts, lb.charWidths[start:end], lb.charExtents[start:end])

		// a heuristic that seems to perform well
		hyphenPenalty = 0.5 * paint.Size * paint.ScaleX * lb.lineWidths.LineWidth(0)
		if lb.frequency == FrequencyNormal {
			hyphenPenalty *= 4.0
		}

		if lb.justified {
			// Hyphenate more aggressively for fully justified text, so
			// that "normal" in justified mode matches "full" in
			// ragged-right.
			hyphenPenalty *= 0.25
		} else {
			// Line penalty is zero for justified text.
			lb.linePenalty = math.Max(lb.linePenalty, hyphenPenalty*linePenaltyMultiplier)
		}
	}

	current := lb.wordBreaker.Current()
	afterWord := start
	lastBreak := start
	lastBreakWidth := lb.width
	postBreak := lb.width
	postSpaceCount := lb.spaceCount
	var extent shaping.Extent
	for i := start; i < end; i++ {
		c := lb.text[i]
		if c == charTab {
			lb.width = lb.preBreak + lb.tabAdvance(lb.width-lb.preBreak)
			if lb.firstTabIndex == noTabIndex {
				lb.firstTabIndex = i
			}
			// fall back to greedy; other strategies don't know how to
			// deal with tabs
			lb.strategy = StrategyGreedy
		} else {
			if isWordSpace(c) {
				lb.spaceCount++
			}
			lb.width += lb.charWidths[i]
			extent.ExtendBy(lb.charExtents[i])
			if !isLineEndSpace(c) {
				postBreak = lb.width
				postSpaceCount = lb.spaceCount
				afterWord = i + 1
			}
		}
		if i+1 == current {
			wordStart := lb.wordBreaker.WordStart()
			wordEnd := lb.wordBreaker.WordEnd()
			if paint != nil && lb.hyphenator != nil && lb.frequency != FrequencyNone &&
				wordStart >= start && wordEnd > wordStart {
				lb.hyphenate(lb.text[wordStart:wordEnd])

				// measure hyphenated substrings
				for j := wordStart; j < wordEnd; j++ {
					hyph := lb.hyphBuf[j-wordStart]
					if hyph == hyphen.DontBreak {
						continue
					}
					hyphPaint := *paint
					hyphPaint.HyphenEdit = hyphen.EditForThisLine(hyph)
					firstPartWidth := lb.shaper.MeasureText(lb.text, lastBreak, j-lastBreak,
						len(lb.text), bidiFlags, style, &hyphPaint, fonts, nil, nil)
					hyphPostBreak := lastBreakWidth + firstPartWidth

					hyphPaint.HyphenEdit = hyphen.EditForNextLine(hyph)
					secondPartWidth := lb.shaper.MeasureText(lb.text, j, afterWord-j,
						len(lb.text), bidiFlags, style, &hyphPaint, fonts, nil, nil)
					hyphPreBreak := postBreak - secondPartWidth

					lb.addWordBreak(j, hyphPreBreak, hyphPostBreak, postSpaceCount, postSpaceCount,
						extent, hyphenPenalty, hyph)
					extent.Reset()
				}
			}

			// Skip break for zero-width characters inside replacement spans
			if paint != nil || current == end || lb.charWidths[current] > 0 {
				penalty := hyphenPenalty * lb.wordBreaker.BreakBadness()
				lb.addWordBreak(current, lb.width, postBreak, lb.spaceCount, postSpaceCount,
					extent, penalty, hyphen.DontBreak)
				extent.Reset()
			}
			lastBreak = current
			lastBreakWidth = lb.width
			current = lb.wordBreaker.Next()
		}
	}

	return width
}

// AddReplacement registers a replacement span: a range the host renders
// itself, of a single known width. The width is charged to the first
// code unit, the remainder measures zero.
func (lb *LineBreaker) AddReplacement(start, end int, width float64) {
	lb.charWidths[start] = width
	for i := start + 1; i < end; i++ {
		lb.charWidths[i] = 0
	}
	for i := start; i < end; i++ {
		lb.charExtents[i] = shaping.Extent{}
	}
	lb.AddStyleRun(nil, nil, shaping.Style{}, start, end, false)
}

func (lb *LineBreaker) tabAdvance(x float64) float64 {
	if lb.tabStops == nil {
		return x
	}
	return lb.tabStops.NextTab(x)
}

// hyphenate classifies a string potentially containing non-breaking
// spaces. The result is stored in lb.hyphBuf. A word here is any
// consecutive run of non-NBSP code units; NBSPs themselves never break.
func (lb *LineBreaker) hyphenate(word []uint16) {
	lb.hyphBuf = lb.hyphBuf[:0]
	inWord := false
	wordStart := 0 // the initial value will never be accessed, but just in case
	for i := 0; i <= len(word); i++ {
		if i == len(word) || word[i] == charNBSP {
			if inWord {
				// a word just ended, hyphenate it
				wordLen := i - wordStart
				if wordLen <= longestHyphenatedWord {
					lb.hyphBuf = lb.hyphenator.Hyphenate(lb.hyphBuf, word[wordStart:i], lb.locale)
				} else { // word too long, inefficient to hyphenate
					for k := 0; k < wordLen; k++ {
						lb.hyphBuf = append(lb.hyphBuf, hyphen.DontBreak)
					}
				}
				inWord = false
			}
			if i < len(word) {
				// one DontBreak for the NBSP itself
				lb.hyphBuf = append(lb.hyphBuf, hyphen.DontBreak)
			}
		} else if !inWord {
			inWord = true
			wordStart = i
		}
	}
}

// addWordBreak adds a word break (possibly for a hyphenated fragment),
// inserting desperate breaks first if the word exceeds the current line
// width.
func (lb *LineBreaker) addWordBreak(offset int, preBreak, postBreak float64,
	preSpaceCount, postSpaceCount int, extent shaping.Extent,
	penalty float64, hyph hyphen.Type) {
	//
	width := lb.candidates[len(lb.candidates)-1].preBreak
	if postBreak-width > lb.currentLineWidth() {
		// Add desperate breaks.
		// Note: these breaks are based on the shaping of the unbroken
		// original text; they are imprecise especially in the presence
		// of kerning, ligatures and Arabic shaping.
		i := lb.candidates[len(lb.candidates)-1].offset
		width += lb.charWidths[i]
		for i++; i < offset; i++ {
			w := lb.charWidths[i]
			if w > 0 {
				desp := candidate{
					offset:    i,
					preBreak:  width,
					postBreak: width,
					// postSpaceCount doesn't include trailing spaces
					preSpaceCount:  postSpaceCount,
					postSpaceCount: postSpaceCount,
					extent:         lb.charExtents[i],
					penalty:        ScoreDesperate,
					hyphenType:     hyphen.BreakAndDontInsertHyphen,
				}
				tracer().Debugf("desperate cand: %d %g:%g", len(lb.candidates), desp.postBreak, desp.preBreak)
				lb.addCandidate(desp)
				width += w
			}
		}
	}

	cand := candidate{
		offset:         offset,
		preBreak:       preBreak,
		postBreak:      postBreak,
		penalty:        penalty,
		preSpaceCount:  preSpaceCount,
		postSpaceCount: postSpaceCount,
		extent:         extent,
		hyphenType:     hyph,
	}
	tracer().Debugf("cand: %d %g:%g", len(lb.candidates), cand.postBreak, cand.preBreak)
	lb.addCandidate(cand)
}
