/*
Package linebreak breaks paragraphs of shaped text into lines.

The LineBreaker consumes a paragraph as a buffer of UTF-16 code units
with per-code-unit advance widths and vertical extents, asks a word
segmenter for break opportunities and a hyphenator for intra-word break
opportunities, and produces break offsets together with the width and
vertical metrics of every line. Two strategies are available: a greedy
first-fit strategy and a minimum-cost strategy which optimizes over the
paragraph as a whole, in the spirit of Knuth & Plass.

Typical usage:

  lb := linebreak.NewLineBreaker(shaper)
  lb.SetLineWidths(linebreak.ConstantLineWidths(240))
  lb.Resize(len(text))
  copy(lb.Buffer(), text)
  lb.SetText()
  lb.AddStyleRun(&paint, fonts, style, 0, len(text), false)
  n := lb.ComputeBreaks()
  // lb.Breaks(), lb.Widths(), lb.Ascents(), lb.Descents(), lb.Flags()
  lb.Finish()

Style runs have to be added in left-to-right order, covering the whole
paragraph without gaps. A LineBreaker is not safe for concurrent use;
hosts wanting concurrency allocate one per worker.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package linebreak

import (
	"math"

	"github.com/npillmayer/parbreak/hyphen"
	"github.com/npillmayer/parbreak/shaping"
	"github.com/npillmayer/parbreak/wordbreak"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces to parbreak.linebreak .
func tracer() tracing.Trace {
	return tracing.Select("parbreak.linebreak")
}

// Strategy selects how breaks are chosen.
type Strategy int

// Break strategies.
const (
	StrategyGreedy      Strategy = iota // first-fit, one pass
	StrategyHighQuality                 // minimum cost over the paragraph
	StrategyBalanced                    // minimum cost, no last-line bias
)

// Frequency controls how eagerly words are hyphenated.
type Frequency int

// Hyphenation frequencies.
const (
	FrequencyNone Frequency = iota
	FrequencyNormal
	FrequencyFull
)

// Scores form a hierarchy: we prefer desperate breaks to an overfull
// line. These constants are larger than any reasonable actual width
// score.
const (
	ScoreInfinity  = math.MaxFloat64
	ScoreOverfull  = 1e12
	ScoreDesperate = 1e10
)

const (
	// Multiplier for the hyphen penalty on the last line.
	lastLinePenaltyMultiplier = 4.0
	// Penalty assigned to each line break, to gently minimize the
	// number of lines.
	linePenaltyMultiplier = 2.0
	// Penalty assigned to shrinking the whitespace below its natural
	// width.
	shrinkPenaltyMultiplier = 4.0
)

// Very long words trigger quadratic behavior in hyphenation, so
// hyphenation is disabled for unreasonably long words. Such words can
// still be split by desperate breaks, with no hyphens.
const longestHyphenatedWord = 45

// When the text buffer is within this limit, capacity of the buffers is
// retained at Finish, to avoid re-allocation.
const maxTextBufRetain = 32678

// Maximum fraction by which spaces can shrink, in justified text.
const shrinkability = 1.0 / 3.0

// TabShift is the bit position of the tab flag within an output flags
// word: the bit is set iff the line ending at the break contained a tab.
// The low bits of a flags word carry the hyphen edits (hyphen.Edit) of
// the line ending at the break and of the line starting after it.
const TabShift = 29

const noTabIndex = math.MaxInt32

// A WordBreaker enumerates the break opportunities of a paragraph, in
// the manner of an ICU break iterator. Sub-package wordbreak provides
// the default implementation.
type WordBreaker interface {
	SetLocale(loc language.Tag)
	SetText(text []uint16)
	Next() int
	Current() int
	WordStart() int
	WordEnd() int
	BreakBadness() float64
	Finish()
}

// A candidate is a potential break location, together with the widths
// and space counts on both sides of the break, the vertical extent of
// the segment it terminates, and the cost of choosing it.
//
// preBreak is the running paragraph width at the candidate's offset,
// including any trailing whitespace that would disappear at the end of
// a line; it is the start width of the line following a break here.
// postBreak excludes that whitespace; it is the end width of a line
// ending here. score and prev are only used by the optimal strategy.
type candidate struct {
	offset         int
	preBreak       float64
	postBreak      float64
	penalty        float64
	score          float64
	prev           int
	preSpaceCount  int
	postSpaceCount int
	extent         shaping.Extent
	hyphenType     hyphen.Type
}

// A LineBreaker holds the state of breaking one paragraph. It is
// re-usable: Finish releases the paragraph and the breaker may be
// loaded with the next one.
type LineBreaker struct {
	shaper      shaping.Shaper
	wordBreaker WordBreaker
	locale      language.Tag
	hyphenator  hyphen.Hyphenator

	text        []uint16
	charWidths  []float64
	charExtents []shaping.Extent

	strategy   Strategy
	frequency  Frequency
	justified  bool
	lineWidths LineWidths
	tabStops   TabStops

	candidates []candidate
	hyphBuf    []hyphen.Type

	// output
	breaks   []int
	widths   []float64
	ascents  []float64
	descents []float64
	flags    []int

	// greedy state
	bestBreak       int
	bestScore       float64
	lastBreak       int     // index of the last chosen break in candidates
	preBreak        float64 // preBreak of the last chosen break
	lastHyphenation hyphen.Edit
	firstTabIndex   int

	width       float64 // running width of the paragraph
	spaceCount  int
	linePenalty float64
}

// NewLineBreaker creates a LineBreaker measuring text with the given
// shaper and segmenting with the default word breaker.
func NewLineBreaker(shaper shaping.Shaper) *LineBreaker {
	lb := &LineBreaker{
		shaper:        shaper,
		wordBreaker:   wordbreak.New(),
		strategy:      StrategyGreedy,
		frequency:     FrequencyNormal,
		locale:        language.Und,
		firstTabIndex: noTabIndex,
		bestScore:     ScoreInfinity,
	}
	return lb
}

// SetWordBreaker replaces the word segmenter. Must be called before
// SetText.
func (lb *LineBreaker) SetWordBreaker(wb WordBreaker) {
	lb.wordBreaker = wb
}

// SetStrategy selects the break strategy for the next paragraph.
func (lb *LineBreaker) SetStrategy(s Strategy) {
	lb.strategy = s
}

// SetHyphenationFrequency selects how eagerly to hyphenate.
func (lb *LineBreaker) SetHyphenationFrequency(f Frequency) {
	lb.frequency = f
}

// SetJustified tells the breaker that lines will be justified, which
// makes slightly overfull lines feasible (spaces may shrink) and
// hyphenation more aggressive.
func (lb *LineBreaker) SetJustified(justified bool) {
	lb.justified = justified
}

// SetLineWidths installs the delegate supplying the width of each line.
func (lb *LineBreaker) SetLineWidths(widths LineWidths) {
	lb.lineWidths = widths
}

// SetTabStops installs the tab-stop geometry.
func (lb *LineBreaker) SetTabStops(stops TabStops) {
	lb.tabStops = stops
}

// Resize adjusts the paragraph buffers to n code units. The host fills
// Buffer() afterwards (and CharWidths/CharExtents for replacement
// ranges) before calling SetText.
func (lb *LineBreaker) Resize(n int) {
	if cap(lb.text) < n {
		lb.text = make([]uint16, n)
		lb.charWidths = make([]float64, n)
		lb.charExtents = make([]shaping.Extent, n)
		return
	}
	lb.text = lb.text[:n]
	lb.charWidths = lb.charWidths[:n]
	lb.charExtents = lb.charExtents[:n]
}

// Buffer is the paragraph's code-unit buffer, of the size given to
// Resize.
func (lb *LineBreaker) Buffer() []uint16 {
	return lb.text
}

// CharWidths is the per-code-unit advance buffer.
func (lb *LineBreaker) CharWidths() []float64 {
	return lb.charWidths
}

// CharExtents is the per-code-unit vertical extent buffer.
func (lb *LineBreaker) CharExtents() []shaping.Extent {
	return lb.charExtents
}

// SetText binds the current buffer content to the word breaker, installs
// the sentinel candidate and resets the output lists and the greedy
// breaker state. The running paragraph width and the line penalty are
// reset by Finish, not here. Call after Resize and filling Buffer(),
// before the first AddStyleRun.
func (lb *LineBreaker) SetText() {
	lb.wordBreaker.SetText(lb.text)

	// handle the initial boundary here because AddStyleRun may never
	// be called
	lb.wordBreaker.Next()
	lb.candidates = lb.candidates[:0]
	lb.candidates = append(lb.candidates, candidate{hyphenType: hyphen.DontBreak})

	// reset greedy breaker state
	lb.breaks = lb.breaks[:0]
	lb.widths = lb.widths[:0]
	lb.ascents = lb.ascents[:0]
	lb.descents = lb.descents[:0]
	lb.flags = lb.flags[:0]
	lb.lastBreak = 0
	lb.bestBreak = 0
	lb.bestScore = ScoreInfinity
	lb.preBreak = 0
	lb.lastHyphenation = hyphen.NoEdit
	lb.firstTabIndex = noTabIndex
	lb.spaceCount = 0
}

// Breaks returns the break offsets of the last ComputeBreaks call.
func (lb *LineBreaker) Breaks() []int { return lb.breaks }

// Widths returns the line widths of the last ComputeBreaks call.
func (lb *LineBreaker) Widths() []float64 { return lb.widths }

// Ascents returns the per-line ascents (negative, extending above the
// baseline).
func (lb *LineBreaker) Ascents() []float64 { return lb.ascents }

// Descents returns the per-line descents.
func (lb *LineBreaker) Descents() []float64 { return lb.descents }

// Flags returns the per-line flag words: the hyphen edits at the break
// in the low bits and the tab flag at TabShift.
func (lb *LineBreaker) Flags() []int { return lb.flags }

// SpaceWidth returns the width of a space. May return 0 if there are no
// spaces. If different widths occur for spaces (mixed fonts), one of
// them is picked.
func (lb *LineBreaker) SpaceWidth() float64 {
	for i, c := range lb.text {
		if isWordSpace(c) {
			return lb.charWidths[i]
		}
	}
	return 0
}

func (lb *LineBreaker) currentLineWidth() float64 {
	return lb.lineWidths.LineWidth(len(lb.breaks))
}

// ComputeBreaks runs the configured strategy and returns the number of
// lines.
func (lb *LineBreaker) ComputeBreaks() int {
	if lb.strategy == StrategyGreedy {
		lb.computeBreaksGreedy()
	} else {
		lb.computeBreaksOptimal()
	}
	return len(lb.breaks)
}

// Finish releases the paragraph state. Buffer capacities are retained
// for re-use unless the text buffer was larger than the retention
// limit. Strategy-sensitive configuration reverts to its defaults; the
// locale, hyphenator, shaper and word breaker are kept.
func (lb *LineBreaker) Finish() {
	lb.wordBreaker.Finish()
	lb.width = 0
	lb.candidates = lb.candidates[:0]
	lb.breaks = lb.breaks[:0]
	lb.widths = lb.widths[:0]
	lb.ascents = lb.ascents[:0]
	lb.descents = lb.descents[:0]
	lb.flags = lb.flags[:0]
	if len(lb.text) > maxTextBufRetain {
		lb.text = nil
		lb.charWidths = nil
		lb.charExtents = nil
		lb.hyphBuf = nil
		lb.candidates = nil
		lb.breaks = nil
		lb.widths = nil
		lb.ascents = nil
		lb.descents = nil
		lb.flags = nil
	}
	lb.strategy = StrategyGreedy
	lb.frequency = FrequencyNormal
	lb.linePenalty = 0
	lb.justified = false
	lb.lineWidths = nil
}
