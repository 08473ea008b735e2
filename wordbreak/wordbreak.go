/*
Package wordbreak finds break opportunities in paragraphs of UTF-16
code units.

The Breaker is an ICU-style break iterator: after SetText, successive
calls to Next() step through the offsets at which a line may legally end.
Like ICU's line-break iterator (and unlike a plain word iterator),
boundaries fall after the trailing whitespace of a word, never before
it, and never adjacent to glue characters such as the non-breaking
space.

Boundary placement is rule-driven: a small set of recognizer automata
(package parbreak) votes with penalties on every inter-unit position,
and positions whose aggregated penalty signals a feasible break become
boundaries. The end of a non-empty text is always a boundary; an empty
text has none.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package wordbreak

import (
	"github.com/npillmayer/parbreak"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces to parbreak.wordbreak .
func tracer() tracing.Trace {
	return tracing.Select("parbreak.wordbreak")
}

// A Breaker iterates over the line-break opportunities of a paragraph.
// The zero value is not usable; create Breakers with New.
//
// A Breaker is bound to one paragraph at a time with SetText and may be
// re-bound after Finish. It is not safe for concurrent use.
type Breaker struct {
	text       []uint16
	locale     language.Tag
	rules      map[unitClass][]parbreak.NfaStateFn
	boundaries []int
	badness    []float64 // parallel to boundaries
	inx        int       // index of the current boundary, -1 before the first Next
	last       int       // offset of the previous boundary
	current    int       // offset of the current boundary, -1 past the end
}

// New creates a Breaker with the default rule set.
func New() *Breaker {
	wb := &Breaker{}
	wb.rules = newRules()
	wb.locale = language.Und
	return wb
}

// SetLocale selects the locale the breaker segments for. The default
// rule set is locale-independent; the locale is retained for tailored
// rule sets and for tracing.
func (wb *Breaker) SetLocale(loc language.Tag) {
	wb.locale = loc
	tracer().Debugf("wordbreak: locale set to %s", loc)
}

// SetText binds the breaker to a paragraph and computes its boundaries.
// The breaker borrows the slice for the duration of the paragraph.
func (wb *Breaker) SetText(text []uint16) {
	wb.text = text
	wb.inx = -1
	wb.last = 0
	wb.current = 0
	wb.scan()
	wb.markEmailsAndURLs()
	tracer().Debugf("wordbreak: %d boundaries", len(wb.boundaries))
}

// scan runs the rule automata over the text and collects boundary
// offsets from the penalties they emit.
func (wb *Breaker) scan() {
	n := len(wb.text)
	wb.boundaries = wb.boundaries[:0]
	wb.badness = wb.badness[:0]
	if n == 0 {
		return
	}
	penaltyAt := make([]int, n+1)
	publisher := parbreak.NewUnitPublisher()
	publisher.SetPenaltyAggregator(parbreak.MaxPenalties)
	for i := 0; i <= n; i++ {
		c := rune(0)
		cl := clEOT
		if i < n {
			c = rune(wb.text[i])
			cl = classOf(wb.text[i])
		}
		for _, rule := range wb.rules[cl] {
			rec := parbreak.NewPooledRecognizer(int(cl), rule)
			publisher.SubscribeMe(rec)
		}
		_, penalties := publisher.PublishUnitEvent(c, int(cl))
		for j, p := range penalties {
			offset := i - j + 1 // break after unit i-j
			if offset >= 1 && offset <= n {
				penaltyAt[offset] = combinePenalty(penaltyAt[offset], p)
			}
		}
	}
	for offset := 1; offset < n; offset++ {
		p := penaltyAt[offset]
		if p != 0 && p < parbreak.InfinitePenalty {
			wb.boundaries = append(wb.boundaries, offset)
			wb.badness = append(wb.badness, 0)
		}
	}
	wb.boundaries = append(wb.boundaries, n) // end of text is always a boundary
	wb.badness = append(wb.badness, 0)
}

// markEmailsAndURLs assigns a break badness of 1 to boundaries strictly
// inside chunks that look like email addresses or URLs. Breaking such
// chunks is legal but undesirable.
func (wb *Breaker) markEmailsAndURLs() {
	n := len(wb.text)
	start := 0
	for start < n {
		for start < n && chunkSeparator(wb.text[start]) {
			start++
		}
		end := start
		for end < n && !chunkSeparator(wb.text[end]) {
			end++
		}
		if end > start && looksLikeEmailOrURL(wb.text[start:end]) {
			for k, b := range wb.boundaries {
				if b > start && b < end {
					wb.badness[k] = 1
				}
			}
		}
		start = end
	}
}

// combinePenalty merges penalties for the same position emitted by
// different publisher events. An untouched position stays neutral until
// some rule votes; afterwards inhibitions dominate merits.
func combinePenalty(old, p int) int {
	if old == 0 {
		return p
	}
	if p == 0 {
		return old
	}
	return parbreak.MaxPenalties(old, p)
}

func chunkSeparator(c uint16) bool {
	switch classOf(c) {
	case clSpace, clTab, clNewline:
		return true
	}
	return false
}

func looksLikeEmailOrURL(chunk []uint16) bool {
	for i, c := range chunk {
		if c == '@' && i+1 < len(chunk) && classOf(chunk[i+1]) == clOther {
			return true
		}
		if c == ':' && i+2 < len(chunk) && chunk[i+1] == '/' && chunk[i+2] == '/' {
			return true
		}
	}
	return false
}

// Next advances to the next boundary and returns its offset, or -1 when
// no boundaries remain.
func (wb *Breaker) Next() int {
	if wb.current >= 0 {
		wb.last = wb.current
	}
	wb.inx++
	if wb.inx >= len(wb.boundaries) {
		wb.current = -1
		return -1
	}
	wb.current = wb.boundaries[wb.inx]
	return wb.current
}

// Current returns the most recent boundary returned by Next, or -1.
func (wb *Breaker) Current() int {
	return wb.current
}

// WordStart returns the offset of the current word, with leading
// whitespace trimmed.
func (wb *Breaker) WordStart() int {
	start := wb.last
	end := wb.boundaryEnd()
	for start < end && chunkSeparator(wb.text[start]) {
		start++
	}
	return start
}

// WordEnd returns the end of the current word, with trailing whitespace
// trimmed.
func (wb *Breaker) WordEnd() int {
	start := wb.last
	end := wb.boundaryEnd()
	for end > start && chunkSeparator(wb.text[end-1]) {
		end--
	}
	return end
}

func (wb *Breaker) boundaryEnd() int {
	if wb.current < 0 {
		return len(wb.text)
	}
	return wb.current
}

// BreakBadness reports how undesirable a break at the current boundary
// is: 0 for ordinary boundaries, 1 for boundaries inside email
// addresses and URLs.
func (wb *Breaker) BreakBadness() float64 {
	if wb.inx < 0 || wb.inx >= len(wb.badness) {
		return 0
	}
	return wb.badness[wb.inx]
}

// Finish releases the paragraph. The Breaker may be re-used with a new
// call to SetText.
func (wb *Breaker) Finish() {
	wb.text = nil
	wb.boundaries = wb.boundaries[:0]
	wb.badness = wb.badness[:0]
	wb.inx = -1
	wb.last = 0
	wb.current = 0
}
