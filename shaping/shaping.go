/*
Package shaping defines the measuring interface consumed by the
line-breaking engine, together with the small value types travelling
across it: per-run paints, font styles and vertical extents.

Shaping itself – turning code units into positioned glyphs – is out of
scope for this module. Hosts bring their own Shaper implementation;
package shaping provides a monospace shaper for tests and simple
terminal-style output.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package shaping

import (
	"github.com/npillmayer/parbreak/hyphen"
)

// BidiFlags force a direction onto a style run. The engine does not
// reorder text; it merely forwards the flag of each run to the shaper.
type BidiFlags int

// Directions for style runs.
const (
	BidiForceLTR BidiFlags = iota
	BidiForceRTL
)

// Extent describes the vertical extent of a piece of shaped text.
// Ascent is negative (extends above the baseline), Descent is positive.
// The zero Extent is the identity for ExtendBy.
type Extent struct {
	Ascent  float64 // negative
	Descent float64 // positive
	LineGap float64
}

// ExtendBy widens ext to cover e as well. Extents form a monoid under
// ExtendBy with the zero Extent as identity.
func (ext *Extent) ExtendBy(e Extent) {
	if e.Ascent < ext.Ascent {
		ext.Ascent = e.Ascent
	}
	if e.Descent > ext.Descent {
		ext.Descent = e.Descent
	}
	if e.LineGap > ext.LineGap {
		ext.LineGap = e.LineGap
	}
}

// Reset sets ext back to the zero extent.
func (ext *Extent) Reset() {
	ext.Ascent = 0
	ext.Descent = 0
	ext.LineGap = 0
}

// Style selects a face within a font collection.
type Style struct {
	Weight int // 100…900, 400 = regular
	Italic bool
}

// Paint carries the scalar shaping parameters of a style run. HyphenEdit
// selects hyphen shaping at the start and/or end of the measured range;
// the line breaker sets it temporarily when measuring hyphenated word
// fragments.
type Paint struct {
	Size          float64
	ScaleX        float64
	LetterSpacing float64
	WordSpacing   float64
	HyphenEdit    hyphen.Edit
}

// A FontCollection resolves code points to faces. It is opaque to the
// engine and simply handed through to the shaper.
type FontCollection interface{}

// Shaper measures ranges of a UTF-16 code-unit buffer.
//
// MeasureText measures buf[start:start+count] within the paragraph
// buf[:bufSize] and returns the total advance width. When outWidths and
// outExtents are non-nil they receive per-code-unit advances and
// extents (count entries each); cluster-internal code units (e.g. low
// surrogates) report a width of zero. paint.HyphenEdit selects
// start-of-line/end-of-line hyphen shaping for the measured range.
type Shaper interface {
	MeasureText(buf []uint16, start, count, bufSize int, bidiFlags BidiFlags,
		style Style, paint *Paint, fonts FontCollection,
		outWidths []float64, outExtents []Extent) float64
}

func isLowSurrogate(c uint16) bool {
	return 0xDC00 <= c && c <= 0xDFFF
}
