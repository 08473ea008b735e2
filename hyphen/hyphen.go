/*
Package hyphen classifies hyphenation break opportunities inside words.

A hyphenator looks at a word and decides, per code unit, whether a line
may be broken before it and which hyphen edits apply to the two lines
around such a break. The line-breaking engine in sub-package linebreak
consumes the Hyphenator interface; a Liang-pattern implementation is
provided here.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hyphen

import (
	"golang.org/x/text/language"
)

// Type classifies a single position inside a word: may the line be
// broken before this code unit, and if so, which edits accompany the
// break.
type Type uint8

// Hyphenation classes per word position.
const (
	DontBreak Type = iota
	BreakAndInsertHyphen
	BreakAndInsertArmenianHyphen
	BreakAndInsertMaqaf
	BreakAndInsertUcasHyphen
	BreakAndDontInsertHyphen
	BreakAndReplaceWithHyphen
	BreakAndInsertHyphenAtNextLine
	BreakAndInsertHyphenAndZwj
)

// Edit is a packed pair of hyphen edits: the low three bits describe the
// edit at the end of the line preceding a break, the next two bits the
// edit at the start of the line following it. Edits select hyphen
// shaping in the shaper and are reported per line in the engine's output
// flags.
type Edit uint8

// End-of-line edits (bits 0–2).
const (
	NoEdit                    Edit = 0
	InsertHyphenAtEnd         Edit = 1
	InsertArmenianHyphenAtEnd Edit = 2
	InsertMaqafAtEnd          Edit = 3
	InsertUcasHyphenAtEnd     Edit = 4
	InsertZwjAndHyphenAtEnd   Edit = 5
	ReplaceWithHyphenAtEnd    Edit = 6
	BreakAtEnd                Edit = 7
)

// Start-of-line edits (bits 3–4).
const (
	InsertHyphenAtStart Edit = 1 << 3
	BreakAtStart        Edit = 2 << 3
)

// Masks for the two halves of an Edit.
const (
	MaskEndOfLine   Edit = 0x07
	MaskStartOfLine Edit = 0x18
)

// EndOfLine extracts the end-of-line half of an edit.
func (e Edit) EndOfLine() Edit { return e & MaskEndOfLine }

// StartOfLine extracts the start-of-line half of an edit.
func (e Edit) StartOfLine() Edit { return e & MaskStartOfLine }

// WillInsertHyphenAtEnd reports whether the edit shapes an additional
// hyphen at the end of the line.
func (e Edit) WillInsertHyphenAtEnd() bool {
	switch e.EndOfLine() {
	case InsertHyphenAtEnd, InsertArmenianHyphenAtEnd, InsertMaqafAtEnd,
		InsertUcasHyphenAtEnd, InsertZwjAndHyphenAtEnd:
		return true
	}
	return false
}

// WillInsertHyphenAtStart reports whether the edit shapes an additional
// hyphen at the start of the line.
func (e Edit) WillInsertHyphenAtStart() bool {
	return e.StartOfLine() == InsertHyphenAtStart
}

// EditForThisLine returns the edit applied to the line that ends with a
// break of hyphenation class t.
func EditForThisLine(t Type) Edit {
	switch t {
	case DontBreak:
		return NoEdit
	case BreakAndInsertHyphen:
		return InsertHyphenAtEnd
	case BreakAndInsertArmenianHyphen:
		return InsertArmenianHyphenAtEnd
	case BreakAndInsertMaqaf:
		return InsertMaqafAtEnd
	case BreakAndInsertUcasHyphen:
		return InsertUcasHyphenAtEnd
	case BreakAndReplaceWithHyphen:
		return ReplaceWithHyphenAtEnd
	case BreakAndInsertHyphenAndZwj:
		return InsertZwjAndHyphenAtEnd
	}
	return BreakAtEnd
}

// EditForNextLine returns the edit applied to the line that starts after
// a break of hyphenation class t.
func EditForNextLine(t Type) Edit {
	switch t {
	case DontBreak:
		return NoEdit
	case BreakAndInsertHyphenAtNextLine:
		return InsertHyphenAtStart
	}
	return BreakAtStart
}

// A Hyphenator classifies the positions of a word. Hyphenate appends
// exactly len(word) entries to dst, one per code unit, and returns the
// extended slice. Entry j tells whether the line may be broken before
// word[j].
type Hyphenator interface {
	Hyphenate(dst []Type, word []uint16, loc language.Tag) []Type
}

// A Registry maps locales to hyphenators using language matching, so
// that e.g. "en-AU" finds an "en-US" pattern table when no closer one is
// registered.
type Registry struct {
	tags        []language.Tag
	hyphenators []Hyphenator
	matcher     language.Matcher
}

// NewRegistry creates an empty hyphenator registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a hyphenator for a locale.
func (reg *Registry) Add(tag language.Tag, h Hyphenator) {
	reg.tags = append(reg.tags, tag)
	reg.hyphenators = append(reg.hyphenators, h)
	reg.matcher = language.NewMatcher(reg.tags)
}

// Lookup returns the best-matching hyphenator for a locale, or nil if
// the registry is empty or nothing matches.
func (reg *Registry) Lookup(loc language.Tag) Hyphenator {
	if reg.matcher == nil {
		return nil
	}
	_, index, conf := reg.matcher.Match(loc)
	if conf == language.No {
		return nil
	}
	return reg.hyphenators[index]
}
