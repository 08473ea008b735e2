package wordbreak

import (
	"github.com/npillmayer/parbreak"
)

// Code-unit classes for the boundary rules. The class set is a coarse
// projection of the UAX#14 line-break classes: just enough to place
// break opportunities the way an ICU line-break iterator would for the
// purposes of paragraph layout.
type unitClass int

const (
	clOther unitClass = iota
	clSpace            // breakable spaces: [[:Zs:]-[:Lb=Glue:]]
	clTab              // U+0009
	clNewline          // LF, VT, FF, CR, NEL, LS, PS
	clGlue             // NBSP, figure space, narrow NBSP, word joiner, ZWNBSP
	clBreakAfter       // hyphen-minus, soft hyphen, hyphen, en/em dash
	clEOT              // pseudo class, published once after the last unit
)

func classOf(c uint16) unitClass {
	switch c {
	case 0x0009:
		return clTab
	case 0x000A, 0x000B, 0x000C, 0x000D, 0x0085, 0x2028, 0x2029:
		return clNewline
	case 0x00A0, 0x2007, 0x202F, 0x2060, 0xFEFF:
		return clGlue
	case 0x002D, 0x00AD, 0x2010, 0x2013, 0x2014:
		return clBreakAfter
	case 0x0020, 0x1680, 0x205F, 0x3000:
		return clSpace
	}
	if 0x2000 <= c && c <= 0x200A { // 0x2007 is glue, handled above
		return clSpace
	}
	return clOther
}

func isSpacey(cl unitClass) bool {
	return cl == clSpace || cl == clTab
}

// Merit attached to ordinary break opportunities. Any value strictly
// between InfiniteMerits and 0 marks the position as breakable.
const (
	meritSpaceBreak  = -100
	meritHyphenBreak = -50
)

// ruleSpaceRun matches a run of spaces and/or tabs and allows a break
// after its last unit, i.e. before the following non-space.
func ruleSpaceRun(rec *parbreak.Recognizer, c rune, cl int) parbreak.NfaStateFn {
	if !isSpacey(unitClass(cl)) {
		return parbreak.DoAbort(rec)
	}
	rec.MatchLen++
	return finishSpaceRun
}

func finishSpaceRun(rec *parbreak.Recognizer, c rune, cl int) parbreak.NfaStateFn {
	switch unitClass(cl) {
	case clSpace, clTab:
		rec.MatchLen++
		return finishSpaceRun
	case clNewline, clEOT:
		// the mandatory-break rule and the end-of-text boundary cover
		// these positions
		return parbreak.DoAbort(rec)
	}
	return parbreak.DoAccept(rec, 0, meritSpaceBreak)
}

// ruleMandatory forces a break after a newline; CR LF counts as one
// newline.
func ruleMandatory(rec *parbreak.Recognizer, c rune, cl int) parbreak.NfaStateFn {
	if unitClass(cl) != clNewline {
		return parbreak.DoAbort(rec)
	}
	rec.MatchLen++
	if c == '\r' {
		return finishCRLF
	}
	return parbreak.DoAccept(rec, parbreak.InfiniteMerits)
}

func finishCRLF(rec *parbreak.Recognizer, c rune, cl int) parbreak.NfaStateFn {
	if c == '\n' {
		rec.MatchLen++
		return parbreak.DoAccept(rec, parbreak.InfiniteMerits)
	}
	return parbreak.DoAccept(rec, 0, parbreak.InfiniteMerits)
}

// ruleBreakAfter allows a break after a (soft) hyphen or dash when a
// regular word unit follows.
func ruleBreakAfter(rec *parbreak.Recognizer, c rune, cl int) parbreak.NfaStateFn {
	if unitClass(cl) != clBreakAfter {
		return parbreak.DoAbort(rec)
	}
	rec.MatchLen++
	return finishBreakAfter
}

func finishBreakAfter(rec *parbreak.Recognizer, c rune, cl int) parbreak.NfaStateFn {
	if unitClass(cl) != clOther {
		return parbreak.DoAbort(rec)
	}
	return parbreak.DoAccept(rec, 0, meritHyphenBreak)
}

// ruleGlue inhibits breaks on both sides of a glue unit.
func ruleGlue(rec *parbreak.Recognizer, c rune, cl int) parbreak.NfaStateFn {
	if unitClass(cl) != clGlue {
		return parbreak.DoAbort(rec)
	}
	rec.MatchLen++
	return parbreak.DoAccept(rec, parbreak.InfinitePenalty, parbreak.InfinitePenalty)
}

func newRules() map[unitClass][]parbreak.NfaStateFn {
	return map[unitClass][]parbreak.NfaStateFn{
		clSpace:      {ruleSpaceRun},
		clTab:        {ruleSpaceRun},
		clNewline:    {ruleMandatory},
		clBreakAfter: {ruleBreakAfter},
		clGlue:       {ruleGlue},
	}
}
