package hyphen

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces to parbreak.hyphen .
func tracer() tracing.Trace {
	return tracing.Select("parbreak.hyphen")
}

const (
	charSoftHyphen  = 0x00AD
	charHyphenMinus = 0x002D
	charHyphen      = 0x2010
)

// PatternHyphenator hyphenates words with Frank Liang's pattern
// algorithm, the one used by TeX. Patterns are short letter sequences
// interleaved with odd/even weights; the highest weight wins at each
// inter-letter position and odd weights permit a break.
//
// Words containing soft hyphens are broken at the soft hyphens only, and
// words containing hard hyphens at the hard hyphens only; patterns are
// consulted for plain words.
type PatternHyphenator struct {
	patterns   map[string][]uint8
	exceptions map[string][]int
	maxPattern int // longest pattern key, in bytes
	minPrefix  int // no break within the first minPrefix letters
	minSuffix  int // no break within the last minSuffix letters
	repeat     bool // repeat a hard hyphen at the start of the next line
}

// NewPatternHyphenator builds a hyphenator from TeX-style pattern
// strings such as "hy3ph", "he2n" or ".hy2phen". Minimum prefix and
// suffix lengths default to 2 and 3 when zero is given.
//
// For locales with orthographies that repeat a hard hyphen on the next
// line (Polish, Slovenian and friends), pass such a tag; for all other
// locales a break at a hard hyphen leaves the following line untouched.
func NewPatternHyphenator(loc language.Tag, patterns []string, minPrefix, minSuffix int) *PatternHyphenator {
	if minPrefix <= 0 {
		minPrefix = 2
	}
	if minSuffix <= 0 {
		minSuffix = 3
	}
	h := &PatternHyphenator{
		patterns:   make(map[string][]uint8, len(patterns)),
		exceptions: make(map[string][]int),
		minPrefix:  minPrefix,
		minSuffix:  minSuffix,
		repeat:     repeatsHyphen(loc),
	}
	for _, p := range patterns {
		h.addPattern(p)
	}
	return h
}

// AddException registers a pre-hyphenated exception such as "ta-ble".
func (h *PatternHyphenator) AddException(hyphenated string) {
	word := strings.ReplaceAll(hyphenated, "-", "")
	points := make([]int, len(word)+1)
	pos := 0
	for _, r := range hyphenated {
		if r == '-' {
			points[pos] = 1
		} else {
			pos++
		}
	}
	h.exceptions[strings.ToLower(word)] = points
}

func (h *PatternHyphenator) addPattern(p string) {
	letters := make([]byte, 0, len(p))
	values := make([]uint8, 1, len(p)+1)
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c >= '0' && c <= '9' {
			values[len(values)-1] = c - '0'
		} else {
			letters = append(letters, c)
			values = append(values, 0)
		}
	}
	key := string(letters)
	h.patterns[key] = values
	if len(key) > h.maxPattern {
		h.maxPattern = len(key)
	}
}

// Hyphenate appends len(word) classification entries to dst.
//
// Interface Hyphenator
func (h *PatternHyphenator) Hyphenate(dst []Type, word []uint16, loc language.Tag) []Type {
	n := len(word)
	base := len(dst)
	for i := 0; i < n; i++ {
		dst = append(dst, DontBreak)
	}
	if n < h.minPrefix+h.minSuffix {
		return dst
	}
	if containsUnit(word, charSoftHyphen) {
		// A soft hyphen overrides the patterns: break only where the
		// author asked for it.
		for i := 1; i < n; i++ {
			if word[i-1] == charSoftHyphen {
				dst[base+i] = typeForWord(word)
			}
		}
		return dst
	}
	if containsInnerHyphen(word) {
		t := BreakAndDontInsertHyphen
		if h.repeat {
			t = BreakAndInsertHyphenAtNextLine
		}
		for i := 1; i < n; i++ {
			if word[i-1] == charHyphenMinus || word[i-1] == charHyphen {
				dst[base+i] = t
			}
		}
		return dst
	}
	lower, ok := foldToLetters(word)
	if !ok { // not a word our alphabet knows; leave it alone
		return dst
	}
	points, isException := h.exceptions[lower]
	if !isException {
		points = h.applyPatterns(lower)
	}
	t := typeForWord(word)
	for i := h.minPrefix; i <= n-h.minSuffix; i++ {
		if points[i]%2 == 1 {
			dst[base+i] = t
		}
	}
	return dst
}

// applyPatterns runs the Liang algorithm on a lowercase word and returns
// one weight per inter-letter position (index i = before letter i).
func (h *PatternHyphenator) applyPatterns(word string) []int {
	work := "." + word + "."
	points := make([]int, len(word)+1)
	for i := 0; i < len(work); i++ {
		limit := i + h.maxPattern
		if limit > len(work) {
			limit = len(work)
		}
		for j := i + 1; j <= limit; j++ {
			values, ok := h.patterns[work[i:j]]
			if !ok {
				continue
			}
			for k, v := range values {
				// positions are relative to the word, the leading dot
				// shifts them by one
				pos := i + k - 1
				if pos < 0 || pos > len(word) {
					continue
				}
				if int(v) > points[pos] {
					points[pos] = int(v)
				}
			}
		}
	}
	tracer().Debugf("pattern points for '%s' = %v", word, points)
	// points is indexed by byte offset; keep the positions at letter starts
	byLetter := make([]int, 0, len(points))
	for b := range word {
		byLetter = append(byLetter, points[b])
	}
	return append(byLetter, points[len(word)])
}

// typeForWord picks the hyphen flavor from the script of the word.
func typeForWord(word []uint16) Type {
	for _, c := range word {
		switch {
		case 0x0530 <= c && c <= 0x058F:
			return BreakAndInsertArmenianHyphen
		case 0x0590 <= c && c <= 0x05FF:
			return BreakAndInsertMaqaf
		case 0x1400 <= c && c <= 0x167F:
			return BreakAndInsertUcasHyphen
		}
	}
	return BreakAndInsertHyphen
}

func containsUnit(word []uint16, u uint16) bool {
	for _, c := range word {
		if c == u {
			return true
		}
	}
	return false
}

func containsInnerHyphen(word []uint16) bool {
	for i := 1; i < len(word)-1; i++ {
		if word[i] == charHyphenMinus || word[i] == charHyphen {
			return true
		}
	}
	return false
}

// foldToLetters lowercases a word of BMP letters into a string usable as
// pattern input. It refuses words containing non-letters or surrogates.
func foldToLetters(word []uint16) (string, bool) {
	var sb strings.Builder
	for _, c := range word {
		r := rune(c)
		if 0xD800 <= c && c <= 0xDFFF {
			return "", false
		}
		if !unicode.IsLetter(r) {
			return "", false
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String(), true
}

func repeatsHyphen(loc language.Tag) bool {
	base, conf := loc.Base()
	if conf == language.No {
		return false
	}
	switch base.String() {
	case "pl", "sl", "hr", "sr", "sk", "cs":
		return true
	}
	return false
}
