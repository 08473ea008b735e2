package linebreak

const (
	charTab  = 0x0009
	charNBSP = 0x00A0
)

// isWordSpace determines whether a code unit counts as an inter-word
// space for space-count bookkeeping (justification shrinking).
func isWordSpace(c uint16) bool {
	return c == ' ' || c == charNBSP
}

// isLineEndSpace determines whether a code unit is a space that
// disappears at the end of a line. It is the Unicode set
// [[:General_Category=Space_Separator:]-[:Line_Break=Glue:]],
// plus '\n'. All such characters are in the BMP, so testing code units
// is fine.
func isLineEndSpace(c uint16) bool {
	return c == '\n' || c == ' ' || c == 0x1680 ||
		(0x2000 <= c && c <= 0x200A && c != 0x2007) ||
		c == 0x205F || c == 0x3000
}
