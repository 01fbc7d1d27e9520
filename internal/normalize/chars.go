package normalize

// Character tables shared by the normalizer and the downstream resolvers.
// halfPunct and fullPunct are index-paired: fullPunct[i] normalizes to
// halfPunct[i].

// Sep is the filename segment separator used by recording software.
const Sep = '_'

var (
	halfPunct  = []rune(` :;/'"-`)
	fullPunct  = []rune("　：；／’”－")
	extraStrip = []rune("!？！～…『』")

	// openBrackets and closeBrackets are index-paired ASCII and full-width
	// bracket glyphs.
	openBrackets  = []rune("([（〔［｛〈《「【＜")
	closeBrackets = []rune(")]）〕］｝〉》」】＞")

	// romanNumerals maps U+2160..U+2169 to literal letters.
	romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}
)

func indexRune(set []rune, r rune) int {
	for i, s := range set {
		if s == r {
			return i
		}
	}
	return -1
}

func runeIn(set []rune, r rune) bool { return indexRune(set, r) >= 0 }

// indexRuneFrom returns the index of the first occurrence of r in rs at or
// after start, or -1.
func indexRuneFrom(rs []rune, r rune, start int) int {
	for i := start; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !isDigit(r) {
			return false
		}
	}
	return len(rs) > 0
}

// IsOpenBracket reports whether r opens a bracket pair (ASCII or full-width).
func IsOpenBracket(r rune) bool { return runeIn(openBrackets, r) }

// IsCloseBracket reports whether r closes a bracket pair.
func IsCloseBracket(r rune) bool { return runeIn(closeBrackets, r) }
