package normalize

import "strings"

// NormalizeWidth maps full-width punctuation, digits and Latin letters to
// their half-width forms, and Unicode Roman numerals (U+2160–U+2169) to the
// literal strings "I".."X". Only these explicit ranges are converted; other
// full-width characters (brackets, katakana) are boundary markers for later
// stages and must stay as they are.
func NormalizeWidth(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if j := indexRune(fullPunct, r); j >= 0 {
			b.WriteRune(halfPunct[j])
			continue
		}
		switch {
		case r >= 0xFF10 && r <= 0xFF19: // full-width digits
			b.WriteRune(r - 0xFF10 + '0')
		case r >= 0xFF21 && r <= 0xFF3A: // full-width A-Z
			b.WriteRune(r - 0xFF21 + 'A')
		case r >= 0xFF41 && r <= 0xFF5A: // full-width a-z
			b.WriteRune(r - 0xFF41 + 'a')
		case r >= 0x2160 && r <= 0x2169:
			b.WriteString(romanNumerals[r-0x2160])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
