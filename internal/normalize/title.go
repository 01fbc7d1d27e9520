package normalize

// ExtractSearchTitle returns the first maxLen code points of name, stopping
// early at the first whitespace, separator, or bracket/punctuation boundary
// after the first character. maxLen below 1 falls back to 4 and is clamped
// to the name length. The result is the substring matched against the remote
// title field.
func ExtractSearchTitle(name string, maxLen int) string {
	rs := []rune(name)
	if len(rs) == 0 {
		return ""
	}
	if maxLen < 1 {
		maxLen = 4
	}
	if maxLen > len(rs) {
		maxLen = len(rs)
	}

	out := rs[:1]
	for i := 1; i < maxLen; i++ {
		if isTitleBoundary(rs[i]) {
			break
		}
		out = rs[:i+1]
	}
	return string(out)
}

func isTitleBoundary(r rune) bool {
	return r == ' ' || r == Sep ||
		runeIn(extraStrip, r) || runeIn(openBrackets, r) || runeIn(closeBrackets, r)
}

// IsEpisodeTitleBoundary reports whether r ends the title portion preceding
// an episode marker: the separator, any bracket glyph, or "～".
func IsEpisodeTitleBoundary(r rune) bool {
	return r == Sep || r == '～' || IsOpenBracket(r) || IsCloseBracket(r)
}
