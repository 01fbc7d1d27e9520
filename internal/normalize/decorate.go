package normalize

import "errors"

// ErrNoTitle is returned when decoration stripping consumes the whole name
// without finding a title boundary.
var ErrNoTitle = errors.New("could not determine a title from the filename")

// StripLeadingDecoration consumes leading separators, punctuation and
// bracketed groups from name and returns the remainder. Bracket groups are
// skipped to their matching close bracket; an unmatched open bracket stops
// the scan (the bracket stays in the result). The 『』 pair is treated
// differently: its close bracket is blanked to a space and the content kept,
// so the quoted title remains in place for the later search.
func StripLeadingDecoration(name string) (string, error) {
	rs := []rune(name)
	i := 0
	for i < len(rs) {
		r := rs[i]
		if !isDecoration(r) {
			j := indexRune(openBrackets, r)
			if j < 0 {
				break
			}
			k := indexRuneFrom(rs, closeBrackets[j], i+1)
			if k <= 0 {
				break
			}
			i = k
		} else if r == '『' {
			if k := indexRuneFrom(rs, '』', i+1); k > 0 {
				rs[k] = ' '
			}
		}
		i++
	}
	if i >= len(rs) {
		return "", ErrNoTitle
	}
	return string(rs[i:]), nil
}

func isDecoration(r rune) bool {
	return r == Sep || r == '・' ||
		runeIn(halfPunct, r) || runeIn(fullPunct, r) || runeIn(extraStrip, r)
}
