package broadcast

import (
	"strings"

	"github.com/harunatsu/recname/internal/normalize"
)

// Resolve locates the broadcaster referenced by fullName. The substring
// after the last separator is the primary match field; when titleOffset is
// small (< 7) and the last separator sits beyond position 3, the
// second-to-last separator is used instead, so titles with an embedded
// separator before the broadcaster suffix still match.
//
// Matching runs four case-insensitive passes, each scanning the table in
// row order and taking the first row with a rightmost-occurrence hit:
//
//	pass 0: display name against the suffix substring
//	pass 1: display name against the full name
//	pass 2: output name against the suffix substring
//	pass 3: output name against the full name
//
// No hit in any pass returns Unknown, which downstream searches treat as
// "any broadcaster".
func (r *Registry) Resolve(fullName string, titleOffset int) ID {
	rs := []rune(fullName)
	sepPos := lastRuneIndex(rs, normalize.Sep, len(rs))

	if titleOffset < 7 && sepPos > 3 {
		// rfind over fullName[:sepPos-2]
		if prev := lastRuneIndex(rs, normalize.Sep, sepPos-2); prev > 1 {
			sepPos = prev
		}
	}

	suffix := strings.ToUpper(string(rs[sepPos+1:]))
	upperFull := strings.ToUpper(fullName)

	for pass := 0; pass < 4; pass++ {
		for i, b := range r.rows {
			field := b.DisplayName
			if pass >= 2 {
				field = b.OutputName
			}
			if field == "" {
				continue
			}
			haystack := suffix
			if pass%2 == 1 {
				haystack = upperFull
			}
			if strings.LastIndex(haystack, strings.ToUpper(field)) >= 0 {
				return ID(i)
			}
		}
	}
	return Unknown
}

// lastRuneIndex returns the index of the last occurrence of r in rs[:end],
// or -1. end is clamped to len(rs).
func lastRuneIndex(rs []rune, r rune, end int) int {
	if end > len(rs) {
		end = len(rs)
	}
	for i := end - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
