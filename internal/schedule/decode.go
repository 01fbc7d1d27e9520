package schedule

import "strings"

// entityPairs lists replacements in application order. Backslash comes
// first so a literal backslash in feed text never collides with later
// substitutions, and &amp; is expanded before &#039; so double-encoded
// apostrophes still decode.
var entityPairs = [...][2]string{
	{`\`, "＼"},
	{"&quot;", `"`},
	{"&amp;", "&"},
	{"&#039;", "'"},
	{"&lt;", "＜"},
	{"&gt;", "＞"},
}

// DecodeEntities rewrites the handful of escapes the service emits. Angle
// brackets become full-width so decoded text can never be mistaken for tag
// structure by a later parsing pass.
func DecodeEntities(s string) string {
	for _, p := range entityPairs {
		s = strings.ReplaceAll(s, p[0], p[1])
	}
	return s
}
