package episode

import (
	"strings"
	"unicode"

	"github.com/harunatsu/recname/internal/normalize"
)

// Marker is an episode reference found inside a filename.
type Marker struct {
	// Number is the episode number the marker names.
	Number int
	// Title is the program-title text preceding the marker.
	Title string
}

// ExtractMarker scans a normalized filename for an episode marker. Two
// spellings are recognized: "#N" followed by a space or separator, and
// "第N話". The scan stops at an opening subtitle bracket; a marker inside
// the subtitle belongs to the subtitle, not the filename.
//
// The returned title is the text before the marker, cut at the first
// title-boundary rune so trailing decorations do not pollute the search
// keyword.
func ExtractMarker(name string) (Marker, bool) {
	rs := []rune(name)
	at := -1
	var num int
	for i := 2; i+2 < len(rs); i++ {
		r := rs[i]
		if r == '「' || r == '『' {
			break
		}
		if r != ' ' && r != normalize.Sep {
			continue
		}
		n, ok := markerAt(rs, i+1)
		if !ok {
			continue
		}
		at, num = i, n
		break
	}
	if at < 0 {
		return Marker{}, false
	}

	cut := at
	for j := 2; j < at; j++ {
		if normalize.IsEpisodeTitleBoundary(rs[j]) {
			cut = j
			break
		}
	}
	title := strings.TrimRightFunc(string(rs[:cut]), unicode.IsSpace)
	if title == "" {
		return Marker{}, false
	}
	return Marker{Number: num, Title: title}, true
}

// markerAt reports whether a marker starts at rs[i] and returns its number.
func markerAt(rs []rune, i int) (int, bool) {
	lead := rs[i]
	if lead != '#' && lead != '第' {
		return 0, false
	}
	j := i + 1
	for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
		j++
	}
	if j == i+1 || j >= len(rs) {
		return 0, false
	}
	switch {
	case lead == '#' && (rs[j] == ' ' || rs[j] == normalize.Sep):
	case lead == '第' && rs[j] == '話':
	default:
		return 0, false
	}
	n := 0
	for _, d := range rs[i+1 : j] {
		n = n*10 + int(d-'0')
	}
	return n, true
}
