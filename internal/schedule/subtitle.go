package schedule

import "strings"

// SubtitleParts is the interpreted form of a feed subtitle field.
type SubtitleParts struct {
	// Numbers holds episode numbers as bare digit strings, in feed order.
	Numbers []string
	// Subtitle is the episode's own title, when one is present.
	Subtitle string
	// Part is free-form text carried when the field is neither a bracketed
	// subtitle nor an episode-number list.
	Part string
}

// EpisodeLabel renders Numbers in display form, "#5" or "#5,#6".
func (p SubtitleParts) EpisodeLabel() string {
	if len(p.Numbers) == 0 {
		return ""
	}
	return "#" + strings.Join(p.Numbers, ",#")
}

// ParseSubtitle interprets the subtitle field's three sub-grammars:
//
//   - a 「...」 bracketed subtitle, optionally preceded by a #N episode
//     number or a part label;
//   - a leading-# list of numbered fragments, "#5 A ／ #6 B", carrying one
//     number per fragment;
//   - anything else, kept verbatim as a part label.
func ParseSubtitle(raw string) SubtitleParts {
	rs := []rune(raw)
	if i := indexRune(rs, '「'); i > 0 {
		return parseBracketed(rs, i)
	}
	if len(rs) > 1 && rs[0] == '#' {
		return parseNumberList(raw)
	}
	return SubtitleParts{Part: raw}
}

func parseBracketed(rs []rune, open int) SubtitleParts {
	var p SubtitleParts
	if open > 2 && rs[0] == '#' {
		j := 1
		for j < open && rs[j] != ' ' {
			j++
		}
		p.Numbers = []string{string(rs[1:j])}
	} else if open > 1 {
		p.Part = strings.TrimSpace(string(rs[:open]))
	}
	sub := string(rs[open+1:])
	p.Subtitle = strings.TrimSuffix(sub, "」")
	return p
}

// parseNumberList handles multi-episode fields. Every '#' directly followed
// by digits starts a fragment; the text between fragments joins into the
// subtitle. Feeds write the joiner half or full width; output always uses
// the full-width form.
func parseNumberList(raw string) SubtitleParts {
	var p SubtitleParts
	var frags []string
	rs := []rune(raw)
	for i := 0; i < len(rs); {
		if rs[i] != '#' || i+1 >= len(rs) || !isASCIIDigit(rs[i+1]) {
			// Leading '#' with no number; keep the field verbatim.
			return SubtitleParts{Part: raw}
		}
		j := i + 1
		for j < len(rs) && isASCIIDigit(rs[j]) {
			j++
		}
		p.Numbers = append(p.Numbers, string(rs[i+1:j]))
		next := nextNumberedFragment(rs, j)
		if rest := trimJoiner(string(rs[j:next])); rest != "" {
			frags = append(frags, rest)
		}
		i = next
	}
	p.Subtitle = strings.Join(frags, " ／ ")
	return p
}

// nextNumberedFragment returns the index of the next "#<digit>" at or after
// from, or len(rs) when the field has no further fragment.
func nextNumberedFragment(rs []rune, from int) int {
	for k := from; k+1 < len(rs); k++ {
		if rs[k] == '#' && isASCIIDigit(rs[k+1]) {
			return k
		}
	}
	return len(rs)
}

// trimJoiner strips surrounding spaces and a trailing fragment joiner.
func trimJoiner(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	s = strings.TrimSuffix(s, "／")
	return strings.TrimSpace(s)
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
