package macro

import (
	"strings"
	"time"
)

// Input carries everything a template can reference.
type Input struct {
	Title        string
	Subtitle     string
	EpisodeLabel string
	Part         string
	Service      string
	Start, End   time.Time
}

// Expand renders template against in. Program titles and subtitles have
// their slashes widened first so text from the schedule service can never
// introduce a path separator; slashes written literally in the template
// survive as separators.
func Expand(template string, in Input) string {
	s := template

	n1, n2, n3, n4 := episodeNumbers(in.EpisodeLabel)
	s = strings.ReplaceAll(s, "$SCnumber1$", n1)
	s = strings.ReplaceAll(s, "$SCnumber$", n2)
	s = strings.ReplaceAll(s, "$SCnumber2$", n2)
	s = strings.ReplaceAll(s, "$SCnumber3$", n3)
	s = strings.ReplaceAll(s, "$SCnumber4$", n4)

	s = expandDateTime(s, in.Start, "")
	s = expandDateTime(s, in.End, "ed")

	title := widenSlashes(in.Title)
	s = strings.ReplaceAll(s, "$SCservice$", in.Service)
	s = strings.ReplaceAll(s, "$SCpart$", widenSlashes(in.Part))
	s = strings.ReplaceAll(s, "$SCtitle$", title)
	s = strings.ReplaceAll(s, "$SCtitle2$", strings.ToUpper(strings.ReplaceAll(title, " ", "")))
	s = strings.ReplaceAll(s, "$SCsubtitle$", widenSlashes(in.Subtitle))

	return s
}

func widenSlashes(s string) string {
	return strings.ReplaceAll(s, "/", "／")
}
