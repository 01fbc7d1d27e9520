package schedule

import (
	"strings"
	"time"

	"github.com/harunatsu/recname/internal/normalize"
)

// Query narrows a listing to one program occurrence.
type Query struct {
	// SearchTitle is the leading fragment of the normalized filename title.
	SearchTitle string
	// ChannelAlias filters entries to one broadcaster's channel names.
	// Empty matches any channel.
	ChannelAlias string
	// Hint positions the wanted occurrence in time.
	Hint normalize.DateHint
}

// Match is the selected occurrence, ready for template expansion.
type Match struct {
	Title        string
	Subtitle     string
	EpisodeLabel string
	Part         string
	Channel      string

	Start, End       time.Time
	HasStart, HasEnd bool
}

// MatchListing picks the entry whose broadcast time lies closest to the
// query's target. Title and channel filters are substring matches, case
// insensitive. The hint decides whether the start or the end time is
// compared: a timestamp recovered from the filename anchors at the start of
// the program, a file-modification fallback anchors at the end.
func MatchListing(entries []ListingEntry, q Query) (Match, bool) {
	var best *ListingEntry
	var bestDelta time.Duration
	for i := range entries {
		e := &entries[i]
		if !containsFold(e.Title, q.SearchTitle) {
			continue
		}
		if q.ChannelAlias != "" && !containsFold(e.Channel, q.ChannelAlias) {
			continue
		}
		at, ok := e.Start, e.HasStart
		if !q.Hint.AnchoredAtStart {
			at, ok = e.End, e.HasEnd
		}
		if !ok {
			continue
		}
		d := q.Hint.Target.Sub(at)
		if d < 0 {
			d = -d
		}
		if best == nil || d < bestDelta {
			best, bestDelta = e, d
		}
	}
	if best == nil {
		return Match{}, false
	}

	parts := ParseSubtitle(best.SubtitleRaw)
	return Match{
		Title:        best.Title,
		Subtitle:     parts.Subtitle,
		EpisodeLabel: parts.EpisodeLabel(),
		Part:         parts.Part,
		Channel:      best.Channel,
		Start:        best.Start,
		End:          best.End,
		HasStart:     best.HasStart,
		HasEnd:       best.HasEnd,
	}, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToUpper(haystack), strings.ToUpper(needle))
}
