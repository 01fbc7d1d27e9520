package schedule

import (
	"strings"
	"time"
)

const (
	feedTimeLayout    = "2006-01-02T15:04:05"
	feedDayLayout     = "2006-01-02"
	episodeTimeLayout = "2006/01/02 15:04:05"
)

// ListingEntry is one program occurrence from the feed.
type ListingEntry struct {
	Title       string
	Channel     string
	SubtitleRaw string

	Start, End       time.Time
	HasStart, HasEnd bool
}

// ParseListing tokenizes a feed body into entries. Each entry is delimited
// by a <title> element holding four pipe-separated fields: program title,
// channel name, end time as HH:MM, and the raw subtitle text. The start
// time comes from the <pubDate> element that follows within the same entry.
//
// A title element without a pipe marks the end of the usable portion of the
// feed; parsing stops there.
func ParseListing(body string) []ListingEntry {
	// Everything before the first item is feed preamble, including a
	// channel-level <title> that must not be parsed as an entry.
	if i := strings.Index(body, "<item>"); i >= 0 {
		body = body[i+len("<item>"):]
	}
	body = DecodeEntities(body)

	var entries []ListingEntry
	for {
		i := strings.Index(body, "<title>")
		if i < 0 {
			break
		}
		body = body[i+len("<title>"):]

		// The entry's scope runs to the next <title>, so its pubDate
		// cannot leak in from a neighboring entry.
		scope := body
		if n := strings.Index(body, "<title>"); n >= 0 {
			scope = body[:n]
		}

		j := strings.Index(scope, "</title>")
		if j < 0 {
			break
		}
		fields := strings.SplitN(scope[:j], "|", 4)
		if len(fields) < 4 {
			break
		}

		e := ListingEntry{
			Title:       fields[0],
			Channel:     fields[1],
			SubtitleRaw: fields[3],
		}
		if day, ok := entryStart(scope, &e); ok {
			entryEnd(day, fields[2], &e)
		}
		entries = append(entries, e)
	}
	return entries
}

// entryStart parses the entry's pubDate into e.Start and returns the date
// portion for end-time reconstruction.
func entryStart(scope string, e *ListingEntry) (string, bool) {
	j := strings.Index(scope, "<pubDate>")
	if j < 0 {
		return "", false
	}
	val := scope[j+len("<pubDate>"):]
	k := strings.Index(val, "+")
	if k < 0 {
		return "", false
	}
	t, err := time.ParseInLocation(feedTimeLayout, val[:k], time.Local)
	if err != nil {
		return "", false
	}
	e.Start, e.HasStart = t, true
	return val[:len(feedDayLayout)], true
}

// entryEnd combines the start date with the HH:MM end field. An end at or
// before the start means the program crosses midnight.
func entryEnd(day, hhmm string, e *ListingEntry) {
	t, err := time.ParseInLocation(feedDayLayout+" 15:04", day+" "+hhmm, time.Local)
	if err != nil {
		return
	}
	if !t.After(e.Start) {
		t = t.AddDate(0, 0, 1)
	}
	e.End, e.HasEnd = t, true
}

// EpisodeRecord is the result of a ProgLookup query.
type EpisodeRecord struct {
	Start, End       time.Time
	HasStart, HasEnd bool
	ChannelID        string
	Subtitle         string
}

// ParseEpisode extracts the single episode record from a ProgLookup
// response. A body without a start time means the episode does not exist
// for the queried program and channel.
func ParseEpisode(body string) (EpisodeRecord, bool) {
	var rec EpisodeRecord
	st, ok := tagValue(body, "StTime")
	if !ok {
		return rec, false
	}
	if t, err := time.ParseInLocation(episodeTimeLayout, normalizeDateSeps(st), time.Local); err == nil {
		rec.Start, rec.HasStart = t, true
	}
	if ed, ok := tagValue(body, "EdTime"); ok {
		if t, err := time.ParseInLocation(episodeTimeLayout, normalizeDateSeps(ed), time.Local); err == nil {
			rec.End, rec.HasEnd = t, true
		}
	}
	if ch, ok := tagValue(body, "ChID"); ok && allASCIIDigits(ch) {
		rec.ChannelID = ch
	}
	if sub, ok := tagValue(body, "STSubTitle"); ok {
		rec.Subtitle = DecodeEntities(sub)
	}
	return rec, true
}

// tagValue returns the text of the first <tag>...</tag> element in body.
func tagValue(body, tag string) (string, bool) {
	open := "<" + tag + ">"
	i := strings.Index(body, open)
	if i < 0 {
		return "", false
	}
	rest := body[i+len(open):]
	j := strings.Index(rest, "</"+tag+">")
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// normalizeDateSeps maps dashed dates onto the slashed layout the lookup
// endpoint usually emits.
func normalizeDateSeps(s string) string {
	return strings.ReplaceAll(s, "-", "/")
}

func allASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
